package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/resumeparser/internal/model"
)

// Parser runs the standard parsing pipeline.
// A Parser holds no per-document state and may be shared between
// goroutines.
type Parser struct {
	extractor TextExtractor
	catalog   SkillMatcher
	models    ModelSource
	logger    *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserLogger sets the logger for the parser and its steps.
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a parser. A nil catalog or model source is treated as
// unavailable and produces the matching diagnostic in every record.
func NewParser(extractor TextExtractor, catalog SkillMatcher, models ModelSource, opts ...ParserOption) *Parser {
	p := &Parser{
		extractor: extractor,
		catalog:   catalog,
		models:    models,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Steps returns a fresh step list for one document.
func (p *Parser) Steps() []Step {
	return []Step{
		NewExtractStep(p.extractor),
		NewNormalizeStep(),
		NewContactStep(),
		NewNameStep(),
		NewSkillStep(p.catalog, p.logger),
		NewEntityStep(p.models, p.logger),
	}
}

// Parse parses one document. It never returns nil: document-level
// failures come back as an error-only record whose Failure method returns
// the typed error.
func (p *Parser) Parse(ctx context.Context, path string) *model.ParsedResume {
	pl := New(WithLogger(p.logger))
	pl.AddSteps(p.Steps()...)
	p.logger.Debug("parsing document", "path", path, "steps", pl.StepNames())

	job := NewJob(path)
	if err := pl.Execute(ctx, job); err != nil {
		p.logger.Info("document not parsed", "path", path, "error", err)
	}
	return job.Result
}
