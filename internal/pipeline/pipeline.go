package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/resumeparser/internal/model"
)

// Job carries one document through the pipeline.
type Job struct {
	// Path is the document on disk.
	Path string

	// Raw is the extracted text before normalization.
	Raw string

	// Normalized is the cleaned, lowercased text used by most extractors.
	Normalized string

	// Result is the record being built.
	Result *model.ParsedResume
}

// NewJob creates a job with an empty result record.
func NewJob(path string) *Job {
	return &Job{
		Path:   path,
		Result: model.NewParsedResume(),
	}
}

// Step is one stage of parsing.
//
// Steps communicate only through the Job: a step reads the fields that
// earlier steps filled (Raw, Normalized) and writes its part of Result.
type Step interface {
	// Do runs the step against the job.
	// A returned error is a document-level failure; field-level problems
	// are recorded in the result and Do returns nil.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline runs steps in order against one Job.
//
// A Pipeline is cheap to build and is not meant to be reused across
// goroutines; Parser creates one per document.
type Pipeline struct {
	steps []Step

	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps against job. Cancellation is checked between
// steps. The first step error stops the run, turns job.Result into an
// error-only record and is returned.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			job.Result.SetFailure(ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"path", job.Path,
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Warn("step failed",
				"step", step.Name(),
				"path", job.Path,
				"error", err,
			)
			job.Result.SetFailure(err)
			return err
		}
	}
	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
