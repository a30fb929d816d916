package ingest

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/nao1215/resumeparser/internal/model"
	"github.com/nao1215/resumeparser/internal/pipeline"
)

// Runner scans a directory and parses every candidate document.
type Runner struct {
	parser      pipeline.DocumentParser
	concurrency int
	logger      *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConcurrency sets how many documents are parsed at once.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a runner around parser.
func NewRunner(parser pipeline.DocumentParser, opts ...RunnerOption) *Runner {
	r := &Runner{
		parser:      parser,
		concurrency: pipeline.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run scans dir and parses what it finds. Failed documents are logged and
// recorded in the batch failures; they never stop the run.
//
// A missing directory returns ErrInputDirNotFound. An empty directory is
// not an error: the returned batch is simply empty.
func (r *Runner) Run(ctx context.Context, dir string) (*model.Batch, error) {
	listing, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	batch := model.NewBatch(uuid.NewString(), dir)
	batch.Ignored = len(listing.Ignored)
	for _, name := range listing.Ignored {
		r.logger.Debug("skipping non-resume entry", "file", name)
	}
	dups := make([]string, 0, len(listing.Duplicates))
	for dup := range listing.Duplicates {
		dups = append(dups, dup)
	}
	sort.Strings(dups)
	for _, dup := range dups {
		original := listing.Duplicates[dup]
		r.logger.Info("skipping duplicate document", "file", dup, "duplicate_of", original)
		batch.MarkDuplicate(dup, original)
	}

	if listing.Empty() {
		r.logger.Warn("no resumes found", "dir", dir)
		return batch, nil
	}

	processor := pipeline.NewBatchProcessor(r.parser,
		pipeline.WithConcurrency(r.concurrency),
		pipeline.WithBatchLogger(r.logger),
	)
	results, err := processor.ProcessBatch(ctx, listing.Paths())

	for i, doc := range listing.Documents {
		result := results[i]
		if result == nil {
			continue
		}
		if !batch.Add(doc.Name, result) {
			r.logger.Warn("failed to parse document", "file", doc.Name, "error", result.Error)
		}
	}

	r.logger.Info("batch finished",
		"batch_id", batch.ID,
		"parsed", len(batch.Records),
		"failed", len(batch.Failures),
		"duplicates", len(batch.Duplicates),
	)
	return batch, err
}
