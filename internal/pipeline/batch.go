package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/resumeparser/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents parsed at once unless
// configured otherwise. One keeps batch logs in directory order.
const DefaultConcurrency = 1

// DocumentParser parses one document. *Parser satisfies it.
type DocumentParser interface {
	Parse(ctx context.Context, path string) *model.ParsedResume
}

// BatchProcessor parses many documents with bounded concurrency.
//
// Documents are handed to an errgroup limited to the configured number
// of workers. A failed document never stops the batch; it simply yields
// an error-only record. Only cancellation of the context ends a run
// early.
type BatchProcessor struct {
	parser      DocumentParser
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of documents parsed at once.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(parser DocumentParser, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		parser:      parser,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch parses every path and returns the records in input order.
// A failed document yields an error-only record at its index. The error
// is non-nil only when ctx is cancelled; records for documents that were
// never started are nil in that case.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, paths []string) ([]*model.ParsedResume, error) {
	results := make([]*model.ParsedResume, len(paths))
	err := bp.ProcessBatchWithCallback(ctx, paths, func(r *model.ParsedResume, i int) {
		results[i] = r
	})
	return results, err
}

// ProcessBatchWithCallback parses every path and calls callback with each
// record and its index as soon as it is ready. The callback runs on the
// worker goroutine; with concurrency above one it must be safe for
// concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	paths []string,
	callback func(r *model.ParsedResume, index int),
) error {
	bp.logger.Info("starting batch processing",
		"total_documents", len(paths),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("processing document",
				"path", path,
				"index", i+1,
				"total", len(paths),
			)
			callback(bp.parser.Parse(ctx, path), i)
			return nil
		})
	}

	err := g.Wait()
	bp.logger.Info("batch processing complete",
		"total_documents", len(paths),
		"elapsed", time.Since(startTime),
	)
	return err
}
