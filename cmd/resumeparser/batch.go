package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/ingest"
	"github.com/nao1215/resumeparser/internal/model"
	"github.com/nao1215/resumeparser/internal/report"
	"github.com/spf13/cobra"
)

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse every resume in a directory",
		Long: `Batch parses every .pdf and .docx file directly inside the input directory.

Subdirectories, hidden files and other extensions are skipped, and files
with identical content are parsed once. Records that parsed successfully
are written to the output file as a JSON array; documents that failed are
logged and left out. Nothing is written when no document was parsed.

Examples:
  # Parse ./test_files into processed_resumes.json
  resumeparser batch

  # Use other locations and also write a Markdown summary
  resumeparser batch --input resumes --output out.json --markdown-summary summary.md

  # Parse four documents at a time and export a spreadsheet
  resumeparser batch --concurrency 4 --xlsx resumes.xlsx`,
		Args: cobra.NoArgs,
		RunE: runBatchCmd,
	}

	cmd.Flags().StringP("input", "i", config.DefaultInputDir,
		"Directory containing the resumes")
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"JSON file receiving the parsed records")
	cmd.Flags().String("markdown-summary", "",
		"Also write a Markdown summary of the batch to this file")
	cmd.Flags().String("xlsx", "",
		"Also export the batch to this spreadsheet file")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of documents parsed at once")

	return cmd
}

// runBatchCmd executes the batch command.
func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildBatchConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	res := newResources(cfg, logger)
	res.warm()

	runner := ingest.NewRunner(res.parser,
		ingest.WithLogger(logger),
		ingest.WithConcurrency(cfg.Concurrency),
	)

	out := cmd.OutOrStdout()
	batch, err := runner.Run(ctx, cfg.InputDir)
	if errors.Is(err, ingest.ErrInputDirNotFound) || errors.Is(err, ingest.ErrNotADirectory) {
		logger.Warn("input directory unavailable", "dir", cfg.InputDir, "error", err)
		fmt.Fprintf(out, "Input directory %s not found. Nothing to do.\n", cfg.InputDir)
		return nil
	}
	if batch == nil {
		return err
	}

	if _, werr := report.NewSimpleWriter(out).WriteBatch(batch); werr != nil {
		return werr
	}

	if batch.Empty() {
		fmt.Fprintf(out, "No resumes were parsed; %s was not written.\n", cfg.OutputFile)
		return err
	}

	if werr := writeBatchReports(cfg, batch); werr != nil {
		return errors.Join(err, werr)
	}
	fmt.Fprintf(out, "Wrote %d records to %s\n", len(batch.Records), cfg.OutputFile)
	return err
}

// buildBatchConfig applies the batch flags that were set explicitly.
func buildBatchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"input":            &cfg.InputDir,
		"output":           &cfg.OutputFile,
		"markdown-summary": &cfg.MarkdownSummary,
		"xlsx":             &cfg.XLSXFile,
	} {
		if err := overrideString(cmd, name, dst); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// writeBatchReports writes the JSON output file and the optional reports.
// All configured files are created first and then filled through one
// MultiWriter.
func writeBatchReports(cfg *config.Config, batch *model.Batch) (err error) {
	files := []struct {
		path   string
		writer func(io.Writer) report.Writer
	}{
		{cfg.OutputFile, func(w io.Writer) report.Writer {
			return report.NewJSONWriter(w, report.WithIndent("", report.BatchIndent))
		}},
		{cfg.MarkdownSummary, func(w io.Writer) report.Writer {
			return report.NewMarkdownWriter(w)
		}},
		{cfg.XLSXFile, func(w io.Writer) report.Writer {
			return report.NewXLSXWriter(w)
		}},
	}

	writers := make([]report.Writer, 0, len(files))
	for _, f := range files {
		if f.path == "" {
			continue
		}
		out, ferr := createOutputFile(f.path)
		if ferr != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, ferr)
		}
		defer func() {
			err = errors.Join(err, out.Close())
		}()
		writers = append(writers, f.writer(out))
	}

	if _, werr := report.NewMultiWriter(writers...).WriteBatch(batch); werr != nil {
		return fmt.Errorf("failed to write batch reports: %w", werr)
	}
	return nil
}
