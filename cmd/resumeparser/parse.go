package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/report"
	"github.com/spf13/cobra"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse one or more resumes",
		Long: `Parse extracts structured data from PDF and DOCX resumes.

Each document is read, normalized, and searched for the candidate name,
email, phone number, LinkedIn and GitHub links, catalog skills, and
annotated entities. A document that cannot be read is reported with its
error; the remaining documents are still parsed.

Examples:
  # Print a readable summary
  resumeparser parse resume.pdf

  # Print the JSON record
  resumeparser parse --json resume.docx

  # Write a Markdown report for several documents
  resumeparser parse --markdown -o report.md a.pdf b.docx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParseCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON records (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")

	return cmd
}

// runParseCmd executes the parse command.
func runParseCmd(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	out := cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		f, ferr := createOutputFile(cfg.ReportFile)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}
	writer := selectWriter(cfg, out)

	res := newResources(cfg, logger)
	failed := 0
	for _, path := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := res.parser.Parse(ctx, path)
		r.Filename = filepath.Base(path)
		if r.Failed() {
			failed++
		}
		if _, err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents could not be parsed", failed, len(args))
	}
	return nil
}

// selectWriter returns the report writer for the configured format.
func selectWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out)
	}
}
