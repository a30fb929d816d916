package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/extract"
	"github.com/nao1215/resumeparser/internal/fields"
	"github.com/nao1215/resumeparser/internal/log"
	"github.com/nao1215/resumeparser/internal/nlp"
	"github.com/nao1215/resumeparser/internal/pipeline"
	"github.com/nao1215/resumeparser/internal/server"
	"github.com/spf13/cobra"
)

// loadConfig builds the configuration for cmd.
// Defaults are overridden by the configuration file, which is in turn
// overridden by flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; the default locations are optional.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := overrideString(cmd, "skills", &cfg.SkillsFile); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "model", &cfg.ModelName); err != nil {
		return nil, err
	}
	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrideString copies the flag value into dst when the flag was set.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// newLogger creates the PII-masking logger used by every command.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.JSONLogs {
		return log.NewSecureJSONLogger(w, cfg.Verbose)
	}
	return log.NewSecureLogger(w, cfg.Verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// resources are the shared, load-once parts of the parser.
type resources struct {
	catalog *fields.Catalog
	models  *nlp.Handle
	parser  *pipeline.Parser
	logger  *slog.Logger
}

// newResources wires the extractor, skill catalog and annotation model
// into a parser. Nothing is loaded until first use.
func newResources(cfg *config.Config, logger *slog.Logger) *resources {
	catalog := fields.NewCatalog(cfg.SkillsFile, fields.WithCatalogLogger(logger))
	models := nlp.NewHandle(cfg.ModelName,
		nlp.WithSearchDirs(cfg.ModelDir),
		nlp.WithHandleLogger(logger),
	)
	extractor := extract.New(extract.WithLogger(logger))

	return &resources{
		catalog: catalog,
		models:  models,
		parser:  pipeline.NewParser(extractor, catalog, models, pipeline.WithParserLogger(logger)),
		logger:  logger,
	}
}

// warm loads the catalog and the model up front so that problems are
// reported at startup rather than on the first document. Failures only
// degrade the affected fields.
func (r *resources) warm() {
	if err := r.catalog.Err(); err != nil {
		r.logger.Warn("skill catalog unavailable; skills will carry a warning", "path", r.catalog.Path(), "error", err)
	}
	if _, err := r.models.Model(); err != nil {
		r.logger.Warn("annotation model unavailable; entities will carry an error", "model", r.models.Name(), "error", err)
	}
}

// checks exposes the shared resources to the health endpoint.
func (r *resources) checks() []server.ResourceCheck {
	return []server.ResourceCheck{
		{Name: "skill_catalog", Check: r.catalog.Err},
		{Name: "model", Check: func() error {
			_, err := r.models.Model()
			return err
		}},
	}
}

// createOutputFile opens path for writing, creating parent directories.
// Reports contain personal data and are only readable by the owner.
func createOutputFile(path string) (*os.File, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // user-provided output path
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
