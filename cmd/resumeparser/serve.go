package main

import (
	"fmt"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the resume upload endpoint",
		Long: `Serve starts an HTTP server that parses uploaded resumes.

Endpoints:
  POST /parse_resume   multipart form with the document in the "file" field
  GET  /health         availability of the skill catalog and model

Examples:
  # Listen on the default address
  resumeparser serve

  # Listen on all interfaces with JSON logs
  resumeparser serve --addr 0.0.0.0:8080 --json-logs

  curl -F file=@resume.pdf http://127.0.0.1:5000/parse_resume`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddress,
		"Address to listen on")
	cmd.Flags().String("upload-dir", "",
		"Directory holding uploads while they are parsed (default: XDG cache directory)")
	cmd.Flags().Bool("json-logs", false,
		"Write logs as JSON lines")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
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

	srv, err := server.New(res.parser,
		server.WithAddress(cfg.ListenAddress),
		server.WithUploadDir(cfg.UploadDir),
		server.WithMaxUploadSize(cfg.MaxUploadSize),
		server.WithRequestTimeout(cfg.RequestTimeout),
		server.WithResourceChecks(res.checks()...),
		server.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", cfg.ListenAddress)
	return srv.Start(ctx)
}

// buildServeConfig applies the serve flags that were set explicitly.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "addr", &cfg.ListenAddress); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "upload-dir", &cfg.UploadDir); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("json-logs") {
		if cfg.JSONLogs, err = cmd.Flags().GetBool("json-logs"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
