package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "resumeparser"

	// DefaultSkillsFile is the skill catalog, relative to the working directory.
	DefaultSkillsFile = "skills.txt"

	// DefaultModelName is the annotation model loaded at startup.
	DefaultModelName = "en_resume_sm"

	// DefaultInputDir is the directory scanned by the batch command.
	DefaultInputDir = "test_files"

	// DefaultOutputFile receives the batch results.
	DefaultOutputFile = "processed_resumes.json"

	// DefaultConcurrency parses one document at a time so that batch logs
	// follow directory order.
	DefaultConcurrency = 1

	// DefaultListenAddress is where the upload server listens.
	DefaultListenAddress = "127.0.0.1:5000"

	// DefaultMaxUploadSize caps the request body of an upload.
	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

	// DefaultRequestTimeout bounds the handling of one upload.
	DefaultRequestTimeout = 60 * time.Second
)

// Config holds all configuration options for resumeparser.
// It is populated from the config file and CLI flags and passed down
// explicitly; there is no global configuration.
type Config struct {
	// SkillsFile is the newline-delimited skill catalog.
	SkillsFile string

	// ModelName identifies the annotation model artifact.
	ModelName string

	// ModelDir is searched for <ModelName>.yaml before the built-in copy.
	ModelDir string

	// InputDir is the directory scanned by the batch command.
	InputDir string

	// OutputFile is the JSON file written by the batch command.
	OutputFile string

	// MarkdownSummary, when set, receives a Markdown summary of the batch.
	MarkdownSummary string

	// XLSXFile, when set, receives a spreadsheet export of the batch.
	XLSXFile string

	// Concurrency is the number of documents parsed at once in a batch.
	Concurrency int

	// ListenAddress is the host:port of the upload server.
	ListenAddress string

	// UploadDir holds uploaded files while they are parsed.
	UploadDir string

	// MaxUploadSize is the largest accepted request body in bytes.
	MaxUploadSize int64

	// RequestTimeout bounds the handling of one upload request.
	RequestTimeout time.Duration

	// JSONLogs switches server logs to JSON lines.
	JSONLogs bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport selects JSON output for the parse command.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output for the parse command.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file for the parse command.
	// When empty, the report goes to stdout.
	ReportFile string

	// ConfigFilePath is the explicit configuration file, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SkillsFile:     DefaultSkillsFile,
		ModelName:      DefaultModelName,
		ModelDir:       ModelDir(),
		InputDir:       DefaultInputDir,
		OutputFile:     DefaultOutputFile,
		Concurrency:    DefaultConcurrency,
		ListenAddress:  DefaultListenAddress,
		UploadDir:      UploadDir(),
		MaxUploadSize:  DefaultMaxUploadSize,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// XDGDataDir returns the XDG data directory for resumeparser.
// On Linux: ~/.local/share/resumeparser
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for resumeparser.
// On Linux: ~/.config/resumeparser
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for resumeparser.
// On Linux: ~/.cache/resumeparser
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// ModelDir returns the directory searched for model overrides.
func ModelDir() string {
	return filepath.Join(XDGDataDir(), "models")
}

// UploadDir returns the default directory for uploaded files.
func UploadDir() string {
	return filepath.Join(XDGCacheDir(), "uploads")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.SkillsFile == "" {
		return ErrEmptySkillsFile
	}

	if c.ModelName == "" {
		return ErrEmptyModelName
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.MaxUploadSize <= 0 {
		return ErrInvalidMaxUploadSize
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
