package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptySkillsFile is returned when no skill catalog path is configured.
	ErrEmptySkillsFile = errors.New("invalid skills file: path must not be empty")

	// ErrEmptyModelName is returned when no annotation model is configured.
	ErrEmptyModelName = errors.New("invalid model: name must not be empty")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxUploadSize is returned when the upload size limit is not positive.
	ErrInvalidMaxUploadSize = errors.New("invalid max upload size: must be positive")

	// ErrInvalidRequestTimeout is returned when the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("invalid request timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
