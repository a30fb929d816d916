package nlp

import "errors"

var (
	// ErrModelUnavailable is returned when the annotation model failed to load.
	ErrModelUnavailable = errors.New("NLP model not loaded")

	// ErrModelNotFound is returned when no artifact exists for a model name.
	ErrModelNotFound = errors.New("model not found")

	// ErrInvalidModel is returned when an artifact cannot be parsed or compiled.
	ErrInvalidModel = errors.New("invalid model artifact")
)
