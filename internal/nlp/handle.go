package nlp

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handle loads a model at most once and shares it between callers.
// A load failure is remembered; later calls return the same error.
type Handle struct {
	name   string
	dirs   []string
	logger *slog.Logger
	loader func(name string, dirs ...string) (Model, error)
	load   func() (Model, error)
}

// HandleOption configures a Handle.
type HandleOption func(*Handle)

// WithSearchDirs sets directories searched for model artifacts before the
// built-in copy.
func WithSearchDirs(dirs ...string) HandleOption {
	return func(h *Handle) {
		h.dirs = append(h.dirs, dirs...)
	}
}

// WithHandleLogger sets the logger used to report the load result.
func WithHandleLogger(logger *slog.Logger) HandleOption {
	return func(h *Handle) {
		h.logger = logger
	}
}

// WithLoader replaces the function that loads the model.
func WithLoader(loader func(name string, dirs ...string) (Model, error)) HandleOption {
	return func(h *Handle) {
		h.loader = loader
	}
}

// NewHandle creates a handle for the named model. Nothing is loaded until
// Model is called.
func NewHandle(name string, opts ...HandleOption) *Handle {
	h := &Handle{
		name:   name,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		loader: func(name string, dirs ...string) (Model, error) {
			return Load(name, dirs...)
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.load = sync.OnceValues(h.loadModel)
	return h
}

// Name returns the configured model name.
func (h *Handle) Name() string {
	return h.name
}

// Model returns the loaded model. Errors wrap ErrModelUnavailable.
func (h *Handle) Model() (Model, error) {
	return h.load()
}

func (h *Handle) loadModel() (Model, error) {
	m, err := h.loader(h.name, h.dirs...)
	if err != nil {
		h.logger.Error("failed to load NLP model", "model", h.name, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	h.logger.Debug("NLP model loaded", "model", m.Name())
	return m, nil
}
