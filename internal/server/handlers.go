package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nao1215/resumeparser/internal/extract"
	"github.com/nao1215/resumeparser/internal/model"
	"github.com/nao1215/resumeparser/internal/pipeline"
)

// ResourceCheck reports whether a shared resource is usable.
type ResourceCheck struct {
	// Name is the key used in the health response.
	Name string

	// Check returns nil when the resource is usable.
	Check func() error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Resources map[string]string `json:"resources"`
}

// Handler serves the parser endpoints.
type Handler struct {
	parser    pipeline.DocumentParser
	uploadDir string
	checks    []ResourceCheck
	logger    *slog.Logger
}

// NewHandler creates a handler that stores uploads in uploadDir while
// they are parsed.
func NewHandler(parser pipeline.DocumentParser, uploadDir string, logger *slog.Logger, checks ...ResourceCheck) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		parser:    parser,
		uploadDir: uploadDir,
		checks:    checks,
		logger:    logger,
	}
}

// HandleParseResume parses the uploaded "file" field.
func (h *Handler) HandleParseResume(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		h.logger.Debug("rejected upload", "error", err)
		return NewBadRequestError(msgNoFilePart)
	}
	if fh.Filename == "" || !model.IsSupportedFile(fh.Filename) {
		return NewBadRequestError(msgNotAllowed)
	}

	path, err := h.save(fh)
	if err != nil {
		return NewInternalError(err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.logger.Warn("failed to remove upload", "path", path, "error", err)
		}
	}()

	result := h.parser.Parse(c.Request().Context(), path)
	if result.Failed() {
		return failureError(result)
	}
	return c.JSON(http.StatusOK, result)
}

// HandleHealth reports the state of every resource check.
func (h *Handler) HandleHealth(c echo.Context) error {
	resp := HealthResponse{
		Status:    "ok",
		Resources: make(map[string]string, len(h.checks)),
	}
	for _, p := range h.checks {
		if err := p.Check(); err != nil {
			resp.Status = "degraded"
			resp.Resources[p.Name] = err.Error()
			continue
		}
		resp.Resources[p.Name] = "ok"
	}
	return c.JSON(http.StatusOK, resp)
}

// save copies the upload to a uniquely named file that keeps the original
// extension, so the extractor sees the same format the client sent.
func (h *Handler) save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close() //nolint:errcheck // read-only

	path := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // name is generated
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}

// failureError maps a failed record to its HTTP answer.
func failureError(r *model.ParsedResume) *APIError {
	switch extract.KindOf(r.Failure()) {
	case extract.KindUnsupportedFormat:
		return NewBadRequestError(r.Error)
	case extract.KindExtraction:
		return NewUnprocessableError(r.Error)
	default:
		return NewInternalError(errors.New(r.Error))
	}
}
