package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Messages returned for rejected uploads.
const (
	msgNoFilePart     = "No file part in the request"
	msgNotAllowed     = "No selected file or file type not allowed (must be PDF or DOCX)"
	msgInternalPrefix = "An internal server error occurred: "

	// timeoutBody is written verbatim by the timeout middleware.
	timeoutBody = `{"error":"Request timed out while parsing the document"}`
)

// ErrUploadDirUnavailable is returned by New when the upload directory
// cannot be created.
var ErrUploadDirUnavailable = errors.New("upload directory unavailable")

// APIError is an error answered to the client as {"error": Message}.
// Code is only used in logs.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error.
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
}

// NewUnprocessableError creates a 422 error for documents that were
// accepted but could not be read.
func NewUnprocessableError(message string) *APIError {
	return &APIError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "UNPROCESSABLE",
		Message: message,
	}
}

// NewInternalError creates a 500 error. The cause is included in the
// message.
func NewInternalError(cause error) *APIError {
	msg := msgInternalPrefix + "unknown error"
	if cause != nil {
		msg = msgInternalPrefix + cause.Error()
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: msg,
	}
}

// ErrorHandler writes every handler error as a JSON body.
// Usage: e.HTTPErrorHandler = server.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
		}
	default:
		apiErr = NewInternalError(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(apiErr.Status)
		return
	}
	_ = c.JSON(apiErr.Status, apiErr)
}
