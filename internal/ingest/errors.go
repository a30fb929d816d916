package ingest

import "errors"

var (
	// ErrInputDirNotFound is returned when the input directory does not exist.
	ErrInputDirNotFound = errors.New("input directory not found")

	// ErrNotADirectory is returned when the input path is a regular file.
	ErrNotADirectory = errors.New("input path is not a directory")
)
