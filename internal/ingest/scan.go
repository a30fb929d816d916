package ingest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nao1215/resumeparser/internal/model"
	"golang.org/x/crypto/sha3"
)

// Document is a candidate resume found by Scan.
type Document struct {
	// Name is the file name inside the scanned directory.
	Name string

	// Path is the path passed to the parser.
	Path string

	// Format is derived from the extension.
	Format model.Format

	// Digest is the hex SHA3-256 of the content, empty when the file
	// could not be read.
	Digest string
}

// Listing is the result of scanning a directory.
type Listing struct {
	// Dir is the scanned directory.
	Dir string

	// Documents are the unique candidates, sorted by name.
	Documents []Document

	// Ignored are entries that are not candidate documents.
	Ignored []string

	// Duplicates maps a skipped file name to the earlier file with the
	// same content.
	Duplicates map[string]string
}

// Empty reports whether the directory held no candidate documents.
func (l *Listing) Empty() bool {
	return len(l.Documents) == 0
}

// Paths returns the document paths in order.
func (l *Listing) Paths() []string {
	paths := make([]string, len(l.Documents))
	for i, d := range l.Documents {
		paths[i] = d.Path
	}
	return paths
}

// Scan lists candidate documents in dir.
// Only a missing or unreadable directory is an error; problems with single
// files are left to the parser.
func Scan(dir string) (*Listing, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	listing := &Listing{
		Dir:        dir,
		Documents:  make([]Document, 0, len(entries)),
		Ignored:    make([]string, 0),
		Duplicates: make(map[string]string),
	}
	seen := make(map[string]string)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !model.IsSupportedFile(name) {
			listing.Ignored = append(listing.Ignored, name)
			continue
		}

		path := filepath.Join(dir, name)
		// An unreadable document is still listed without a digest. The
		// parser reports it as a failure and the rest of the batch goes on.
		digest, err := Digest(path)
		if err == nil {
			if original, dup := seen[digest]; dup {
				listing.Duplicates[name] = original
				continue
			}
			seen[digest] = name
		}

		listing.Documents = append(listing.Documents, Document{
			Name:   name,
			Path:   path,
			Format: model.FormatFromPath(name),
			Digest: digest,
		})
	}
	return listing, nil
}

// Digest returns the hex SHA3-256 of the file at path.
func Digest(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha3.New256()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
