package fields

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/nao1215/resumeparser/internal/model"
)

// ErrCatalogUnavailable is returned when the skill list cannot be read.
// It degrades the skills field only.
var ErrCatalogUnavailable = errors.New("skill catalog unavailable")

// DefaultSkillsFile is the catalog path, relative to the working directory.
const DefaultSkillsFile = "skills.txt"

// skill is one catalog entry with its whole-word matcher.
type skill struct {
	name    string
	matcher *regexp.Regexp
}

// Catalog is the process-wide list of known skills.
//
// The file is read lazily on first use, exactly once, even under concurrent
// callers. After loading the catalog is read-only; it is never reloaded.
type Catalog struct {
	path   string
	logger *slog.Logger
	load   func() ([]skill, error)
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithCatalogLogger sets the logger used when the catalog is loaded.
func WithCatalogLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// NewCatalog creates a catalog backed by the newline-delimited file at path.
// Nothing is read until the catalog is first used.
func NewCatalog(path string, opts ...CatalogOption) *Catalog {
	c := &Catalog{path: path}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.load = sync.OnceValues(c.readFile)
	return c
}

// NewCatalogFromList creates an already-populated catalog. Entries are
// trimmed and lowercased; empty entries are dropped.
func NewCatalogFromList(entries []string) *Catalog {
	skills := compileSkills(entries)
	return &Catalog{
		path:   "(memory)",
		logger: slog.Default(),
		load: func() ([]skill, error) {
			return skills, nil
		},
	}
}

// Path returns the file backing the catalog.
func (c *Catalog) Path() string {
	return c.path
}

// Err loads the catalog if needed and reports whether it is usable.
func (c *Catalog) Err() error {
	_, err := c.load()
	return err
}

// Len returns the number of catalog entries, or 0 if loading failed.
func (c *Catalog) Len() int {
	skills, err := c.load()
	if err != nil {
		return 0
	}
	return len(skills)
}

// Match returns the catalog entries found as whole words in normalized
// text. The result has set semantics and is sorted for stable output.
// When the catalog cannot be loaded, Match returns a single diagnostic
// entry and ErrCatalogUnavailable.
func (c *Catalog) Match(text string) ([]string, error) {
	skills, err := c.load()
	if err != nil {
		return []string{model.SkillCatalogMissing}, err
	}

	found := make([]string, 0)
	seen := make(map[string]struct{})
	for _, s := range skills {
		if _, dup := seen[s.name]; dup {
			continue
		}
		if s.matcher.MatchString(text) {
			seen[s.name] = struct{}{}
			found = append(found, s.name)
		}
	}
	sort.Strings(found)
	return found, nil
}

// readFile loads and compiles the catalog file.
func (c *Catalog) readFile() ([]skill, error) {
	f, err := os.Open(c.path)
	if err != nil {
		c.logger.Warn("skill catalog not available", "path", c.path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	defer f.Close()

	entries := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		c.logger.Warn("failed to read skill catalog", "path", c.path, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	skills := compileSkills(entries)
	c.logger.Debug("skill catalog loaded", "path", c.path, "entries", len(skills))
	return skills, nil
}

// compileSkills normalizes entries and builds a whole-word matcher for each.
func compileSkills(entries []string) []skill {
	skills := make([]skill, 0, len(entries))
	for _, e := range entries {
		name := strings.ToLower(strings.TrimSpace(e))
		if name == "" {
			continue
		}
		skills = append(skills, skill{
			name:    name,
			matcher: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	return skills
}
