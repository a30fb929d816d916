package nlp

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultModelName is the model loaded when none is configured.
const DefaultModelName = "en_resume_sm"

//go:embed models/*.yaml
var builtin embed.FS

var modelNameRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)

// Load finds the artifact for name and compiles it.
// Each directory in dirs is searched for <name>.yaml in order; the copy
// embedded in the binary is used when none of them has one.
func Load(name string, dirs ...string) (*RuleModel, error) {
	if !modelNameRegex.MatchString(name) {
		return nil, fmt.Errorf("%w: invalid model name %q", ErrModelNotFound, name)
	}

	file := name + ".yaml"
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Clean(filepath.Join(dir, file)))
		if err == nil {
			return ParseModel(data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read model %s: %w", name, err)
		}
	}

	data, err := builtin.ReadFile("models/" + file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return ParseModel(data)
}

// ParseModel compiles a YAML artifact into a model.
func ParseModel(data []byte) (*RuleModel, error) {
	a, err := ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	return NewRuleModel(a)
}
