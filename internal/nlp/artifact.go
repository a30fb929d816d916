package nlp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Artifact is the on-disk description of a rule model.
type Artifact struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Language string `yaml:"lang"`

	Organizations OrganizationRules `yaml:"organizations"`
	Dates         DateRules         `yaml:"dates"`
	Sections      SectionRules      `yaml:"sections"`

	// Stopwords stop an organization span from growing past them.
	Stopwords []string `yaml:"stopwords"`
}

// OrganizationRules describes how organization spans are found.
type OrganizationRules struct {
	Label string `yaml:"label"`

	// Heads are words that end or anchor an organization name.
	Heads []string `yaml:"heads"`

	// Connectors may follow a head to continue the name ("university of ...").
	Connectors []string `yaml:"connectors"`

	// Known is a gazetteer of organization names.
	Known []string `yaml:"known"`

	// MaxModifiers bounds how many words join a head on either side.
	MaxModifiers int `yaml:"max_modifiers"`
}

// DateRules lists regular expressions for date expressions.
type DateRules struct {
	Label    string   `yaml:"label"`
	Patterns []string `yaml:"patterns"`
}

// SectionRules lists education and experience phrases.
type SectionRules struct {
	Label   string   `yaml:"label"`
	Phrases []string `yaml:"phrases"`
}

// ParseArtifact decodes a YAML artifact and fills defaults.
func ParseArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	if a.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidModel)
	}
	if a.Organizations.Label == "" {
		a.Organizations.Label = LabelOrg
	}
	if a.Dates.Label == "" {
		a.Dates.Label = LabelDate
	}
	if a.Sections.Label == "" {
		a.Sections.Label = LabelSection
	}
	if a.Organizations.MaxModifiers <= 0 {
		a.Organizations.MaxModifiers = 3
	}
	return &a, nil
}
