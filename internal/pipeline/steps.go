package pipeline

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/nao1215/resumeparser/internal/fields"
	"github.com/nao1215/resumeparser/internal/model"
	"github.com/nao1215/resumeparser/internal/nlp"
	"github.com/nao1215/resumeparser/internal/normalize"
)

// TextExtractor reads the text of a document.
// *extract.Extractor satisfies it.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// SkillMatcher finds catalog skills in normalized text.
// *fields.Catalog satisfies it.
type SkillMatcher interface {
	Match(text string) ([]string, error)
}

// ModelSource provides the annotation model.
// *nlp.Handle satisfies it.
type ModelSource interface {
	Model() (nlp.Model, error)
}

// ExtractStep reads the document text and records its length.
type ExtractStep struct {
	extractor TextExtractor
}

// NewExtractStep creates the extraction step.
func NewExtractStep(extractor TextExtractor) *ExtractStep {
	return &ExtractStep{extractor: extractor}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do extracts the text. An extraction error fails the document.
func (s *ExtractStep) Do(_ context.Context, job *Job) error {
	text, err := s.extractor.Extract(job.Path)
	if err != nil {
		return err
	}
	job.Raw = text
	job.Result.RawTextLength = utf8.RuneCountInString(text)
	return nil
}

// NormalizeStep produces the normalized text.
type NormalizeStep struct{}

// NewNormalizeStep creates the normalization step.
func NewNormalizeStep() *NormalizeStep {
	return &NormalizeStep{}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do normalizes the raw text.
func (s *NormalizeStep) Do(_ context.Context, job *Job) error {
	job.Normalized = normalize.Normalize(job.Raw)
	return nil
}

// ContactStep fills email, phone and profile URLs from normalized text.
type ContactStep struct{}

// NewContactStep creates the contact step.
func NewContactStep() *ContactStep {
	return &ContactStep{}
}

// Name returns the step name.
func (s *ContactStep) Name() string {
	return "contact"
}

// Do extracts the contact fields.
func (s *ContactStep) Do(_ context.Context, job *Job) error {
	job.Result.Email = fields.Email(job.Normalized)
	job.Result.Phone = fields.Phone(job.Normalized)
	job.Result.URLs = fields.URLs(job.Normalized)
	return nil
}

// NameStep guesses the candidate name from the raw text, where line
// breaks and capitalization are still present.
type NameStep struct{}

// NewNameStep creates the name step.
func NewNameStep() *NameStep {
	return &NameStep{}
}

// Name returns the step name.
func (s *NameStep) Name() string {
	return "name"
}

// Do extracts the name.
func (s *NameStep) Do(_ context.Context, job *Job) error {
	job.Result.Name = fields.Name(job.Raw)
	return nil
}

// SkillStep matches the skill catalog.
type SkillStep struct {
	catalog SkillMatcher
	logger  *slog.Logger
}

// NewSkillStep creates the skill step.
func NewSkillStep(catalog SkillMatcher, logger *slog.Logger) *SkillStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillStep{catalog: catalog, logger: logger}
}

// Name returns the step name.
func (s *SkillStep) Name() string {
	return "skills"
}

// Do matches skills. An unavailable catalog degrades the field to a
// diagnostic entry.
func (s *SkillStep) Do(_ context.Context, job *Job) error {
	if s.catalog == nil {
		job.Result.Skills = []string{model.SkillCatalogMissing}
		return nil
	}
	skills, err := s.catalog.Match(job.Normalized)
	if err != nil {
		s.logger.Warn("skill catalog unavailable", "error", err)
	}
	job.Result.Skills = skills
	return nil
}

// EntityStep runs the annotation model.
type EntityStep struct {
	models ModelSource
	logger *slog.Logger
}

// NewEntityStep creates the entity step.
func NewEntityStep(models ModelSource, logger *slog.Logger) *EntityStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityStep{models: models, logger: logger}
}

// Name returns the step name.
func (s *EntityStep) Name() string {
	return "entities"
}

// Do extracts entities. A missing model degrades the field to a
// diagnostic entry.
func (s *EntityStep) Do(_ context.Context, job *Job) error {
	var m nlp.Model
	if s.models != nil {
		loaded, err := s.models.Model()
		if err != nil {
			s.logger.Warn("entity model unavailable", "error", err)
		}
		m = loaded
	}

	entities, err := nlp.ExtractEntities(m, job.Normalized)
	if err != nil {
		job.Result.Entities = []string{model.EntityModelMissing}
		return nil
	}
	job.Result.Entities = entities
	return nil
}
