package model

import (
	"sort"
	"time"
)

// Batch accumulates the outcome of one directory scan.
type Batch struct {
	// ID identifies the run in logs and summaries.
	ID string `json:"id"`

	// InputDir is the scanned directory.
	InputDir string `json:"input_dir"`

	// StartedAt is when the scan began.
	StartedAt time.Time `json:"started_at"`

	// Records are the successfully parsed documents, in scan order.
	Records []*ParsedResume `json:"records"`

	// Failures lists documents skipped because parsing failed.
	Failures []BatchFailure `json:"failures,omitempty"`

	// Duplicates maps a skipped file name to the file it duplicates.
	Duplicates map[string]string `json:"duplicates,omitempty"`

	// Ignored counts directory entries that were not candidate documents.
	Ignored int `json:"ignored"`
}

// BatchFailure records one document that could not be parsed.
type BatchFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// SkillCount is the number of records mentioning a skill.
type SkillCount struct {
	Skill string
	Count int
}

// NewBatch creates an empty batch.
func NewBatch(id, inputDir string) *Batch {
	return &Batch{
		ID:         id,
		InputDir:   inputDir,
		StartedAt:  time.Now(),
		Records:    make([]*ParsedResume, 0),
		Duplicates: make(map[string]string),
	}
}

// Add tags the record with its source file name and appends it.
// Failed records are not appended; Add records them as failures and
// returns false.
func (b *Batch) Add(filename string, r *ParsedResume) bool {
	if r == nil {
		return false
	}
	if r.Failed() {
		b.Failures = append(b.Failures, BatchFailure{Filename: filename, Error: r.Error})
		return false
	}
	r.Filename = filename
	b.Records = append(b.Records, r)
	return true
}

// MarkDuplicate records that filename has the same content as original.
func (b *Batch) MarkDuplicate(filename, original string) {
	b.Duplicates[filename] = original
}

// Empty reports whether no record was collected.
func (b *Batch) Empty() bool {
	return len(b.Records) == 0
}

// Processed is the number of documents handed to the parser.
func (b *Batch) Processed() int {
	return len(b.Records) + len(b.Failures)
}

// SkillFrequencies counts how many records mention each skill.
// Diagnostic markers are not counted. The result is ordered by descending
// count, then by skill name.
func (b *Batch) SkillFrequencies() []SkillCount {
	counts := make(map[string]int)
	for _, r := range b.Records {
		for _, s := range r.Skills {
			if IsDiagnostic(s) {
				continue
			}
			counts[s]++
		}
	}

	result := make([]SkillCount, 0, len(counts))
	for skill, n := range counts {
		result = append(result, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Skill < result[j].Skill
	})
	return result
}
