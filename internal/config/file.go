package config

import "time"

// File represents the structure of the .resumeparser configuration file.
// Zero values leave the corresponding setting unchanged.
type File struct {
	// Skills is the path to the skill catalog.
	Skills string `yaml:"skills,omitempty"`

	Model  ModelSection  `yaml:"model,omitempty"`
	Batch  BatchSection  `yaml:"batch,omitempty"`
	Server ServerSection `yaml:"server,omitempty"`
}

// ModelSection configures the annotation model.
type ModelSection struct {
	Name string `yaml:"name,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

// BatchSection configures the batch command.
type BatchSection struct {
	Input           string `yaml:"input,omitempty"`
	Output          string `yaml:"output,omitempty"`
	MarkdownSummary string `yaml:"markdownSummary,omitempty"`
	XLSX            string `yaml:"xlsx,omitempty"`
	Concurrency     int    `yaml:"concurrency,omitempty"`
}

// ServerSection configures the upload server.
type ServerSection struct {
	Address        string        `yaml:"address,omitempty"`
	UploadDir      string        `yaml:"uploadDir,omitempty"`
	MaxUploadSize  int64         `yaml:"maxUploadSize,omitempty"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"`
	JSONLogs       bool          `yaml:"jsonLogs,omitempty"`
}

// Apply copies the values set in the file onto c.
func (cf *File) Apply(c *Config) {
	setString(&c.SkillsFile, cf.Skills)

	setString(&c.ModelName, cf.Model.Name)
	setString(&c.ModelDir, cf.Model.Dir)

	setString(&c.InputDir, cf.Batch.Input)
	setString(&c.OutputFile, cf.Batch.Output)
	setString(&c.MarkdownSummary, cf.Batch.MarkdownSummary)
	setString(&c.XLSXFile, cf.Batch.XLSX)
	if cf.Batch.Concurrency != 0 {
		c.Concurrency = cf.Batch.Concurrency
	}

	setString(&c.ListenAddress, cf.Server.Address)
	setString(&c.UploadDir, cf.Server.UploadDir)
	if cf.Server.MaxUploadSize != 0 {
		c.MaxUploadSize = cf.Server.MaxUploadSize
	}
	if cf.Server.RequestTimeout != 0 {
		c.RequestTimeout = cf.Server.RequestTimeout
	}
	if cf.Server.JSONLogs {
		c.JSONLogs = true
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
