package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default SkillsFile is skills.txt", func(t *testing.T) {
		t.Parallel()
		if cfg.SkillsFile != "skills.txt" {
			t.Errorf("expected SkillsFile to be 'skills.txt', got '%s'", cfg.SkillsFile)
		}
	})

	t.Run("default ModelName is en_resume_sm", func(t *testing.T) {
		t.Parallel()
		if cfg.ModelName != "en_resume_sm" {
			t.Errorf("expected ModelName to be 'en_resume_sm', got '%s'", cfg.ModelName)
		}
	})

	t.Run("default batch paths match the directory layout", func(t *testing.T) {
		t.Parallel()
		if cfg.InputDir != "test_files" {
			t.Errorf("expected InputDir to be 'test_files', got '%s'", cfg.InputDir)
		}
		if cfg.OutputFile != "processed_resumes.json" {
			t.Errorf("expected OutputFile to be 'processed_resumes.json', got '%s'", cfg.OutputFile)
		}
	})

	t.Run("default Concurrency is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != 1 {
			t.Errorf("expected Concurrency to be 1, got %d", cfg.Concurrency)
		}
	})

	t.Run("default server settings", func(t *testing.T) {
		t.Parallel()
		if cfg.ListenAddress != "127.0.0.1:5000" {
			t.Errorf("expected ListenAddress to be '127.0.0.1:5000', got '%s'", cfg.ListenAddress)
		}
		if cfg.MaxUploadSize != 10*1024*1024 {
			t.Errorf("expected MaxUploadSize to be 10MB, got %d", cfg.MaxUploadSize)
		}
		if cfg.RequestTimeout != 60*time.Second {
			t.Errorf("expected RequestTimeout to be 60s, got %v", cfg.RequestTimeout)
		}
	})

	t.Run("default directories live under XDG paths", func(t *testing.T) {
		t.Parallel()
		if !strings.HasPrefix(cfg.ModelDir, XDGDataDir()) {
			t.Errorf("expected ModelDir under %s, got %s", XDGDataDir(), cfg.ModelDir)
		}
		if !strings.HasPrefix(cfg.UploadDir, XDGCacheDir()) {
			t.Errorf("expected UploadDir under %s, got %s", XDGCacheDir(), cfg.UploadDir)
		}
	})

	t.Run("default report flags are off", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport || cfg.Verbose || cfg.JSONLogs {
			t.Error("expected report and log flags to be false")
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

// TestConfigValidate tests each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"empty skills file", func(c *Config) { c.SkillsFile = "" }, ErrEmptySkillsFile},
		{"empty model name", func(c *Config) { c.ModelName = "" }, ErrEmptyModelName},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, ErrInvalidConcurrency},
		{"negative concurrency", func(c *Config) { c.Concurrency = -2 }, ErrInvalidConcurrency},
		{"zero upload size", func(c *Config) { c.MaxUploadSize = 0 }, ErrInvalidMaxUploadSize},
		{"negative request timeout", func(c *Config) { c.RequestTimeout = -time.Second }, ErrInvalidRequestTimeout},
		{"both report formats", func(c *Config) {
			c.JSONReport = true
			c.MarkdownReport = true
		}, ErrConflictingReportFormats},
		{"json report only", func(c *Config) { c.JSONReport = true }, nil},
		{"higher concurrency", func(c *Config) { c.Concurrency = 8 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestFileApply tests that file values override defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("overrides set values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{
			Skills: "/etc/resumeparser/skills.txt",
			Model:  ModelSection{Name: "en_custom", Dir: "/models"},
			Batch: BatchSection{
				Input:           "inbox",
				Output:          "out.json",
				MarkdownSummary: "summary.md",
				XLSX:            "out.xlsx",
				Concurrency:     4,
			},
			Server: ServerSection{
				Address:        "0.0.0.0:8080",
				UploadDir:      "/tmp/uploads",
				MaxUploadSize:  1024,
				RequestTimeout: 5 * time.Second,
				JSONLogs:       true,
			},
		}
		f.Apply(cfg)

		if cfg.SkillsFile != "/etc/resumeparser/skills.txt" || cfg.ModelName != "en_custom" || cfg.ModelDir != "/models" {
			t.Errorf("unexpected resource settings: %+v", cfg)
		}
		if cfg.InputDir != "inbox" || cfg.OutputFile != "out.json" || cfg.MarkdownSummary != "summary.md" ||
			cfg.XLSXFile != "out.xlsx" || cfg.Concurrency != 4 {
			t.Errorf("unexpected batch settings: %+v", cfg)
		}
		if cfg.ListenAddress != "0.0.0.0:8080" || cfg.UploadDir != "/tmp/uploads" || cfg.MaxUploadSize != 1024 ||
			cfg.RequestTimeout != 5*time.Second || !cfg.JSONLogs {
			t.Errorf("unexpected server settings: %+v", cfg)
		}
	})

	t.Run("keeps defaults for unset values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		want := NewConfig()
		if *cfg != *want {
			t.Errorf("expected defaults to be unchanged, got %+v", cfg)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.resumeparser")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".resumeparser")
		content := `skills: data/skills.txt
model:
  name: en_resume_sm
batch:
  input: resumes
  concurrency: 2
server:
  address: "127.0.0.1:8000"
  requestTimeout: 30s
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Skills != "data/skills.txt" {
			t.Errorf("expected skills path, got %q", cfg.Skills)
		}
		if cfg.Batch.Input != "resumes" || cfg.Batch.Concurrency != 2 {
			t.Errorf("unexpected batch section: %+v", cfg.Batch)
		}
		if cfg.Server.Address != "127.0.0.1:8000" || cfg.Server.RequestTimeout != 30*time.Second {
			t.Errorf("unexpected server section: %+v", cfg.Server)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".resumeparser")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("skills: skills.txt"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"cache":  XDGCacheDir(),
		"models": ModelDir(),
		"upload": UploadDir(),
	} {
		if !strings.Contains(dir, AppName) {
			t.Errorf("expected %s dir to contain %q, got %q", name, AppName, dir)
		}
	}
}
