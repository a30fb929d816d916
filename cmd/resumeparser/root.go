package main

import (
	"fmt"
	"os"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for resumeparser.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resumeparser",
		Short: "Extract structured data from PDF and DOCX resumes",
		Long: `resumeparser extracts structured data from PDF and DOCX resumes.

Each document yields the candidate name, email, phone number, LinkedIn and
GitHub links, the skills found in a skill catalog, and up to five
organization, date and section entities.

Documents can be parsed one at a time, a whole directory at once, or
through an HTTP upload endpoint.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .resumeparser in current or home directory)")
	cmd.PersistentFlags().String("skills", config.DefaultSkillsFile,
		"Skill catalog file, one skill per line")
	cmd.PersistentFlags().String("model", config.DefaultModelName,
		"Annotation model name")

	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
