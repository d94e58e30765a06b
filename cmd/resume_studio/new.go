package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/observability"
	"github.com/marcela/resume-studio/internal/session"
	"github.com/marcela/resume-studio/internal/types"
)

var newTemplate string

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new resume",
	Long:  `Create a resume with a fully defaulted document and the standard section ordering, and persist it to the configured store.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newTemplate, "template", string(types.TemplateModern), "Visual template (modern, classic, minimal)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resumes, _, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sess := session.New(resumes, cfg.OwnerID)
	resume, err := sess.Create(cmd.Context(), args[0], types.Template(newTemplate))
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintResume(resume)
	} else {
		fmt.Printf("Created resume %s (%s)\n", resume.ID, resume.Title)
	}
	return nil
}
