package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/session"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Duplicate a resume under a new id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(cmd *cobra.Command, args []string) error {
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
	if err := sess.Load(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	copied, err := sess.Duplicate(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to duplicate resume: %w", err)
	}
	fmt.Printf("Created resume %s (%s)\n", copied.ID, copied.Title)
	return nil
}
