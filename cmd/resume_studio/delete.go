package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/session"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := sess.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	fmt.Printf("Deleted resume %s\n", args[0])
	return nil
}
