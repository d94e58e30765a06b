package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/observability"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes in the configured store",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resumes, _, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	all, err := resumes.ListResumes(cmd.Context(), cfg.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No resumes found.")
		return nil
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range all {
			printer.PrintResume(&all[i])
		}
		return nil
	}
	for _, r := range all {
		fmt.Printf("%s  %-30s %-8s %s\n", r.ID, r.Title, r.Template, r.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
