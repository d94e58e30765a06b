package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcela/resume-studio/internal/observability"
	"github.com/marcela/resume-studio/internal/schema"
	"github.com/marcela/resume-studio/internal/store"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check [id]",
	Short: "Validate stored resumes",
	Long: `Run section validation over stored documents. With an id, only that
resume is checked. --file validates a raw store file against the JSON schema
instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Validate a store file against the JSON schema")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return fmt.Errorf("failed to read store file: %w", err)
		}
		if err := store.ValidateStoreJSON(data); err != nil {
			return err
		}
		fmt.Printf("%s is a valid store file\n", checkFile)
		return nil
	}

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

	printer := observability.NewPrinter(os.Stdout)
	checked := 0
	invalid := 0
	for i := range all {
		if len(args) == 1 && all[i].ID != args[0] {
			continue
		}
		checked++
		errs := schema.ValidateDocument(&all[i].Data)
		fmt.Printf("%s (%s)\n", all[i].ID, all[i].Title)
		printer.PrintValidation(errs)
		if len(errs) > 0 {
			invalid++
		}
	}
	if len(args) == 1 && checked == 0 {
		return &store.ResumeNotFoundError{ID: args[0]}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d resumes have validation errors", invalid, checked)
	}
	return nil
}
