package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/marcela/resume-studio/internal/export"
	"github.com/marcela/resume-studio/internal/render"
	"github.com/marcela/resume-studio/internal/types"
)

var (
	exportTemplate string
	exportAll      bool
	exportHTML     bool
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a resume to PDF or HTML",
	Long:  `Render a resume through its visual template and print it to PDF with headless Chrome, or write the intermediate HTML with --html.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Override the stored template (modern, classic, minimal)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every template variant")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Write HTML instead of PDF")
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resumes, _, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	resume, err := resumes.ReadResume(cmd.Context(), cfg.OwnerID, args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	templates := []types.Template{resume.Template}
	if exportTemplate != "" {
		templates = []types.Template{types.Template(exportTemplate)}
	}
	if exportAll {
		templates = []types.Template{types.TemplateModern, types.TemplateClassic, types.TemplateMinimal}
	}

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, tpl := range templates {
		g.Go(func() error {
			html, err := render.Render(&resume.Data, tpl)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", tpl, err)
			}

			name := exportFileName(resume.Title, tpl, exportHTML)
			path := filepath.Join(exportOut, name)
			if exportHTML {
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
			} else {
				pdf, err := export.PDF(ctx, html)
				if err != nil {
					return fmt.Errorf("failed to export %s: %w", tpl, err)
				}
				if err := os.WriteFile(path, pdf, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}
	return g.Wait()
}

// exportFileName builds a filesystem-safe output name from the resume title.
func exportFileName(title string, tpl types.Template, html bool) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)
	ext := "pdf"
	if html {
		ext = "html"
	}
	return fmt.Sprintf("%s_%s.%s", safe, tpl, ext)
}
