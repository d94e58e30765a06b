// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/marcela/resume-studio/internal/schema"
	"github.com/marcela/resume-studio/internal/types"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of one resume record.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", r.Title))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", r.Template))
	sb.WriteString(fmt.Sprintf("Updated:   %s\n", r.UpdatedAt.Format("2006-01-02 15:04")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Name:       %s\n", r.Data.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Job title:  %s\n", r.Data.PersonalInfo.JobTitle))
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(r.Data.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(r.Data.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d entries", len(r.Data.Skills)))

	p.printBox(fmt.Sprintf("Resume %s", r.ID), sb.String())
}

// PrintSections outputs the section ordering of a resume.
func (p *Printer) PrintSections(secs []types.SectionDescriptor) {
	var sb strings.Builder
	for i, s := range secs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%2d. %s (%s)", i+1, s.DisplayName, s.Tag))
	}
	p.printBox("Section order", sb.String())
}

// PrintValidation outputs field-level validation errors, or a short OK
// line when there are none.
func (p *Printer) PrintValidation(errs []schema.FieldError) {
	if len(errs) == 0 {
		fmt.Fprintln(p.out, "✓ document is valid") //nolint:errcheck // stdout
		return
	}
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	p.printBox(fmt.Sprintf("%d validation errors", len(errs)), sb.String())
}
