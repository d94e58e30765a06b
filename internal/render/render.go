// Package render turns a resume document into the preview HTML for one of
// the visual templates. Rendering is a pure function of the document and
// the template tag; documents are always fully defaulted, so templates only
// guard optional leaf fields, never section presence.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/marcela/resume-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// monthNames are the abbreviated pt-BR month names used in date ranges.
var monthNames = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var templates = template.Must(
	template.New("resume").Funcs(template.FuncMap{
		"formatDate": formatDate,
		"dateRange":  dateRange,
		"joinComma":  func(items []string) string { return strings.Join(items, ", ") },
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// formatDate renders a YYYY-MM or YYYY-MM-DD date as "mmm yyyy". Values
// that do not parse are shown as-is.
func formatDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
		}
	}
	return s
}

// dateRange renders "start - end". When current is set the end date is
// never displayed, whatever is stored in endDate.
func dateRange(start, end string, current bool) string {
	if current {
		return formatDate(start) + " - Atual"
	}
	if end == "" {
		return formatDate(start)
	}
	return formatDate(start) + " - " + formatDate(end)
}

// Render produces the preview HTML for the document using the given
// template tag.
func Render(d *types.Document, tpl types.Template) (string, error) {
	if !tpl.Valid() {
		return "", fmt.Errorf("unknown template: %q", tpl)
	}
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, string(tpl)+".html.tmpl", d); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", tpl, err)
	}
	return sb.String(), nil
}
