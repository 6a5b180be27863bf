// Package renderer turns calculated loans into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/paydown"
)

//go:embed *.md
var templates embed.FS

// RenderSchedule renders the payment log of a loan followed by its totals.
func RenderSchedule(terms paydown.LoanTerms, r *paydown.Result) string {
	partials := map[string]string{
		"loan_title":  "loan_title.md",
		"loan_totals": "loan_totals.md",
	}
	return renderTemplate("schedule", "schedule.md", partials, NewReport(terms, r))
}

// RenderSummary renders the totals of a loan and its annual summaries.
func RenderSummary(terms paydown.LoanTerms, r *paydown.Result) string {
	partials := map[string]string{
		"loan_title":  "loan_title.md",
		"loan_totals": "loan_totals.md",
		"loan_annual": "loan_annual.md",
	}
	return renderTemplate("summary", "summary.md", partials, NewReport(terms, r))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
