// Package render produces console and Markdown output from a report.
package render

import (
	"fmt"
	"strings"

	"backupaudit/internal/report"
)

const (
	rule     = "======================================================================"
	thinRule = "----------------------------------------------------------------------"
)

// Text renders the fixed console layout. With verbose set, per-issue type
// and affected-entry detail is included.
func Text(r *report.Report, verbose bool) string {
	var b strings.Builder

	b.WriteString("\n" + rule + "\n")
	b.WriteString("iOS iCloud Backup Integrity Analysis Report\n")
	b.WriteString(rule + "\n\n")

	if r.Meta.GeneratedAt != "" {
		fmt.Fprintf(&b, "Generated: %s\n", r.Meta.GeneratedAt)
	}
	if r.Input.RecordFile != "" {
		fmt.Fprintf(&b, "Record: %s\n", r.Input.RecordFile)
	}
	s := r.Summary
	fmt.Fprintf(&b, "Total Findings: %d\n", s.TotalFindings)
	fmt.Fprintf(&b, "Total Issues: %d\n", s.TotalIssues)
	fmt.Fprintf(&b, "High Severity: %d\n", s.HighSeverityFindings)
	fmt.Fprintf(&b, "Corruption Score: %d\n", s.CorruptionScore)
	fmt.Fprintf(&b, "\nAssessment: %s\n", s.Assessment.Describe())
	b.WriteString("\n" + thinRule + "\n\n")

	if len(r.Findings) == 0 {
		b.WriteString("No corruption indicators detected.\n\n")
	}
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "%s\n", f.Category.Title())
		fmt.Fprintf(&b, "   Severity: %s\n", f.Severity)
		fmt.Fprintf(&b, "   Issues Found: %d\n", len(f.Issues))
		for _, iss := range f.Issues {
			fmt.Fprintf(&b, "\n   ! %s\n", iss.Description)
			if verbose {
				fmt.Fprintf(&b, "      Type: %s\n", iss.Type)
				fmt.Fprintf(&b, "      Severity: %s\n", iss.Severity)
				for _, a := range iss.Affected {
					fmt.Fprintf(&b, "      Affected: %s\n", a)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString(thinRule + "\n\nRecommendations:\n\n")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	return b.String()
}

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	b.WriteString("# iCloud Backup Integrity Report\n\n")
	fmt.Fprintf(&b, "**Assessment:** %s\n", r.Summary.Assessment.Describe())
	fmt.Fprintf(&b, "**Corruption score:** %d\n", r.Summary.CorruptionScore)
	fmt.Fprintf(&b, "**Findings:** %d (%d high severity), %d issues\n\n",
		r.Summary.TotalFindings, r.Summary.HighSeverityFindings, r.Summary.TotalIssues)

	if len(r.Findings) == 0 {
		b.WriteString("No corruption indicators detected.\n\n")
	}
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "## %s [%s]\n\n", f.Category.Title(), f.Severity)
		for _, iss := range f.Issues {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", iss.Type, iss.Severity, iss.Description)
			for _, a := range iss.Affected {
				fmt.Fprintf(&b, "  - %s\n", a)
			}
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	if r.Input.RecordFile != "" {
		b.WriteString("## Input\n\n")
		fmt.Fprintf(&b, "- %s", r.Input.RecordFile)
		if r.Input.RecordHash != "" {
			fmt.Fprintf(&b, " (%s)", r.Input.RecordHash)
		}
		b.WriteString("\n\n")
	}

	return b.String()
}
