// Package schema validates analysis reports for internal consistency.
//
// A report produced by the scorer always passes; the checks exist for the
// verify subcommand, which re-reads previously saved JSON reports that may
// have been edited or produced by an older build.
package schema

import (
	"fmt"

	"backupaudit/internal/report"
)

// ValidationError describes a single consistency violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural and arithmetic consistency under
// the given weights.
func Validate(r *report.Report, w report.Weights) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if !r.Summary.Assessment.Valid() {
		errs = append(errs, ValidationError{"summary.assessment", fmt.Sprintf("invalid assessment: %q", r.Summary.Assessment)})
	}

	if r.Summary.CorruptionScore < 0 {
		errs = append(errs, ValidationError{"summary.corruption_score", "must be >= 0"})
	}
	expected := report.ComputeScore(r.Findings, w)
	if r.Summary.CorruptionScore != expected {
		errs = append(errs, ValidationError{"summary.corruption_score",
			fmt.Sprintf("score %d does not match computed %d", r.Summary.CorruptionScore, expected)})
	}
	if band := report.AssessmentForScore(r.Summary.CorruptionScore); r.Summary.Assessment.Valid() && r.Summary.Assessment != band {
		errs = append(errs, ValidationError{"summary.assessment",
			fmt.Sprintf("assessment %q does not match score band %q", r.Summary.Assessment, band)})
	}

	if r.Summary.TotalFindings != len(r.Findings) {
		errs = append(errs, ValidationError{"summary.total_findings",
			fmt.Sprintf("expected %d, got %d", len(r.Findings), r.Summary.TotalFindings)})
	}
	var issues, high int
	for _, f := range r.Findings {
		issues += len(f.Issues)
		if f.Severity == report.SeverityHigh {
			high++
		}
	}
	if r.Summary.TotalIssues != issues {
		errs = append(errs, ValidationError{"summary.total_issues",
			fmt.Sprintf("expected %d, got %d", issues, r.Summary.TotalIssues)})
	}
	if r.Summary.HighSeverityFindings != high {
		errs = append(errs, ValidationError{"summary.high_severity_findings",
			fmt.Sprintf("expected %d, got %d", high, r.Summary.HighSeverityFindings)})
	}

	seen := make(map[report.Category]bool)
	for i, f := range r.Findings {
		prefix := fmt.Sprintf("findings[%d]", i)
		if !f.Category.Valid() {
			errs = append(errs, ValidationError{prefix + ".category", fmt.Sprintf("invalid: %q", f.Category)})
		} else if seen[f.Category] {
			errs = append(errs, ValidationError{prefix + ".category", fmt.Sprintf("duplicate category: %q", f.Category)})
		} else {
			seen[f.Category] = true
		}
		if !f.Severity.Valid() {
			errs = append(errs, ValidationError{prefix + ".severity", fmt.Sprintf("invalid: %q", f.Severity)})
		} else if max := f.MaxSeverity(); max != "" && f.Severity != max {
			errs = append(errs, ValidationError{prefix + ".severity",
				fmt.Sprintf("severity %q does not match max issue severity %q", f.Severity, max)})
		}
		if len(f.Issues) == 0 {
			errs = append(errs, ValidationError{prefix + ".issues", "at least one issue required"})
		}
		for j, iss := range f.Issues {
			ip := fmt.Sprintf("%s.issues[%d]", prefix, j)
			if iss.Type == "" {
				errs = append(errs, ValidationError{ip + ".type", "required"})
			}
			if !iss.Severity.Valid() {
				errs = append(errs, ValidationError{ip + ".severity", fmt.Sprintf("invalid: %q", iss.Severity)})
			}
			if iss.Description == "" {
				errs = append(errs, ValidationError{ip + ".description", "required"})
			}
		}
	}

	if r.Summary.Assessment == report.AssessmentClean && len(r.Recommendations) > 0 {
		errs = append(errs, ValidationError{"recommendations", "CLEAN reports carry no recommendations"})
	}

	return errs
}
