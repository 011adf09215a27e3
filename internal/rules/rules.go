// Package rules implements the ordered corruption checks over a diagnostic record.
//
// Each rule is independent except for the backup-activity check, which keys on
// high-severity findings from the earlier checks. The dependency is explicit:
// every rule receives the findings accumulated so far, and Pipeline fixes the
// evaluation order.
package rules

import (
	"backupaudit/internal/diagnostic"
	"backupaudit/internal/report"
	"backupaudit/internal/ruleset"
)

// Rule inspects a record and the findings accumulated by earlier rules.
type Rule interface {
	Category() report.Category
	// Evaluate returns the rule's finding. A finding with no issues is
	// dropped from the report by Run.
	Evaluate(rec *diagnostic.Record, prior []report.Finding) report.Finding
}

// Pipeline returns the rules in their fixed evaluation order.
func Pipeline() []Rule {
	return []Rule{KeychainStatus{}, Timestamps{}, BackupActivity{}}
}

// Run evaluates the full pipeline and assembles the scored report body.
// The result is a pure function of the record and ruleset; metadata such as
// run id and timestamps is the caller's concern.
func Run(rec *diagnostic.Record, rs *ruleset.Ruleset) report.Report {
	var findings []report.Finding
	for _, rule := range Pipeline() {
		f := rule.Evaluate(rec, findings)
		if len(f.Issues) == 0 {
			continue
		}
		f.Severity = f.MaxSeverity()
		findings = append(findings, f)
	}
	report.SortFindings(findings)

	summary := report.ComputeSummary(findings, rs.Weights)
	return report.Report{
		Summary:         summary,
		Findings:        findings,
		Recommendations: rs.RecommendationsFor(summary.Assessment),
	}
}

// hasHighSeverity reports whether any accumulated finding is HIGH.
func hasHighSeverity(findings []report.Finding) bool {
	for _, f := range findings {
		if f.Severity == report.SeverityHigh {
			return true
		}
	}
	return false
}
