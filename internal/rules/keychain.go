package rules

import (
	"fmt"
	"sort"

	"backupaudit/internal/diagnostic"
	"backupaudit/internal/report"
)

// KeychainStatus flags a failed syncing circle and PCS views stuck in
// "unknown" state.
type KeychainStatus struct{}

func (KeychainStatus) Category() report.Category { return report.CategoryKeychainStatus }

func (KeychainStatus) Evaluate(rec *diagnostic.Record, _ []report.Finding) report.Finding {
	f := report.Finding{Category: report.CategoryKeychainStatus}
	sk := rec.StatusKeychain
	if sk == nil {
		return f
	}

	if sk.CircleStatus != nil && *sk.CircleStatus == "Error" {
		f.Issues = append(f.Issues, report.Issue{
			Type:        "circle_status_error",
			Severity:    report.SeverityHigh,
			Description: `circle_status is "Error" - indicates keychain sync failure`,
		})
	}

	var unknown []string
	for view, state := range sk.ViewStatus {
		if state == "unknown" {
			unknown = append(unknown, view)
		}
	}
	sort.Strings(unknown)
	if len(unknown) > 0 {
		f.Issues = append(f.Issues, report.Issue{
			Type:        "unknown_pcs_views",
			Severity:    report.SeverityHigh,
			Description: fmt.Sprintf(`%d PCS views showing "unknown" status`, len(unknown)),
			Affected:    unknown,
		})
	}
	return f
}
