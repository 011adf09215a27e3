package rules

import (
	"fmt"
	"time"

	"backupaudit/internal/diagnostic"
	"backupaudit/internal/report"
)

// Timestamps flags keychain items carrying epoch or unparseable dates.
// Legitimate iOS keychain entries never date from 1970.
type Timestamps struct{}

func (Timestamps) Category() report.Category { return report.CategoryTimestampValidation }

func (Timestamps) Evaluate(rec *diagnostic.Record, _ []report.Finding) report.Finding {
	f := report.Finding{Category: report.CategoryTimestampValidation}

	var affected []string
	for _, item := range rec.KeychainItems {
		if anomalousDate(item.CreationDate) || anomalousDate(item.ModificationDate) {
			affected = append(affected, fmt.Sprintf("%s (%s)", item.Service, item.Account))
		}
	}
	if len(affected) > 0 {
		f.Issues = append(f.Issues, report.Issue{
			Type:        "epoch_timestamps",
			Severity:    report.SeverityHigh,
			Description: fmt.Sprintf("Found %d keychain items with epoch or invalid timestamps", len(affected)),
			Affected:    affected,
		})
	}
	return f
}

// timestampLayouts are the date formats seen in iOS diagnostic dumps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
}

// anomalousDate reports whether a present date string is an epoch sentinel
// or fails to parse. A nil date is absent evidence, never an anomaly.
func anomalousDate(s *string) bool {
	if s == nil {
		return false
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, *s)
		if err != nil {
			continue
		}
		return isEpochSentinel(t)
	}
	return true
}

// isEpochSentinel reports whether a timestamp falls on the epoch day.
// Corrupted dumps clamp dates to 1970-01-01 with second-level noise, so the
// whole day is treated as the sentinel rather than the exact instant.
func isEpochSentinel(t time.Time) bool {
	u := t.UTC()
	return u.Year() == 1970 && u.YearDay() == 1
}
