package rules

import (
	"backupaudit/internal/diagnostic"
	"backupaudit/internal/report"
)

// BackupActivity flags a backup that completed while the earlier checks
// found high-severity corruption: the cloud now holds the bad data.
// Must run after KeychainStatus and Timestamps.
type BackupActivity struct{}

func (BackupActivity) Category() report.Category { return report.CategoryBackupActivity }

func (BackupActivity) Evaluate(rec *diagnostic.Record, prior []report.Finding) report.Finding {
	f := report.Finding{Category: report.CategoryBackupActivity}
	bm := rec.BackupMetadata
	if bm == nil {
		return f
	}

	completed := bm.LastBackupStatus != nil && *bm.LastBackupStatus == "Completed"
	syncActive := bm.SyncZoneFetched && bm.NilBackupDateFetchDate != nil

	if (completed || syncActive) && hasHighSeverity(prior) {
		f.Issues = append(f.Issues, report.Issue{
			Type:        "active_backup_without_validation",
			Severity:    report.SeverityHigh,
			Description: "iCloud backup proceeded without validation despite corruption indicators",
		})
	}
	return f
}
