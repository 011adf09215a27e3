package report

// Severity indicates the weight class of an issue.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// order returns a sort key (lower = higher priority).
func (s Severity) order() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Assessment is the categorical corruption level derived from the score.
type Assessment string

const (
	AssessmentClean    Assessment = "CLEAN"
	AssessmentMild     Assessment = "MILD"
	AssessmentModerate Assessment = "MODERATE"
	AssessmentSevere   Assessment = "SEVERE"
)

func (a Assessment) Valid() bool {
	switch a {
	case AssessmentClean, AssessmentMild, AssessmentModerate, AssessmentSevere:
		return true
	}
	return false
}

// Describe returns the long-form label used in rendered reports.
func (a Assessment) Describe() string {
	switch a {
	case AssessmentSevere:
		return "SEVERE - Multiple corruption indicators present"
	case AssessmentModerate:
		return "MODERATE - Significant corruption detected"
	case AssessmentMild:
		return "MILD - Some issues detected"
	default:
		return "CLEAN - No corruption indicators found"
	}
}

// Category identifies the rule that produced a finding.
type Category string

const (
	CategoryKeychainStatus      Category = "KEYCHAIN_STATUS"
	CategoryTimestampValidation Category = "TIMESTAMP_VALIDATION"
	CategoryBackupActivity      Category = "BACKUP_ACTIVITY"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryKeychainStatus, CategoryTimestampValidation, CategoryBackupActivity:
		return true
	}
	return false
}

// Title returns the human-readable finding heading.
func (c Category) Title() string {
	switch c {
	case CategoryKeychainStatus:
		return "Keychain Status Analysis"
	case CategoryTimestampValidation:
		return "Timestamp Validation"
	case CategoryBackupActivity:
		return "Backup Activity Analysis"
	default:
		return string(c)
	}
}

// order returns the fixed pipeline position for stable sorting.
func (c Category) order() int {
	switch c {
	case CategoryKeychainStatus:
		return 0
	case CategoryTimestampValidation:
		return 1
	case CategoryBackupActivity:
		return 2
	default:
		return 3
	}
}
