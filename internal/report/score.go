package report

// Weights are the per-issue score contributions by severity.
// All weights must be positive so the score is monotonic in the issue set.
type Weights struct {
	High   int `yaml:"high" json:"high"`
	Medium int `yaml:"medium" json:"medium"`
	Low    int `yaml:"low" json:"low"`
}

// DefaultWeights are used when no ruleset supplies its own.
var DefaultWeights = Weights{High: 5, Medium: 2, Low: 1}

// For returns the weight for a severity. Unknown severities weigh as Low.
func (w Weights) For(s Severity) int {
	switch s {
	case SeverityHigh:
		return w.High
	case SeverityMedium:
		return w.Medium
	default:
		return w.Low
	}
}

// ComputeScore sums the per-issue weights across all findings.
func ComputeScore(findings []Finding, w Weights) int {
	score := 0
	for _, f := range findings {
		for _, iss := range f.Issues {
			score += w.For(iss.Severity)
		}
	}
	return score
}

// AssessmentForScore maps a corruption score onto its band.
// Bands: 0 CLEAN, 1-4 MILD, 5-9 MODERATE, >=10 SEVERE.
func AssessmentForScore(score int) Assessment {
	switch {
	case score >= 10:
		return AssessmentSevere
	case score >= 5:
		return AssessmentModerate
	case score >= 1:
		return AssessmentMild
	default:
		return AssessmentClean
	}
}
