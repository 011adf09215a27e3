package report

// ComputeSummary derives the counts, score, and assessment from findings.
func ComputeSummary(findings []Finding, w Weights) Summary {
	totalIssues := 0
	high := 0
	for _, f := range findings {
		totalIssues += len(f.Issues)
		if f.Severity == SeverityHigh {
			high++
		}
	}

	score := ComputeScore(findings, w)
	return Summary{
		TotalFindings:        len(findings),
		TotalIssues:          totalIssues,
		HighSeverityFindings: high,
		CorruptionScore:      score,
		Assessment:           AssessmentForScore(score),
	}
}
