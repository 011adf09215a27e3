// Package report defines the core types for backupaudit analysis output.
package report

// Report is the top-level output object.
type Report struct {
	Tool            string    `json:"tool"`
	Version         string    `json:"version"`
	Input           Input     `json:"input"`
	Summary         Summary   `json:"summary"`
	Findings        []Finding `json:"findings"`
	Recommendations []string  `json:"recommendations,omitempty"`
	Meta            Meta      `json:"meta"`
}

// Input describes the record and settings used for the analysis.
type Input struct {
	RecordFile string `json:"record_file,omitempty"`
	RecordHash string `json:"record_hash,omitempty"`
	Ruleset    string `json:"ruleset"`
	Mock       bool   `json:"mock,omitempty"`
}

// Summary holds the aggregate counts, corruption score, and assessment.
type Summary struct {
	TotalFindings        int        `json:"total_findings"`
	TotalIssues          int        `json:"total_issues"`
	HighSeverityFindings int        `json:"high_severity_findings"`
	CorruptionScore      int        `json:"corruption_score"`
	Assessment           Assessment `json:"assessment"`
}

// Finding groups the issues detected by one rule category.
// A rule that detects nothing produces no Finding at all.
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Issues   []Issue  `json:"issues"`
}

// Issue is a single detected corruption indicator.
type Issue struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Affected    []string `json:"affected,omitempty"`
}

// Meta records run identity and timing. Filled by the CLI layer,
// never by the scorer, so scoring stays deterministic.
type Meta struct {
	RunID       string `json:"run_id,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// MaxSeverity returns the highest severity among the issues, or "" if none.
func (f Finding) MaxSeverity() Severity {
	var max Severity
	best := 99
	for _, iss := range f.Issues {
		if o := iss.Severity.order(); o < best {
			best = o
			max = iss.Severity
		}
	}
	return max
}
