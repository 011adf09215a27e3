package ruleset

import (
	"strings"
	"testing"

	"backupaudit/internal/report"
)

func TestLoadBuiltinAll(t *testing.T) {
	names := []string{"default", "strict"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rs, err := LoadBuiltin(name)
			if err != nil {
				t.Fatalf("LoadBuiltin(%q): %v", name, err)
			}
			if rs.Name != name {
				t.Errorf("ruleset name = %q, want %q", rs.Name, name)
			}
			if rs.Weights.High <= rs.Weights.Medium || rs.Weights.Medium <= rs.Weights.Low {
				t.Errorf("weights not strictly ordered: %+v", rs.Weights)
			}
			for _, band := range []report.Assessment{report.AssessmentMild, report.AssessmentModerate, report.AssessmentSevere} {
				if len(rs.RecommendationsFor(band)) == 0 {
					t.Errorf("band %s has no recommendations", band)
				}
			}
			if len(rs.RecommendationsFor(report.AssessmentClean)) != 0 {
				t.Error("CLEAN band should have no recommendations")
			}
		})
	}
}

func TestLoadBuiltinNotFound(t *testing.T) {
	if _, err := LoadBuiltin("nonexistent"); err == nil {
		t.Error("expected error for unknown ruleset")
	}
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	required := map[string]bool{"default": false, "strict": false}
	for _, n := range names {
		required[n] = true
	}
	for name, found := range required {
		if !found {
			t.Errorf("missing required ruleset: %s", name)
		}
	}
}

func TestSevereRecommendationsLeadWithUrgent(t *testing.T) {
	rs, err := LoadBuiltin("default")
	if err != nil {
		t.Fatal(err)
	}
	recs := rs.RecommendationsFor(report.AssessmentSevere)
	if len(recs) == 0 || !strings.HasPrefix(recs[0], "URGENT") {
		t.Errorf("SEVERE recommendations should lead with URGENT, got %v", recs)
	}
}
