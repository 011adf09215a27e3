// Package ruleset handles loading built-in scoring rulesets.
//
// A ruleset carries the per-severity issue weights and the recommendation
// table keyed by assessment band. The rule logic itself is fixed in code;
// rulesets only tune how findings are weighed and what advice is printed.
package ruleset

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"backupaudit/internal/report"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Ruleset defines issue weights and per-band recommendations.
type Ruleset struct {
	Name            string              `yaml:"name"`
	Version         int                 `yaml:"version"`
	Description     string              `yaml:"description"`
	Weights         report.Weights      `yaml:"weights"`
	Recommendations map[string][]string `yaml:"recommendations"`
}

// LoadBuiltin loads a built-in ruleset by name.
func LoadBuiltin(name string) (*Ruleset, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("ruleset.LoadBuiltin: unknown ruleset %q: %w", name, err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("ruleset.LoadBuiltin: parse %q: %w", name, err)
	}
	if rs.Weights == (report.Weights{}) {
		rs.Weights = report.DefaultWeights
	}
	if rs.Weights.High <= 0 || rs.Weights.Medium <= 0 || rs.Weights.Low <= 0 {
		return nil, fmt.Errorf("ruleset.LoadBuiltin: %q has non-positive weights %+v", name, rs.Weights)
	}
	return &rs, nil
}

// List returns the names of all available built-in rulesets.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// RecommendationsFor returns the ordered recommendation list for a band.
// Unknown bands yield nothing.
func (rs *Ruleset) RecommendationsFor(a report.Assessment) []string {
	return rs.Recommendations[string(a)]
}
