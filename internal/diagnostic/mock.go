package diagnostic

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// LoadMock loads a built-in demonstration record by name.
// Names come from MockNames; "corrupted" and "valid" ship by default.
func LoadMock(name string) (*Source, error) {
	filename := "fixtures/" + name + ".json"
	data, err := fixturesFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("diagnostic.LoadMock: unknown mock %q: %w", name, err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	return &Source{
		FilePath: "mock:" + name,
		Hash:     fmt.Sprintf("sha256:%x", h),
		Record:   rec,
	}, nil
}

// MockNames returns the names of all built-in mock records.
func MockNames() ([]string, error) {
	entries, err := fixturesFS.ReadDir("fixtures")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".json") {
			names = append(names, strings.TrimSuffix(n, ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}
