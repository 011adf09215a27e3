package diagnostic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEmptyObject(t *testing.T) {
	rec, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse({}) returned error: %v", err)
	}
	if rec.StatusKeychain != nil || rec.KeychainItems != nil || rec.BackupMetadata != nil {
		t.Errorf("Parse({}) should yield an all-absent record, got %+v", rec)
	}
}

func TestParseNonObject(t *testing.T) {
	inputs := map[string]string{
		"bare string":    `"hello"`,
		"array":          `[1, 2, 3]`,
		"number":         `42`,
		"null":           `null`,
		"invalid syntax": `{not json`,
		"empty":          ``,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Parse(%q) error = %v, want FormatError", input, err)
			}
		})
	}
}

func TestParseMistypedSubfieldTolerated(t *testing.T) {
	// status_keychain is a string instead of an object: skipped, not fatal.
	rec, err := Parse([]byte(`{"status_keychain": "broken", "keychain_items": 7}`))
	if err != nil {
		t.Fatalf("Parse returned error for mistyped sub-fields: %v", err)
	}
	if rec.StatusKeychain != nil {
		t.Error("mistyped status_keychain should decode as absent")
	}
	if rec.KeychainItems != nil {
		t.Error("mistyped keychain_items should decode as absent")
	}
}

func TestParsePartialRecord(t *testing.T) {
	data := `{"status_keychain": {"circle_status": "Error"}}`
	rec, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if rec.StatusKeychain == nil || rec.StatusKeychain.CircleStatus == nil {
		t.Fatal("circle_status should be present")
	}
	if *rec.StatusKeychain.CircleStatus != "Error" {
		t.Errorf("circle_status = %q, want Error", *rec.StatusKeychain.CircleStatus)
	}
	if rec.StatusKeychain.ViewStatus != nil {
		t.Error("view_status should be absent")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diag.json")
	if err := os.WriteFile(path, []byte(`{"keychain_items": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if src.FilePath != path {
		t.Errorf("FilePath = %q, want %q", src.FilePath, path)
	}
	if !strings.HasPrefix(src.Hash, "sha256:") {
		t.Errorf("Hash = %q, want sha256: prefix", src.Hash)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Errorf("Load on missing file = %v, want FormatError", err)
	}
}

func TestLoadMockCorrupted(t *testing.T) {
	src, err := LoadMock("corrupted")
	if err != nil {
		t.Fatalf("LoadMock(corrupted) returned error: %v", err)
	}
	rec := src.Record
	if rec.StatusKeychain == nil || rec.StatusKeychain.CircleStatus == nil ||
		*rec.StatusKeychain.CircleStatus != "Error" {
		t.Error("corrupted mock should have circle_status Error")
	}
	if got := len(rec.StatusKeychain.ViewStatus); got != 11 {
		t.Errorf("corrupted mock has %d views, want 11", got)
	}
	if got := len(rec.KeychainItems); got != 2 {
		t.Errorf("corrupted mock has %d keychain items, want 2", got)
	}
}

func TestLoadMockValid(t *testing.T) {
	src, err := LoadMock("valid")
	if err != nil {
		t.Fatalf("LoadMock(valid) returned error: %v", err)
	}
	sk := src.Record.StatusKeychain
	if sk == nil || sk.CircleStatus == nil || *sk.CircleStatus != "In Circle" {
		t.Error("valid mock should have circle_status In Circle")
	}
	for view, state := range sk.ViewStatus {
		if state != "enabled" {
			t.Errorf("valid mock view %s = %q, want enabled", view, state)
		}
	}
}

func TestLoadMockUnknown(t *testing.T) {
	if _, err := LoadMock("missing"); err == nil {
		t.Error("LoadMock(missing) should fail")
	}
}

func TestMockNames(t *testing.T) {
	names, err := MockNames()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"corrupted", "valid"}
	if len(names) != len(want) {
		t.Fatalf("MockNames = %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("MockNames[%d] = %q, want %q", i, names[i], n)
		}
	}
}
