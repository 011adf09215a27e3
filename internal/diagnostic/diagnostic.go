// Package diagnostic handles reading and decoding iOS diagnostic records.
//
// Every field of a record is optional. A missing or mistyped sub-field is
// absent evidence, not an error; only an input that is not a JSON object at
// all is rejected, with a FormatError.
package diagnostic

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
)

// Record is a decoded diagnostic document.
type Record struct {
	StatusKeychain *StatusKeychain `json:"status_keychain,omitempty"`
	KeychainItems  []Item          `json:"keychain_items,omitempty"`
	BackupMetadata *BackupMetadata `json:"backup_metadata,omitempty"`
}

// StatusKeychain reports keychain syncing-circle health and PCS view states.
type StatusKeychain struct {
	CircleStatus *string           `json:"circle_status,omitempty"`
	ViewStatus   map[string]string `json:"view_status,omitempty"`
}

// Item is one keychain entry from the diagnostic dump.
// Dates are kept as raw strings; the rules decide what parses.
type Item struct {
	Service          string  `json:"service"`
	Account          string  `json:"account"`
	CreationDate     *string `json:"creation_date,omitempty"`
	ModificationDate *string `json:"modification_date,omitempty"`
}

// BackupMetadata holds the cloud-backup state fields. Key names match the
// iOS diagnostic output verbatim.
type BackupMetadata struct {
	NilBackupDateFetchDate *string `json:"NilBackupDateFetchDate,omitempty"`
	SyncZoneFetched        bool    `json:"SyncZoneFetched,omitempty"`
	LastBackupStatus       *string `json:"LastBackupStatus,omitempty"`
}

// Source is a loaded record together with its provenance.
type Source struct {
	FilePath string
	Hash     string
	Record   *Record
}

// FormatError reports input that is not a parseable JSON object.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("diagnostic: %s: %v", e.Reason, e.Err)
	}
	return "diagnostic: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse decodes a diagnostic record from JSON bytes.
//
// Top-level keys with unexpected shapes are skipped rather than failing the
// parse; corrupted dumps routinely carry mistyped fields and the scorer
// treats them as absent evidence.
func Parse(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: "input is not a JSON object", Err: err}
	}
	if raw == nil {
		return nil, &FormatError{Reason: "input is not a JSON object"}
	}

	rec := &Record{}
	if msg, ok := raw["status_keychain"]; ok {
		var sk StatusKeychain
		if err := json.Unmarshal(msg, &sk); err == nil {
			rec.StatusKeychain = &sk
		}
	}
	if msg, ok := raw["keychain_items"]; ok {
		var items []Item
		if err := json.Unmarshal(msg, &items); err == nil {
			rec.KeychainItems = items
		}
	}
	if msg, ok := raw["backup_metadata"]; ok {
		var bm BackupMetadata
		if err := json.Unmarshal(msg, &bm); err == nil {
			rec.BackupMetadata = &bm
		}
	}
	return rec, nil
}

// Load reads a diagnostic file, computes its SHA-256 hash, and parses it.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Reason: "read " + path, Err: err}
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	return &Source{
		FilePath: path,
		Hash:     fmt.Sprintf("sha256:%x", h),
		Record:   rec,
	}, nil
}
