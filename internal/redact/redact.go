// Package redact masks account identifiers and secrets in rendered reports.
//
// Keychain diagnostic dumps carry real account names (Apple IDs, email
// addresses) and occasionally token-shaped values; reports meant for a
// disclosure package must not leak them.
package redact

import "regexp"

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// Email-style account identifiers
		`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
		// Bearer tokens
		`Bearer\s+[A-Za-z0-9\-._~+/]+=*`,
		// Private key blocks
		`-----BEGIN [A-Z ]+PRIVATE KEY-----[\s\S]*?-----END [A-Z ]+PRIVATE KEY-----`,
		// Generic key/secret/token/password assignments
		`(?i)(api[_-]?key|secret[_-]?key|token|password|passwd|credentials)\s*[:=]\s*\S+`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Redact replaces account and secret patterns in text with [REDACTED].
func Redact(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, "[REDACTED]")
	}
	return text
}
