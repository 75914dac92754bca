// Package normalize holds the small field normalizers applied before
// persistence so lookups behave consistently.
package normalize

import "strings"

// Email lower-cases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims whitespace and drops internal spaces and dashes so the same
// number always compares equal.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
