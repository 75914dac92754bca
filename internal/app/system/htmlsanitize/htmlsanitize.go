// Package htmlsanitize strips unsafe markup from admin-supplied rich text
// (school about text, event and job descriptions) before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers, and unsafe URLs removed.
// Safe formatting tags (paragraphs, emphasis, lists, links, tables) pass
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
