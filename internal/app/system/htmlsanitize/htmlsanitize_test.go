package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/oakhaven/schoolhub/internal/app/system/htmlsanitize"
)

func TestSanitizeStripsScripts(t *testing.T) {
	in := `<p>Welcome</p><script>alert("x")</script>`
	got := htmlsanitize.Sanitize(in)
	if strings.Contains(got, "<script") {
		t.Errorf("Sanitize left a script tag in %q", got)
	}
	if !strings.Contains(got, "<p>Welcome</p>") {
		t.Errorf("Sanitize dropped safe markup: %q", got)
	}
}

func TestSanitizeStripsEventHandlers(t *testing.T) {
	got := htmlsanitize.Sanitize(`<b onclick="steal()">Open House</b>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("Sanitize left an event handler in %q", got)
	}
	if !strings.Contains(got, "Open House") {
		t.Errorf("Sanitize dropped the text content: %q", got)
	}
}

func TestSanitizeKeepsFormatting(t *testing.T) {
	in := "<ul><li>Art</li><li>Music</li></ul>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("Sanitize(%q) = %q, want unchanged", in, got)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want empty", got)
	}
}
