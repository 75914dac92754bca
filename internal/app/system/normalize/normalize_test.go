package normalize_test

import (
	"testing"

	"github.com/oakhaven/schoolhub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Admin@Example.COM", "admin@example.com"},
		{"  admin@example.com  ", "admin@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalize.Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := normalize.Name("  Priya Sharma "); got != "Priya Sharma" {
		t.Errorf("Name() = %q, want %q", got, "Priya Sharma")
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"555-123-4567", "5551234567"},
		{" 555 123 4567 ", "5551234567"},
		{"+1 555-123-4567", "+15551234567"},
	}
	for _, tt := range tests {
		if got := normalize.Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
