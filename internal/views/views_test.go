package views

import (
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	// Deterministic table output regardless of the test environment.
	color.NoColor = true
	os.Exit(m.Run())
}

func TestCenter(t *testing.T) {
	if got := center("ab", 6); got != "  ab  " {
		t.Fatalf("unexpected centering %q", got)
	}
	if got := center("abc", 6); got != " abc  " {
		t.Fatalf("expected extra space on the right, got %q", got)
	}
	if got := center("too wide for it", 4); got != "too wide for it" {
		t.Fatalf("expected overflow untouched, got %q", got)
	}
}
