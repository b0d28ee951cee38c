package promptguard

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncatePreviewKeepsShortMessage(t *testing.T) {
	if got := truncatePreview("merhaba", 200); got != "merhaba" {
		t.Fatalf("expected message unchanged, got %q", got)
	}
}

func TestTruncatePreviewBacksOffMidRune(t *testing.T) {
	// "ş" is two bytes, a limit of 5 lands inside the third rune
	got := truncatePreview("şşşş", 5)

	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if got != "şş...[truncated]" {
		t.Fatalf("expected cut on the previous rune boundary, got %q", got)
	}
}

func TestTruncatePreviewLongTurkishMessage(t *testing.T) {
	message := strings.Repeat("güvenlik ", 40)

	got := truncatePreview(message, 200)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if !strings.HasSuffix(got, "...[truncated]") {
		t.Fatalf("expected truncation marker, got %q", got)
	}
	if len(got) > 200+len("...[truncated]") {
		t.Fatalf("preview too long: %d bytes", len(got))
	}
}
