package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
)

func TestSanitize_StripsScripts(t *testing.T) {
	in := `Great service!<script>alert("xss")</script>`
	out := htmlsanitize.Sanitize(in)
	if strings.Contains(out, "<script") || strings.Contains(out, "alert") {
		t.Errorf("script survived: %q", out)
	}
	if !strings.Contains(out, "Great service!") {
		t.Errorf("text lost: %q", out)
	}
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	in := `<p>We meet <strong>every Sunday</strong>.</p>`
	out := htmlsanitize.Sanitize(in)
	if !strings.Contains(out, "<strong>every Sunday</strong>") {
		t.Errorf("formatting lost: %q", out)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	in := `<img src="x" onerror="steal()">`
	out := htmlsanitize.Sanitize(in)
	if strings.Contains(out, "onerror") {
		t.Errorf("event handler survived: %q", out)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if out := htmlsanitize.Sanitize(""); out != "" {
		t.Errorf("got %q, want empty", out)
	}
}
