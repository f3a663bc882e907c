package sanitize

import (
	"strings"
	"testing"
)

func TestDescription(t *testing.T) {
	t.Run("strips HTML tags and entities", func(t *testing.T) {
		got := Description("<p>A desert planet&nbsp;saga</p>")
		if strings.ContainsAny(got, "<>") {
			t.Errorf("tags survived sanitization: %q", got)
		}
		if strings.Contains(got, "&nbsp;") {
			t.Errorf("entity survived sanitization: %q", got)
		}
		if got != "A desert planet saga" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		got := Description("several\n\n  kinds\t\tof   space")
		if got != "several kinds of space" {
			t.Errorf("got %q", got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("double space survived: %q", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Description(""); got != "" {
			t.Errorf("got %q, want empty", got)
		}
		if got := Description("<br/>"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("truncates with ellipsis inside the cap", func(t *testing.T) {
		long := strings.Repeat("a", MaxDescriptionLength+500)
		got := Description(long)
		if len([]rune(got)) > MaxDescriptionLength {
			t.Errorf("length %d exceeds cap %d", len([]rune(got)), MaxDescriptionLength)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("truncated output missing ellipsis: %q", got[len(got)-10:])
		}
	})

	t.Run("short input untouched by cap", func(t *testing.T) {
		got := Description("already clean")
		if got != "already clean" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"<p>Some <b>rich</b> text &amp; more</p>",
			strings.Repeat("x", MaxDescriptionLength+100),
			"plain text",
			"",
		}
		for _, in := range inputs {
			once := Description(in)
			twice := Description(once)
			if once != twice {
				t.Errorf("not idempotent for input len %d: %q != %q", len(in), once, twice)
			}
		}
	})

	t.Run("multibyte text not cut mid-rune", func(t *testing.T) {
		long := strings.Repeat("è", MaxDescriptionLength+10)
		got := Description(long)
		for _, r := range got {
			if r == '�' {
				t.Fatal("replacement rune found, truncation split a character")
			}
		}
	})
}
