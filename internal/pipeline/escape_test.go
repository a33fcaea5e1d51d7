package pipeline

import "testing"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	got := EscapeHTML(`<a href="x">Tom & 'Jerry'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;Tom &amp; &#39;Jerry&#39;&lt;/a&gt;"
	if got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
}

func TestEscapeHTML_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text",
		"if a < b and b > c: print(\"ok\")",
		"x = 'single' & \"double\"",
		"already &amp; escaped &lt;tag&gt;",
		"&#39; literal entity",
		"<<>>&&''\"\"",
	}
	for _, in := range inputs {
		if got := UnescapeHTML(EscapeHTML(in)); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}
