package pipeline

import "strings"

// htmlEscaper replaces the five HTML-significant characters with entities.
// Unlike html.EscapeString it emits &#39; for the apostrophe and &quot; for
// the double quote, matching the pages already published.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var htmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// EscapeHTML escapes &, <, >, " and ' by literal entity substitution.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML. Other entities are left untouched.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
