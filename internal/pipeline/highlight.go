package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight modes.
const (
	HighlightClient = "client"
	HighlightServer = "server"
)

// DefaultChromaStyle is used when no style is configured.
const DefaultChromaStyle = "github"

// Sentinel errors for code highlighting.
var (
	ErrUnknownStyle = errors.New("unknown highlight style")
	ErrHighlight    = errors.New("code highlighting failed")
)

// CodeHighlighter renders the source of a code cell as a <pre> block.
type CodeHighlighter interface {
	Highlight(code, language string) (string, error)
}

// ClientHighlighter escapes the source and tags it with a language class so
// highlight.js can color it in the browser.
type ClientHighlighter struct{}

// Highlight never fails.
func (ClientHighlighter) Highlight(code, language string) (string, error) {
	return `<pre><code class="language-` + language + `">` + EscapeHTML(code) + `</code></pre>`, nil
}

// ChromaHighlighter tokenizes code with chroma and emits class-based spans.
// The matching rules come from WriteCSS.
type ChromaHighlighter struct {
	name      string
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty name selects DefaultChromaStyle.
func NewChromaHighlighter(style string) (*ChromaHighlighter, error) {
	if style == "" {
		style = DefaultChromaStyle
	}
	if !slices.Contains(styles.Names(), style) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return &ChromaHighlighter{
		name:  style,
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}, nil
}

// Highlight tokenizes code with the lexer for language, falling back to
// plain text for unknown languages.
func (h *ChromaHighlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var b strings.Builder
	b.WriteString(`<pre class="chroma"><code class="language-` + language + `">`)
	if err := h.formatter.Format(&b, h.style, iter); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	b.WriteString(`</code></pre>`)
	return b.String(), nil
}

// ChromaStyles returns the registered chroma style names, sorted.
func ChromaStyles() []string {
	return styles.Names()
}

// Style returns the chroma style name.
func (h *ChromaHighlighter) Style() string {
	return h.name
}

// WriteCSS writes the stylesheet for the classes emitted by Highlight.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// CSS returns the stylesheet written by WriteCSS.
func (h *ChromaHighlighter) CSS() ([]byte, error) {
	var buf bytes.Buffer
	if err := h.WriteCSS(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.Bytes(), nil
}

var (
	_ CodeHighlighter = ClientHighlighter{}
	_ CodeHighlighter = (*ChromaHighlighter)(nil)
)
