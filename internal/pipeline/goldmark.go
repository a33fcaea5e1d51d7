package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates goldmark failed to render a cell.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// GoldmarkRenderer renders markdown cells as CommonMark with GFM extensions.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// GoldmarkOption configures a GoldmarkRenderer.
type GoldmarkOption func(*goldmarkConfig)

type goldmarkConfig struct {
	highlight bool
	style     string
}

// WithFencedHighlighting highlights fenced code blocks server-side with the
// given chroma style, emitting CSS classes instead of inline colors.
func WithFencedHighlighting(style string) GoldmarkOption {
	return func(c *goldmarkConfig) {
		c.highlight = true
		c.style = style
	}
}

// NewGoldmarkRenderer creates a GoldmarkRenderer. Raw HTML in cells is kept,
// as the legacy renderer does, so existing notebooks render the same markup.
func NewGoldmarkRenderer(opts ...GoldmarkOption) *GoldmarkRenderer {
	cfg := goldmarkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if cfg.highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts one markdown cell to an HTML fragment.
func (r *GoldmarkRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

var _ MarkdownRenderer = (*GoldmarkRenderer)(nil)
