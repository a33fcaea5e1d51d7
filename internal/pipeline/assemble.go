package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-nb2blog/internal/notebook"
)

// DefaultLanguage is the code language assumed for notebooks.
const DefaultLanguage = "python"

// Indentation of nested blocks inside the post body.
const (
	blockIndent  = "                "
	nestedIndent = "                    "
)

// Assembler turns the cells of a document into ordered body fragments.
type Assembler struct {
	Markdown MarkdownRenderer
	Code     CodeHighlighter
	Language string
	// Paths, when set, rewrites relative targets in markdown fragments.
	Paths *PathRewriter
}

// NewAssembler returns an Assembler with the legacy renderer, client-side
// highlighting, and DefaultLanguage.
func NewAssembler() *Assembler {
	return &Assembler{
		Markdown: NewLegacyRenderer(),
		Code:     ClientHighlighter{},
		Language: DefaultLanguage,
	}
}

// Assemble renders every cell in order. The first markdown cell is dropped
// when its trimmed text starts with "# ", since the page header already
// shows the title. The context is checked between cells.
func (a *Assembler) Assemble(ctx context.Context, doc *notebook.Document) ([]string, error) {
	fragments := make([]string, 0, len(doc.Cells))
	seenMarkdown := false

	for i, cell := range doc.Cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch c := cell.(type) {
		case *notebook.Markdown:
			first := !seenMarkdown
			seenMarkdown = true
			if first && strings.HasPrefix(strings.TrimSpace(c.Text), "# ") {
				continue
			}
			frag, err := a.markdown(c)
			if err != nil {
				return nil, fmt.Errorf("cell %d: %w", i, err)
			}
			fragments = append(fragments, frag)

		case *notebook.Code:
			frag, err := a.code(c)
			if err != nil {
				return nil, fmt.Errorf("cell %d: %w", i, err)
			}
			fragments = append(fragments, frag)
		}
	}
	return fragments, nil
}

func (a *Assembler) markdown(c *notebook.Markdown) (string, error) {
	frag, err := a.Markdown.Render(c.Text)
	if err != nil {
		return "", err
	}
	if a.Paths != nil {
		return a.Paths.Rewrite(frag)
	}
	return frag, nil
}

func (a *Assembler) code(c *notebook.Code) (string, error) {
	lang := a.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	pre, err := a.Code.Highlight(c.Text, lang)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<div class=\"code-block\">\n")
	b.WriteString(blockIndent + pre + "\n")

	hasImage := c.HasImage()
	for _, out := range c.Outputs {
		switch o := out.(type) {
		case *notebook.ImagePNG:
			writeImageOutput(&b, o)
		case *notebook.Text:
			writeTextOutput(&b, o.Joined())
		case *notebook.PlainTextData:
			// Next to an image this is only the figure placeholder.
			if !hasImage {
				writeTextOutput(&b, o.Joined())
			}
		}
	}

	b.WriteString("            </div>")
	return b.String(), nil
}

func writeImageOutput(b *strings.Builder, img *notebook.ImagePNG) {
	data := strings.NewReplacer("\n", "", "\r", "").Replace(img.Base64)
	b.WriteString(blockIndent + `<div class="output output-image">` + "\n")
	b.WriteString(nestedIndent + `<img src="data:image/png;base64,` + data + `" alt="output">` + "\n")
	b.WriteString(blockIndent + "</div>\n")
}

func writeTextOutput(b *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.WriteString(blockIndent + `<div class="output">` + "\n")
	b.WriteString(nestedIndent + `<div class="output-label">output:</div>` + "\n")
	b.WriteString(nestedIndent + "<pre>" + EscapeHTML(text) + "</pre>\n")
	b.WriteString(blockIndent + "</div>\n")
}
