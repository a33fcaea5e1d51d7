// Package notebook reads Jupyter notebook documents (nbformat 4 JSON) into
// closed variant types consumed by the HTML pipeline.
package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for notebook parsing.
var (
	ErrParse        = errors.New("failed to parse notebook")
	ErrMissingCells = errors.New("notebook has no cells field")
)

// Document is an ordered sequence of cells. The metadata block is ignored.
type Document struct {
	Cells []Cell
}

// Cell is either *Markdown or *Code.
type Cell interface {
	cell()
}

// Markdown is a prose cell.
type Markdown struct {
	Text string
}

// Code is an executable cell with its captured outputs in source order.
type Code struct {
	Text    string
	Outputs []Output
}

func (*Markdown) cell() {}
func (*Code) cell()     {}

// Output is one of *Text, *ImagePNG or *PlainTextData.
type Output interface {
	output()
}

// Text is a stream-like output read from an output's "text" field.
type Text struct {
	Lines []string
}

// ImagePNG is a base64-encoded PNG read from data["image/png"].
type ImagePNG struct {
	Base64 string
}

// PlainTextData is the text/plain representation of a rich output.
// It is often only a "<Figure size ...>" placeholder next to an image.
type PlainTextData struct {
	Lines []string
}

func (*Text) output()          {}
func (*ImagePNG) output()      {}
func (*PlainTextData) output() {}

// Joined concatenates the lines as nbformat stores them (each line keeps its newline).
func (t *Text) Joined() string { return strings.Join(t.Lines, "") }

// Joined concatenates the lines as nbformat stores them.
func (p *PlainTextData) Joined() string { return strings.Join(p.Lines, "") }

// HasImage reports whether any output of the cell is an image.
func (c *Code) HasImage() bool {
	for _, o := range c.Outputs {
		if _, ok := o.(*ImagePNG); ok {
			return true
		}
	}
	return false
}

// multiline accepts both nbformat encodings of text: a single string or a
// list of line strings.
type multiline []string

func (m *multiline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = multiline{s}
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*m = lines
	return nil
}

type rawNotebook struct {
	Cells *[]rawCell `json:"cells"`
}

type rawCell struct {
	CellType string      `json:"cell_type"`
	Source   multiline   `json:"source"`
	Outputs  []rawOutput `json:"outputs"`
}

type rawOutput struct {
	Text *multiline                 `json:"text"`
	Data map[string]json.RawMessage `json:"data"`
}

// Parse decodes notebook JSON. Cells other than markdown and code are skipped.
func Parse(data []byte) (*Document, error) {
	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if raw.Cells == nil {
		return nil, ErrMissingCells
	}

	doc := &Document{Cells: make([]Cell, 0, len(*raw.Cells))}
	for _, rc := range *raw.Cells {
		source := strings.Join(rc.Source, "")
		switch rc.CellType {
		case "markdown":
			doc.Cells = append(doc.Cells, &Markdown{Text: source})
		case "code":
			outs, err := convertOutputs(rc.Outputs)
			if err != nil {
				return nil, err
			}
			doc.Cells = append(doc.Cells, &Code{Text: source, Outputs: outs})
		}
	}
	return doc, nil
}

// convertOutputs maps raw outputs to variants. A "text" field wins over
// "data"; a rich output carrying both image/png and text/plain yields both.
// Outputs with neither (e.g. errors) are dropped, as are other mime types.
func convertOutputs(raws []rawOutput) ([]Output, error) {
	var outs []Output
	for _, ro := range raws {
		if ro.Text != nil {
			outs = append(outs, &Text{Lines: []string(*ro.Text)})
			continue
		}
		if raw, ok := ro.Data["image/png"]; ok {
			var png multiline
			if err := json.Unmarshal(raw, &png); err != nil {
				return nil, fmt.Errorf("%w: image/png: %v", ErrParse, err)
			}
			outs = append(outs, &ImagePNG{Base64: strings.Join(png, "")})
		}
		if raw, ok := ro.Data["text/plain"]; ok {
			var plain multiline
			if err := json.Unmarshal(raw, &plain); err != nil {
				return nil, fmt.Errorf("%w: text/plain: %v", ErrParse, err)
			}
			outs = append(outs, &PlainTextData{Lines: []string(plain)})
		}
	}
	return outs, nil
}

// FirstMarkdown returns the first markdown cell of the document, or nil.
func (d *Document) FirstMarkdown() *Markdown {
	for _, c := range d.Cells {
		if md, ok := c.(*Markdown); ok {
			return md
		}
	}
	return nil
}
