package pipeline

import "strings"

// mathDelimiter opens and closes display math blocks.
const mathDelimiter = "$$"

// MarkdownRenderer turns the text of one markdown cell into an HTML fragment.
type MarkdownRenderer interface {
	Render(text string) (string, error)
}

// LegacyRenderer converts a small line-oriented markdown subset to HTML.
//
// Each line is classified on its own, in this order: display math, headings
// (# to ###), bold, numbered lines, bullets, blank lines, plain paragraphs.
// Only two pieces of state carry across lines: an open bullet list and an
// open math block. Content is never escaped.
type LegacyRenderer struct{}

// NewLegacyRenderer creates a LegacyRenderer.
func NewLegacyRenderer() *LegacyRenderer {
	return &LegacyRenderer{}
}

// Render never fails; the error is there to satisfy MarkdownRenderer.
func (r *LegacyRenderer) Render(text string) (string, error) {
	var s legacyState
	for _, line := range strings.Split(text, "\n") {
		s.line(line)
	}
	s.finish()
	return strings.Join(s.out, "\n"), nil
}

type legacyState struct {
	out    []string
	inList bool
	inMath bool
	math   []string
}

func (s *legacyState) line(line string) {
	delims := strings.Count(line, mathDelimiter)

	if s.inMath {
		s.math = append(s.math, line)
		if delims == 1 {
			s.flushMath()
		}
		return
	}

	kind := classify(line, delims)
	if kind != lineBullet {
		s.closeList()
	}

	switch kind {
	case lineInlineMath, lineNumbered, linePlain:
		s.paragraph(line)
	case lineMathOpen:
		s.inMath = true
		s.math = append(s.math[:0], line)
	case lineH1:
		s.out = append(s.out, "<h1>"+line[2:]+"</h1>")
	case lineH2:
		s.out = append(s.out, "<h2>"+line[3:]+"</h2>")
	case lineH3:
		s.out = append(s.out, "<h3>"+line[4:]+"</h3>")
	case lineBold:
		s.paragraph(bold(line))
	case lineBullet:
		if !s.inList {
			s.out = append(s.out, "<ul>")
			s.inList = true
		}
		s.out = append(s.out, "<li>"+line[2:]+"</li>")
	case lineBlank:
		if len(s.out) > 0 {
			s.out = append(s.out, "")
		}
	}
}

type lineKind int

const (
	linePlain lineKind = iota
	lineInlineMath
	lineMathOpen
	lineH1
	lineH2
	lineH3
	lineBold
	lineNumbered
	lineBullet
	lineBlank
)

// classify applies the precedence order to a line outside a math block.
func classify(line string, delims int) lineKind {
	switch {
	case delims >= 2:
		return lineInlineMath
	case delims == 1:
		return lineMathOpen
	case strings.HasPrefix(line, "# "):
		return lineH1
	case strings.HasPrefix(line, "## "):
		return lineH2
	case strings.HasPrefix(line, "### "):
		return lineH3
	case strings.Contains(line, "**"):
		return lineBold
	case isNumbered(line):
		return lineNumbered
	case strings.HasPrefix(line, "- "):
		return lineBullet
	case strings.TrimSpace(line) == "":
		return lineBlank
	default:
		return linePlain
	}
}

func (s *legacyState) paragraph(content string) {
	s.out = append(s.out, "<p>"+content+"</p>")
}

func (s *legacyState) closeList() {
	if s.inList {
		s.out = append(s.out, "</ul>")
		s.inList = false
	}
}

func (s *legacyState) flushMath() {
	s.paragraph(strings.Join(s.math, "\n"))
	s.math = s.math[:0]
	s.inMath = false
}

func (s *legacyState) finish() {
	if s.inMath {
		s.flushMath()
	}
	s.closeList()
}

// bold replaces the first ** with <strong> and the next with </strong>.
// Later pairs stay literal.
func bold(line string) string {
	line = strings.Replace(line, "**", "<strong>", 1)
	return strings.Replace(line, "**", "</strong>", 1)
}

// isNumbered reports whether the trimmed line starts with a digit and has
// ". " somewhere after it.
func isNumbered(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || t[0] < '0' || t[0] > '9' {
		return false
	}
	return strings.Contains(t[1:], ". ")
}

var _ MarkdownRenderer = (*LegacyRenderer)(nil)
