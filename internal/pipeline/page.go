package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Sentinel errors for page composition.
var (
	ErrTemplateParse   = errors.New("failed to parse page template")
	ErrTemplateExecute = errors.New("failed to execute page template")
)

// templateFuncs are available to post and index templates.
var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
}

// PostPage is the data handed to the post template.
type PostPage struct {
	Title           string
	Meta            string
	SiteName        string
	Language        string
	ServerHighlight bool
	Fragments       []string
}

// PageComposer wraps body fragments in the post skeleton.
//
// It uses text/template: titles and fragments are trusted and inserted
// byte-for-byte, without contextual escaping.
type PageComposer struct {
	tmpl *template.Template
}

// NewPageComposer parses the post template source.
func NewPageComposer(source string) (*PageComposer, error) {
	tmpl, err := parseTemplate("post", source)
	if err != nil {
		return nil, err
	}
	return &PageComposer{tmpl: tmpl}, nil
}

// Compose renders the complete post document.
func (p *PageComposer) Compose(page PostPage) ([]byte, error) {
	return execute(p.tmpl, page)
}

func parseTemplate(name, source string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateExecute, tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
