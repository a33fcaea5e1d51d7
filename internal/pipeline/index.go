package pipeline

import (
	"strings"
	"text/template"

	"github.com/alnah/go-nb2blog/internal/notebook"
)

// maxDescriptionLines caps the lines collected after the lead-in marker.
const maxDescriptionLines = 2

// IndexEntry is the listing data for one post.
type IndexEntry struct {
	Title       string
	Description string
	// Name is the notebook stem; the post lives at {PostsHref}/{Name}.html.
	Name string
}

// Summary returns the description, or a sentence built from the title
// when the notebook has none.
func (e IndexEntry) Summary() string {
	if e.Description != "" {
		return e.Description
	}
	return "Exploring " + strings.ToLower(e.Title) + "."
}

// ExtractEntry derives the listing entry for a notebook. Only the first
// markdown cell is inspected:
//   - title: the first line starting with "# ", marker dropped and trimmed;
//     fallbackTitle when there is none.
//   - description: after the first line starting with "Chapter" or
//     "**Chapter", up to two non-empty lines not starting with "#", trimmed
//     and joined by a space.
func ExtractEntry(name string, doc *notebook.Document, fallbackTitle string) IndexEntry {
	entry := IndexEntry{Title: fallbackTitle, Name: name}

	md := doc.FirstMarkdown()
	if md == nil {
		return entry
	}
	lines := strings.Split(strings.TrimSpace(md.Text), "\n")

	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			entry.Title = strings.TrimSpace(line[2:])
			break
		}
	}
	entry.Description = extractDescription(lines)
	return entry
}

func extractDescription(lines []string) string {
	var desc []string
	inDesc := false
	for _, line := range lines {
		if strings.HasPrefix(line, "**Chapter") || strings.HasPrefix(line, "Chapter") {
			inDesc = true
			continue
		}
		if !inDesc || strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		desc = append(desc, strings.TrimSpace(line))
		if len(desc) >= maxDescriptionLines {
			break
		}
	}
	return strings.Join(desc, " ")
}

// SiteInfo is the site-wide text of the index page.
type SiteInfo struct {
	Name      string
	Tagline   string
	About     string
	GitHub    string
	Copyright string
}

// DefaultPostsHref is the posts directory as seen from the index page.
const DefaultPostsHref = "posts"

// IndexPage is the data handed to the index template.
type IndexPage struct {
	Site    SiteInfo
	Meta    string
	Entries []IndexEntry
	// PostsHref is the slash-separated path from the index to the posts
	// directory; empty means DefaultPostsHref.
	PostsHref string
}

// IndexComposer renders the listing page.
type IndexComposer struct {
	tmpl *template.Template
}

// NewIndexComposer parses the index template source.
func NewIndexComposer(source string) (*IndexComposer, error) {
	tmpl, err := parseTemplate("index", source)
	if err != nil {
		return nil, err
	}
	return &IndexComposer{tmpl: tmpl}, nil
}

// Compose renders the index page with entries in the order given.
func (c *IndexComposer) Compose(page IndexPage) ([]byte, error) {
	if page.PostsHref == "" {
		page.PostsHref = DefaultPostsHref
	}
	return execute(c.tmpl, page)
}
