package nb2blog

import (
	"github.com/alnah/go-nb2blog/internal/pipeline"
)

// Markdown renderers.
const (
	// RendererLegacy is the line-oriented subset renderer. Cell text is not
	// escaped and lines are classified one at a time.
	RendererLegacy = "legacy"

	// RendererCommonMark renders cells with goldmark (GFM, footnotes).
	RendererCommonMark = "commonmark"
)

// Code highlighting modes.
const (
	// HighlightClient emits escaped code with a language class for highlight.js.
	HighlightClient = pipeline.HighlightClient

	// HighlightServer colors code at build time with chroma.
	HighlightServer = pipeline.HighlightServer
)

// Defaults applied by NewBuilder.
const (
	DefaultLanguage    = pipeline.DefaultLanguage
	DefaultChromaStyle = pipeline.DefaultChromaStyle
	DefaultMeta        = "november 2025"
	DefaultPostsHref   = pipeline.DefaultPostsHref
	DefaultSiteName    = "chapter2code"
)

// PostInput contains the data for rendering one post.
type PostInput struct {
	Source []byte // Notebook JSON (required)
	Name   string // File stem; used for the default title
	Title  string // Page title; defaults to TitleFromFilename(Name)
	Meta   string // Metadata line; defaults to the builder's meta label

	// SourceDir and PostsDir enable rewriting of relative img/a targets in
	// markdown cells. Both must be set; otherwise fragments are untouched.
	SourceDir string
	PostsDir  string
}

// IndexEntry is the listing data for one post.
type IndexEntry struct {
	Title       string
	Description string // Empty when the notebook has no "Chapter" lead-in
	Name        string // Post file stem; linked as {posts href}/{Name}.html
}

// Site holds the site-wide text shown on the pages.
// Empty fields fall back to the defaults, except GitHub, which hides the
// link when empty.
type Site struct {
	Name      string
	Tagline   string
	About     string
	GitHub    string
	Copyright string
}

// DefaultSite returns the text of the chapter2code blog.
func DefaultSite() Site {
	return Site{
		Name:    DefaultSiteName,
		Tagline: "research notes on ml topics",
		About: "The purpose of this blog is to document my learning journey through some scientific topics " +
			"I find interesting. Here, I share research notes, code implementations, and insights gained " +
			"from studying various concepts in depth.",
		GitHub:    "https://github.com/Prasoon1207/chapter2code",
		Copyright: "© 2025",
	}
}

// merge fills empty fields of s from DefaultSite.
func (s Site) merge() Site {
	d := DefaultSite()
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.Tagline == "" {
		s.Tagline = d.Tagline
	}
	if s.About == "" {
		s.About = d.About
	}
	if s.Copyright == "" {
		s.Copyright = d.Copyright
	}
	return s
}

func (e IndexEntry) toPipeline() pipeline.IndexEntry {
	return pipeline.IndexEntry{Title: e.Title, Description: e.Description, Name: e.Name}
}

func fromPipelineEntry(e pipeline.IndexEntry) IndexEntry {
	return IndexEntry{Title: e.Title, Description: e.Description, Name: e.Name}
}
