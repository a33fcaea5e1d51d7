package nb2blog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2blog/internal/assets"
	"github.com/alnah/go-nb2blog/internal/fileutil"
	"github.com/alnah/go-nb2blog/internal/notebook"
	"github.com/alnah/go-nb2blog/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownRenderer = (*pipeline.LegacyRenderer)(nil)
	_ pipeline.MarkdownRenderer = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.CodeHighlighter  = pipeline.ClientHighlighter{}
	_ pipeline.CodeHighlighter  = (*pipeline.ChromaHighlighter)(nil)
)

// Stylesheet file names written by WriteStyles.
const (
	indexStyleFile  = "style.css"
	postStyleFile   = "post-style.css"
	chromaStyleFile = "chroma.css"
)

// Builder renders posts and the index page.
// Create with NewBuilder(). A Builder holds no per-document state and may
// be reused for any number of documents.
type Builder struct {
	cfg       builderConfig
	loader    assets.AssetLoader
	assembler pipeline.Assembler
	chroma    *pipeline.ChromaHighlighter // nil in client mode
	post      *pipeline.PageComposer
	index     *pipeline.IndexComposer
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds the values set by options.
type builderConfig struct {
	renderer    string
	highlight   string
	chromaStyle string
	language    string
	assetPath   string
	assetLoader AssetLoader
	site        Site
	meta        string
	postsHref   string
}

// WithRenderer selects the markdown renderer (RendererLegacy or RendererCommonMark).
func WithRenderer(name string) Option {
	return func(b *Builder) {
		b.cfg.renderer = name
	}
}

// WithHighlight selects the code highlighting mode. style names the chroma
// style used in HighlightServer mode; empty selects DefaultChromaStyle.
func WithHighlight(mode, style string) Option {
	return func(b *Builder) {
		b.cfg.highlight = mode
		b.cfg.chromaStyle = style
	}
}

// WithLanguage sets the language of code cells (class hint and lexer).
func WithLanguage(language string) Option {
	return func(b *Builder) {
		b.cfg.language = language
	}
}

// WithAssetPath loads templates and styles from a directory, falling back
// to the embedded defaults for missing files.
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Builder) {
		b.cfg.assetLoader = loader
	}
}

// WithSite sets the site-wide page text. Empty fields keep their defaults,
// except GitHub.
func WithSite(site Site) Option {
	return func(b *Builder) {
		b.cfg.site = site.merge()
	}
}

// WithMeta sets the metadata label shown on posts and index entries.
func WithMeta(meta string) Option {
	return func(b *Builder) {
		b.cfg.meta = meta
	}
}

// WithPostsHref sets the slash-separated path from the index page to the
// posts directory (DefaultPostsHref by default).
func WithPostsHref(href string) Option {
	return func(b *Builder) {
		b.cfg.postsHref = strings.TrimSuffix(href, "/")
	}
}

// NewBuilder creates a Builder with default configuration: legacy renderer,
// client-side highlighting, python code cells, embedded assets.
// Returns an error if an option value is invalid or a template fails to parse.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			renderer:  RendererLegacy,
			highlight: HighlightClient,
			language:  DefaultLanguage,
			site:      DefaultSite(),
			meta:      DefaultMeta,
			postsHref: DefaultPostsHref,
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.resolveLoader(); err != nil {
		return nil, err
	}
	if err := b.buildAssembler(); err != nil {
		return nil, err
	}
	if err := b.parseTemplates(); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Builder) resolveLoader() error {
	if b.cfg.assetLoader != nil {
		b.loader = b.cfg.assetLoader
		return nil
	}
	loader, err := NewAssetLoader(b.cfg.assetPath)
	if err != nil {
		return err
	}
	b.loader = loader
	return nil
}

func (b *Builder) buildAssembler() error {
	b.assembler = *pipeline.NewAssembler()

	if b.cfg.language == "" {
		b.cfg.language = DefaultLanguage
	}
	if !isLanguageName(b.cfg.language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, b.cfg.language)
	}
	b.assembler.Language = b.cfg.language

	switch b.cfg.highlight {
	case "", HighlightClient:
		b.cfg.highlight = HighlightClient
	case HighlightServer:
		h, err := pipeline.NewChromaHighlighter(b.cfg.chromaStyle)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHighlight, err)
		}
		b.chroma = h
		b.assembler.Code = h
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidHighlight, b.cfg.highlight, HighlightClient, HighlightServer)
	}

	switch b.cfg.renderer {
	case "", RendererLegacy:
		b.cfg.renderer = RendererLegacy
	case RendererCommonMark:
		var gmOpts []pipeline.GoldmarkOption
		if b.chroma != nil {
			gmOpts = append(gmOpts, pipeline.WithFencedHighlighting(b.chroma.Style()))
		}
		b.assembler.Markdown = pipeline.NewGoldmarkRenderer(gmOpts...)
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidRenderer, b.cfg.renderer, RendererLegacy, RendererCommonMark)
	}
	return nil
}

func (b *Builder) parseTemplates() error {
	postSrc, err := b.loader.LoadTemplate(assets.PostTemplate)
	if err != nil {
		return fmt.Errorf("loading post template: %w", err)
	}
	b.post, err = pipeline.NewPageComposer(postSrc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	indexSrc, err := b.loader.LoadTemplate(assets.IndexTemplate)
	if err != nil {
		return fmt.Errorf("loading index template: %w", err)
	}
	b.index, err = pipeline.NewIndexComposer(indexSrc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// RenderPost renders one notebook as a complete post page.
// The context is checked between cells.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) RenderPost(ctx context.Context, input PostInput) (page []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Source) == 0 {
		return nil, ErrEmptyNotebook
	}

	doc, err := notebook.Parse(input.Source)
	if err != nil {
		return nil, err
	}

	asm := b.assembler
	if input.SourceDir != "" && input.PostsDir != "" {
		asm.Paths, err = pipeline.NewPathRewriter(input.SourceDir, input.PostsDir)
		if err != nil {
			return nil, err
		}
	}

	fragments, err := asm.Assemble(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("assembling cells: %w", err)
	}

	title := input.Title
	if title == "" {
		title = TitleFromFilename(input.Name)
	}
	meta := input.Meta
	if meta == "" {
		meta = b.cfg.meta
	}

	page, err = b.post.Compose(pipeline.PostPage{
		Title:           title,
		Meta:            meta,
		SiteName:        b.cfg.site.Name,
		Language:        b.cfg.language,
		ServerHighlight: b.chroma != nil,
		Fragments:       fragments,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return page, nil
}

// Describe extracts the index entry of a notebook. The title falls back
// to TitleFromFilename(name) when the first markdown cell has no "# " line.
func (b *Builder) Describe(name string, source []byte) (entry IndexEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(source) == 0 {
		return IndexEntry{}, ErrEmptyNotebook
	}
	doc, err := notebook.Parse(source)
	if err != nil {
		return IndexEntry{}, err
	}
	return fromPipelineEntry(pipeline.ExtractEntry(name, doc, TitleFromFilename(name))), nil
}

// RenderIndex renders the listing page with entries in the order given.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) RenderIndex(ctx context.Context, entries []IndexEntry) (page []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list := make([]pipeline.IndexEntry, len(entries))
	for i, e := range entries {
		list[i] = e.toPipeline()
	}

	s := b.cfg.site
	page, err = b.index.Compose(pipeline.IndexPage{
		Site: pipeline.SiteInfo{
			Name:      s.Name,
			Tagline:   s.Tagline,
			About:     s.About,
			GitHub:    s.GitHub,
			Copyright: s.Copyright,
		},
		Meta:      b.cfg.meta,
		Entries:   list,
		PostsHref: b.cfg.postsHref,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return page, nil
}

// WriteStyles writes the stylesheets the pages link to into dir:
// style.css and post-style.css, plus chroma.css in HighlightServer mode.
// Returns the written paths.
func (b *Builder) WriteStyles(dir string) ([]string, error) {
	var written []string
	for _, s := range []struct{ name, file string }{
		{assets.IndexStyle, indexStyleFile},
		{assets.PostStyle, postStyleFile},
	} {
		css, err := b.loader.LoadStyle(s.name)
		if err != nil {
			return written, fmt.Errorf("loading %s: %w", s.file, err)
		}
		path := filepath.Join(dir, s.file)
		if err := fileutil.WriteFile(path, []byte(css)); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if b.chroma == nil {
		return written, nil
	}
	css, err := b.chroma.CSS()
	if err != nil {
		return written, err
	}
	path := filepath.Join(dir, chromaStyleFile)
	if err := fileutil.WriteFile(path, css); err != nil {
		return written, err
	}
	return append(written, path), nil
}

// Renderer returns the selected markdown renderer name.
func (b *Builder) Renderer() string { return b.cfg.renderer }

// Highlight returns the selected highlighting mode.
func (b *Builder) Highlight() string { return b.cfg.highlight }

// HighlightStyles returns the chroma style names accepted by WithHighlight.
func HighlightStyles() []string {
	return pipeline.ChromaStyles()
}

// isLanguageName reports whether s is safe inside a class attribute and a
// script URL.
func isLanguageName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '+', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
