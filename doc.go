// Package nb2blog converts notebooks (.ipynb) into static HTML blog posts
// and an index page listing them.
//
// # Quick Start
//
// Create a builder and render a post from notebook JSON:
//
//	b, err := nb2blog.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := b.RenderPost(ctx, nb2blog.PostInput{
//	    Source: data,
//	    Name:   "attention_basics",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("posts/attention_basics.html", page, 0644)
//
// The post title defaults to the titleized name ("Attention Basics") and the
// metadata line to the site date label.
//
// # Rendering Pipeline
//
// Each notebook goes through these stages:
//
//  1. Notebook parsing (markdown and code cells, captured outputs)
//  2. Cell assembly: markdown cells through the markdown renderer, code cells
//     as escaped <pre> blocks followed by their text and image outputs
//  3. Optional rewriting of relative img/a targets (PostInput.SourceDir)
//  4. Page composition with the post template
//
// The index is built separately: Describe extracts a title and short
// description from each notebook's first markdown cell, and RenderIndex
// lists the entries in the order given.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := nb2blog.NewBuilder(
//	    nb2blog.WithRenderer(nb2blog.RendererCommonMark),
//	    nb2blog.WithHighlight(nb2blog.HighlightServer, "monokai"),
//	    nb2blog.WithSite(nb2blog.Site{Name: "my notes"}),
//	    nb2blog.WithMeta("march 2026"),
//	)
//
// The default renderer is a small line-oriented markdown subset that inserts
// cell text without escaping. RendererCommonMark switches to goldmark.
//
// # Custom Assets
//
// Override the built-in templates and stylesheets:
//
//	b, err := nb2blog.NewBuilder(nb2blog.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   ├── style.css
//	│   └── post-style.css
//	└── templates/
//	    ├── post.html
//	    └── index.html
//
// Missing files fall back to the embedded defaults. Templates use
// text/template; fragments and titles are inserted as-is.
package nb2blog
