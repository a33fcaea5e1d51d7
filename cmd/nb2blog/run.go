package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	nb2blog "github.com/alnah/go-nb2blog"
	"github.com/alnah/go-nb2blog/internal/config"
	"github.com/alnah/go-nb2blog/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrNoNotebooks      = errors.New("no notebooks found")
	ErrReadNotebook     = errors.New("failed to read notebook")
	ErrWritePost        = errors.New("failed to write post")
	ErrWriteIndex       = errors.New("failed to write index")
	ErrWriteStyles      = errors.New("failed to write stylesheets")
	ErrInvalidExtension = errors.New("file must have .ipynb extension")
)

// loadConfig builds the effective configuration:
// flags > NB2BLOG_* variables > config file > defaults.
func loadConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.CandidatePaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to config. Only flags that were given
// (non-zero) override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	r := flags.render
	if r.meta != "" {
		cfg.Site.Date = r.meta
	}
	if r.renderer != "" {
		cfg.Markdown.Renderer = r.renderer
	}
	if r.highlight != "" {
		cfg.Code.Highlight = r.highlight
	}
	if r.chromaStyle != "" {
		cfg.Code.ChromaStyle = r.chromaStyle
	}
	if r.language != "" {
		cfg.Code.Language = r.language
	}
	if r.assetPath != "" {
		cfg.Assets.BasePath = r.assetPath
	}
	if r.rewrite {
		cfg.Assets.RewritePaths = true
	}
	if r.writeStyles {
		cfg.Assets.WriteStyles = true
	}
	if flags.index != "" {
		cfg.Output.IndexPath = flags.index
	}
}

// resolveMeta resolves the metadata label once for the whole run.
func resolveMeta(cfg *config.Config, now func() time.Time) (string, error) {
	meta, err := nb2blog.ResolveDate(cfg.Site.Date, now())
	if err != nil {
		return "", fmt.Errorf("invalid site.date: %w", err)
	}
	return meta, nil
}

// newBuilder creates the page builder for cfg.
func newBuilder(cfg *config.Config, meta string) (*nb2blog.Builder, error) {
	b, err := nb2blog.NewBuilder(
		nb2blog.WithRenderer(cfg.Markdown.Renderer),
		nb2blog.WithHighlight(cfg.Code.Highlight, cfg.Code.ChromaStyle),
		nb2blog.WithLanguage(cfg.Code.Language),
		nb2blog.WithAssetPath(cfg.Assets.BasePath),
		nb2blog.WithSite(nb2blog.Site{
			Name:      cfg.Site.Name,
			Tagline:   cfg.Site.Tagline,
			About:     cfg.Site.About,
			GitHub:    cfg.Site.GitHub,
			Copyright: cfg.Site.Copyright,
		}),
		nb2blog.WithMeta(meta),
		nb2blog.WithPostsHref(postsHref(cfg.Output.IndexPath, cfg.Output.PostsDir)),
	)
	if err != nil {
		switch {
		case errors.Is(err, nb2blog.ErrInvalidHighlight) && cfg.Code.Highlight == config.HighlightServer:
			return nil, fmt.Errorf("%w%s", err, hints.ForHighlightStyle(nb2blog.HighlightStyles()))
		case errors.Is(err, nb2blog.ErrRender):
			return nil, fmt.Errorf("%w%s", err, hints.ForCustomTemplate(cfg.Assets.BasePath))
		}
		return nil, err
	}
	return b, nil
}

// postsHref returns the link prefix from the index page to the posts
// directory, slash-separated. Relative and absolute paths are compared
// after resolving both against the working directory.
func postsHref(indexPath, postsDir string) string {
	base := filepath.Dir(indexPath)
	rel, err := filepath.Rel(base, postsDir)
	if err != nil {
		absBase, errBase := filepath.Abs(base)
		absPosts, errPosts := filepath.Abs(postsDir)
		if errBase != nil || errPosts != nil {
			return filepath.ToSlash(postsDir)
		}
		if rel, err = filepath.Rel(absBase, absPosts); err != nil {
			return filepath.ToSlash(absPosts)
		}
	}
	return filepath.ToSlash(rel)
}

// stylesDir returns the directory the pages link stylesheets from:
// "styles" next to the posts directory.
func stylesDir(postsDir string) string {
	return filepath.Join(filepath.Dir(postsDir), "styles")
}
