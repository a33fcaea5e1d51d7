package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-nb2blog/internal/dateutil"
	"github.com/alnah/go-nb2blog/internal/fileutil"
	"github.com/alnah/go-nb2blog/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength     = 100  // Site name
	MaxTaglineLength  = 200  // Line under the site name
	MaxAboutLength    = 2000 // About paragraph
	MaxURLLength      = 2048 // Browser limit
	MaxTextLength     = 200  // Footer text
	MaxDateLength     = 60   // "november 2025" or "auto:mmmm YYYY"
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxLanguageLength = 32   // "python", "julia"
	MaxStyleLength    = 64   // chroma style name
)

// Renderer names.
const (
	RendererLegacy     = "legacy"
	RendererCommonMark = "commonmark"
)

// Highlight modes.
const (
	HighlightClient = "client"
	HighlightServer = "server"
)

// Config holds all configuration for a blog build.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Code     CodeConfig     `yaml:"code"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// SiteConfig defines the site-wide text of the generated pages.
type SiteConfig struct {
	Name      string `yaml:"name"`      // Shown in titles, nav and index header
	Tagline   string `yaml:"tagline"`   // Index header subtitle
	About     string `yaml:"about"`     // Index "about" paragraph
	GitHub    string `yaml:"github"`    // Nav link; empty hides it
	Copyright string `yaml:"copyright"` // Index footer
	Date      string `yaml:"date"`      // Meta label: literal, "auto" or "auto:FORMAT"
}

// InputConfig defines where notebooks are read from.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	PostsDir  string `yaml:"postsDir"`
	IndexPath string `yaml:"indexPath"`
}

// MarkdownConfig selects the markdown renderer.
type MarkdownConfig struct {
	Renderer string `yaml:"renderer"` // "legacy" (default) or "commonmark"
}

// CodeConfig defines how code cells are rendered.
type CodeConfig struct {
	Language    string `yaml:"language"`    // Class hint and lexer name (default: "python")
	Highlight   string `yaml:"highlight"`   // "client" (default) or "server"
	ChromaStyle string `yaml:"chromaStyle"` // Style for server highlighting (default: "github")
}

// AssetsConfig defines asset loading and post-processing options.
type AssetsConfig struct {
	BasePath     string `yaml:"basePath"`     // Empty = use embedded assets
	RewritePaths bool   `yaml:"rewritePaths"` // Rewrite relative img/a targets in markdown
	WriteStyles  bool   `yaml:"writeStyles"`  // Write stylesheets next to the pages
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.tagline", c.Site.Tagline, MaxTaglineLength},
		{"site.about", c.Site.About, MaxAboutLength},
		{"site.github", c.Site.GitHub, MaxURLLength},
		{"site.copyright", c.Site.Copyright, MaxTextLength},
		{"site.date", c.Site.Date, MaxDateLength},
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"output.postsDir", c.Output.PostsDir, MaxPathLength},
		{"output.indexPath", c.Output.IndexPath, MaxPathLength},
		{"code.language", c.Code.Language, MaxLanguageLength},
		{"code.chromaStyle", c.Code.ChromaStyle, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.PostsDir == "" {
		return fmt.Errorf("%w: output.postsDir is empty", ErrInvalidValue)
	}
	if c.Output.IndexPath == "" {
		return fmt.Errorf("%w: output.indexPath is empty", ErrInvalidValue)
	}

	switch c.Markdown.Renderer {
	case "", RendererLegacy, RendererCommonMark:
	default:
		return fmt.Errorf("%w: markdown.renderer %q (must be legacy or commonmark)", ErrInvalidValue, c.Markdown.Renderer)
	}

	switch c.Code.Highlight {
	case "", HighlightClient, HighlightServer:
	default:
		return fmt.Errorf("%w: code.highlight %q (must be client or server)", ErrInvalidValue, c.Code.Highlight)
	}

	if !isLanguageName(c.Code.Language) {
		return fmt.Errorf("%w: code.language %q (letters, digits, '+', '-', '_' only)", ErrInvalidValue, c.Code.Language)
	}

	if c.Site.GitHub != "" && !fileutil.IsURL(c.Site.GitHub) {
		return fmt.Errorf("%w: site.github %q (must be an http or https URL)", ErrInvalidValue, c.Site.GitHub)
	}

	// The date itself is resolved at build time; only its syntax is checked here.
	if _, err := dateutil.ResolveDate(c.Site.Date, time.Time{}); err != nil {
		return fmt.Errorf("site.date: %w", err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// isLanguageName reports whether s is safe inside a class attribute and a
// script URL. Empty is allowed and means the default.
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

// DefaultConfig returns the configuration of the chapter2code blog.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:    "chapter2code",
			Tagline: "research notes on ml topics",
			About: "The purpose of this blog is to document my learning journey through some scientific topics " +
				"I find interesting. Here, I share research notes, code implementations, and insights gained " +
				"from studying various concepts in depth.",
			GitHub:    "https://github.com/Prasoon1207/chapter2code",
			Copyright: "© 2025",
			Date:      "november 2025",
		},
		Input:    InputConfig{Dir: "notebooks"},
		Output:   OutputConfig{PostsDir: filepath.Join("src", "posts"), IndexPath: filepath.Join("src", "index.html")},
		Markdown: MarkdownConfig{Renderer: RendererLegacy},
		Code:     CodeConfig{Language: "python", Highlight: HighlightClient, ChromaStyle: "github"},
		Assets:   AssetsConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	candidates := CandidatePaths(name)
	for _, p := range candidates {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}

// CandidatePaths lists where a config name is looked up, in order:
// ./name.yaml, ./name.yml, then the same names under ~/.config/nb2blog/
// (os.UserConfigDir).
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "nb2blog", name+ext))
		}
	}
	return paths
}
