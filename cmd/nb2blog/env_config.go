package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-nb2blog/internal/config"
)

// envPrefix marks the environment variables read by nb2blog.
const envPrefix = "NB2BLOG_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // NB2BLOG_CONFIG: config file name or path
	InputDir   string // NB2BLOG_INPUT_DIR: notebook directory
	OutputDir  string // NB2BLOG_OUTPUT_DIR: posts directory
	Index      string // NB2BLOG_INDEX: index page path
	Renderer   string // NB2BLOG_RENDERER: legacy, commonmark
	Date       string // NB2BLOG_DATE: metadata label
}

// knownEnvVars lists valid NB2BLOG_* environment variables.
var knownEnvVars = map[string]bool{
	"NB2BLOG_CONFIG":     true,
	"NB2BLOG_INPUT_DIR":  true,
	"NB2BLOG_OUTPUT_DIR": true,
	"NB2BLOG_INDEX":      true,
	"NB2BLOG_RENDERER":   true,
	"NB2BLOG_DATE":       true,
}

// loadEnvConfig reads the NB2BLOG_* environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("NB2BLOG_CONFIG"),
		InputDir:   os.Getenv("NB2BLOG_INPUT_DIR"),
		OutputDir:  os.Getenv("NB2BLOG_OUTPUT_DIR"),
		Index:      os.Getenv("NB2BLOG_INDEX"),
		Renderer:   os.Getenv("NB2BLOG_RENDERER"),
		Date:       os.Getenv("NB2BLOG_DATE"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized NB2BLOG_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// CLI flags are applied afterwards by mergeFlags, giving:
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.PostsDir = env.OutputDir
	}
	if env.Index != "" {
		cfg.Output.IndexPath = env.Index
	}
	if env.Renderer != "" {
		cfg.Markdown.Renderer = env.Renderer
	}
	if env.Date != "" {
		cfg.Site.Date = env.Date
	}
}
