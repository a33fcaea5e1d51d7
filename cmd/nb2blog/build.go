package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	nb2blog "github.com/alnah/go-nb2blog"
	"github.com/alnah/go-nb2blog/internal/config"
	"github.com/alnah/go-nb2blog/internal/fileutil"
	"github.com/alnah/go-nb2blog/internal/hints"
)

// PostRenderer is the part of the builder used to render posts.
type PostRenderer interface {
	RenderPost(ctx context.Context, input nb2blog.PostInput) ([]byte, error)
}

// IndexRenderer is the part of the builder used to render the index.
type IndexRenderer interface {
	Describe(name string, source []byte) (nb2blog.IndexEntry, error)
	RenderIndex(ctx context.Context, entries []nb2blog.IndexEntry) ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ PostRenderer  = (*nb2blog.Builder)(nil)
	_ IndexRenderer = (*nb2blog.Builder)(nil)
)

// buildResult holds the outcome of a single post.
type buildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// postParams groups values shared by every post of a run.
type postParams struct {
	meta    string
	title   string // Empty: derived from the file name
	rewrite bool
}

// runBuild renders every notebook of the input directory, then the index.
func runBuild(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags, env)
	if err != nil {
		return err
	}
	if flags.output != "" {
		cfg.Output.PostsDir = flags.output
	}

	meta, err := resolveMeta(cfg, env.Now)
	if err != nil {
		return err
	}

	inputDir, err := resolveInputDir(args, cfg)
	if err != nil {
		return err
	}

	files, skipped, err := discoverNotebooks(inputDir, cfg.Output.PostsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoNotebooks, inputDir, hints.ForNoNotebooks(inputDir, skipped))
	}

	b, err := newBuilder(cfg, meta)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Found %d notebook(s) in %s (renderer: %s, highlight: %s)\n",
			len(files), inputDir, b.Renderer(), b.Highlight())
	}

	params := &postParams{meta: meta, rewrite: cfg.Assets.RewritePaths}
	results := buildPosts(ctx, b, files, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	// The index lists every readable notebook, even when its post failed.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeIndex(ctx, b, files, cfg.Output.IndexPath, flags.common, env); err != nil {
		return err
	}

	if cfg.Assets.WriteStyles {
		if err := writeStyles(b, cfg, flags.common, env); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed", failed)
	}
	return nil
}

// resolveInputDir returns the positional directory or input.dir.
func resolveInputDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected at most one input directory, got %d", ErrUsage, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.Dir == "" {
		return "", ErrNoInput
	}
	return cfg.Input.Dir, nil
}

// buildPosts renders files one after another. Cancellation stops
// scheduling: remaining files are not processed.
func buildPosts(ctx context.Context, r PostRenderer, files []notebookFile, params *postParams) []buildResult {
	results := make([]buildResult, 0, len(files))
	for _, f := range files {
		if ctx.Err() != nil {
			break
		}
		results = append(results, buildPost(ctx, r, f, params))
	}
	return results
}

// buildPost renders one notebook and writes it. Nothing is written when
// rendering fails.
func buildPost(ctx context.Context, r PostRenderer, f notebookFile, params *postParams) buildResult {
	start := time.Now()
	result := buildResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	source, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered notebook path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadNotebook, err)
		result.Duration = time.Since(start)
		return result
	}

	input := nb2blog.PostInput{
		Source: source,
		Name:   f.Name,
		Title:  params.title,
		Meta:   params.meta,
	}
	if params.rewrite {
		input.SourceDir = filepath.Dir(f.InputPath)
		input.PostsDir = filepath.Dir(f.OutputPath)
	}

	page, err := r.RenderPost(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(f.OutputPath, page); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWritePost, err, hints.ForOutputDirectory())
	}
	result.Duration = time.Since(start)
	return result
}

// resultSummary holds the count of succeeded and failed posts.
type resultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed posts.
func countResults(results []buildResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs the results and returns the failure count.
func printResults(results []buildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// collectEntries describes each notebook for the index. Unreadable
// notebooks are reported and left out.
func collectEntries(r IndexRenderer, files []notebookFile, env *Environment) []nb2blog.IndexEntry {
	entries := make([]nb2blog.IndexEntry, 0, len(files))
	for _, f := range files {
		source, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered notebook path
		if err != nil {
			fmt.Fprintf(env.Stderr, "warning: skipping %s in index: %v\n", f.InputPath, err)
			continue
		}
		entry, err := r.Describe(f.Name, source)
		if err != nil {
			fmt.Fprintf(env.Stderr, "warning: skipping %s in index: %v\n", f.InputPath, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// writeIndex renders and writes the index page for files.
func writeIndex(ctx context.Context, r IndexRenderer, files []notebookFile, path string, common commonFlags, env *Environment) error {
	start := time.Now()
	entries := collectEntries(r, files, env)

	page, err := r.RenderIndex(ctx, entries)
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	if err := fileutil.WriteFile(path, page); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteIndex, err, hints.ForOutputDirectory())
	}

	switch {
	case common.quiet:
	case common.verbose:
		fmt.Fprintf(env.Stdout, "index -> %s (%d entries, %v)\n", path, len(entries), time.Since(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	return nil
}

// writeStyles writes the stylesheets next to the posts directory.
func writeStyles(b *nb2blog.Builder, cfg *config.Config, common commonFlags, env *Environment) error {
	written, err := b.WriteStyles(stylesDir(cfg.Output.PostsDir))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteStyles, err)
	}
	if !common.quiet {
		for _, p := range written {
			fmt.Fprintf(env.Stdout, "Created %s\n", p)
		}
	}
	return nil
}
