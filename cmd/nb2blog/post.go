package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// runPost renders a single notebook. The index is left untouched.
func runPost(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("%w: post needs a notebook file", ErrNoInput)
	case len(args) > 1:
		return fmt.Errorf("%w: expected one notebook file, got %d", ErrUsage, len(args))
	}
	inputPath := args[0]
	if err := validateNotebookExtension(inputPath); err != nil {
		return err
	}

	cfg, err := loadConfig(flags, env)
	if err != nil {
		return err
	}
	meta, err := resolveMeta(cfg, env.Now)
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg, meta)
	if err != nil {
		return err
	}

	file := resolvePostOutput(inputPath, flags.output, cfg.Output.PostsDir)
	params := &postParams{
		meta:    meta,
		title:   flags.title,
		rewrite: cfg.Assets.RewritePaths,
	}

	result := buildPost(ctx, b, file, params)
	if result.Err != nil {
		return fmt.Errorf("%s: %w", inputPath, result.Err)
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", result.InputPath, result.OutputPath, result.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", result.OutputPath)
	}

	if cfg.Assets.WriteStyles {
		cfg.Output.PostsDir = filepath.Dir(file.OutputPath)
		return writeStyles(b, cfg, flags.common, env)
	}
	return nil
}
