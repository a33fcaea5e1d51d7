package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-nb2blog/internal/hints"
)

// runIndex rebuilds only the index page from the notebooks of the input
// directory.
func runIndex(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags, env)
	if err != nil {
		return err
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
	if err := writeIndex(ctx, b, files, cfg.Output.IndexPath, flags.common, env); err != nil {
		return err
	}

	if cfg.Assets.WriteStyles {
		return writeStyles(b, cfg, flags.common, env)
	}
	return nil
}
