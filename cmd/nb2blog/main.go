package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if hasVerboseFlag(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case cmdBuild, cmdPost, cmdIndex:
		ctx, stop := notifyContext(context.Background())
		defer stop()

		err := runCommand(ctx, cmd, rest, env)
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "nb2blog %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(rest, env)

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runCommand parses the flags of a page command and runs it.
func runCommand(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, positional, err := parseFlags(cmd, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch cmd {
	case cmdPost:
		return runPost(ctx, positional, flags, env)
	case cmdIndex:
		return runIndex(ctx, positional, flags, env)
	default:
		return runBuild(ctx, positional, flags, env)
	}
}

// hasVerboseFlag reports whether -v or --verbose appears before any "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args[1:] {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
