package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2blog <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build every post and the index")
	fmt.Fprintln(w, "  post       Build a single post")
	fmt.Fprintln(w, "  index      Rebuild only the index page")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nb2blog help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for a page command.
func printCommandUsage(w io.Writer, cmd string) {
	switch cmd {
	case cmdPost:
		fmt.Fprintln(w, "Usage: nb2blog post <file.ipynb> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Build a single post. The index is not touched.")
	case cmdIndex:
		fmt.Fprintln(w, "Usage: nb2blog index [input-dir] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Rebuild the index page from the notebooks of input-dir.")
	default:
		fmt.Fprintln(w, "Usage: nb2blog build [input-dir] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Build a post for every notebook of input-dir, then the index page.")
		fmt.Fprintln(w, "Checkpoint copies (.ipynb_checkpoints, *-checkpoint.ipynb) are skipped.")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Input/Output:")
	if cmd != cmdIndex {
		fmt.Fprintln(w, "  -o, --output <path>       Posts directory (post: or a .html file)")
	}
	if cmd != cmdPost {
		fmt.Fprintln(w, "      --index <path>        Index page path")
	}
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Page:")
	if cmd == cmdPost {
		fmt.Fprintln(w, "      --title <s>           Post title (default: from file name)")
	}
	fmt.Fprintln(w, "      --meta <s>            Metadata label: literal, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, mmmm, MMM, mmm, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, month, blog")
	fmt.Fprintln(w, "      --renderer <s>        Markdown renderer: legacy, commonmark")
	fmt.Fprintln(w, "      --highlight <s>       Code highlighting: client, server")
	fmt.Fprintln(w, "      --chroma-style <s>    Chroma style for server highlighting (default: github)")
	fmt.Fprintln(w, "      --language <s>        Language of code cells (default: python)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <path>   Custom templates/ and styles/ directory")
	fmt.Fprintln(w, "      --rewrite-paths       Rewrite relative img/a targets in markdown")
	fmt.Fprintln(w, "      --write-styles        Write stylesheets to styles/ next to the posts")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdBuild, cmdPost, cmdIndex:
		printCommandUsage(env.Stdout, args[0])
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: nb2blog version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: nb2blog help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
