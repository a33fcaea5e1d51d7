package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// Command names.
const (
	cmdBuild = "build"
	cmdPost  = "post"
	cmdIndex = "index"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that shape the generated pages.
type renderFlags struct {
	meta        string
	renderer    string
	highlight   string
	chromaStyle string
	language    string
	assetPath   string
	rewrite     bool
	writeStyles bool
}

// cliFlags holds all flags for the page commands.
// title is registered for post only; output is not registered for index.
type cliFlags struct {
	common commonFlags
	output string
	index  string
	title  string
	render renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.meta, "meta", "", "metadata label: literal, \"auto\" or \"auto:FORMAT\"")
	fs.StringVar(&f.renderer, "renderer", "", "markdown renderer: legacy, commonmark")
	fs.StringVar(&f.highlight, "highlight", "", "code highlighting: client, server")
	fs.StringVar(&f.chromaStyle, "chroma-style", "", "chroma style for server highlighting")
	fs.StringVar(&f.language, "language", "", "language of code cells")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.rewrite, "rewrite-paths", false, "rewrite relative img/a targets in markdown")
	fs.BoolVar(&f.writeStyles, "write-styles", false, "write stylesheets next to the pages")
}

// parseFlags parses the flags of a page command and returns positional args.
func parseFlags(cmd string, args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	switch cmd {
	case cmdPost:
		fs.StringVarP(&f.output, "output", "o", "", "output file or posts directory")
		fs.StringVar(&f.title, "title", "", "post title (default: from file name)")
	case cmdBuild:
		fs.StringVarP(&f.output, "output", "o", "", "posts directory")
	}
	if cmd != cmdPost {
		fs.StringVar(&f.index, "index", "", "index page path")
	}

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printCommandUsage(stderr, cmd) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
