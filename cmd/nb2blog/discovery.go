package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2blog/internal/fileutil"
)

// Notebook file conventions.
const (
	notebookExt      = ".ipynb"
	checkpointDir    = ".ipynb_checkpoints"
	checkpointSuffix = "-checkpoint"
	postExt          = ".html"
)

// notebookFile represents a single notebook to process.
type notebookFile struct {
	InputPath  string
	OutputPath string
	Name       string // File stem
}

// discoverNotebooks lists the notebooks directly inside dir, sorted by name.
// Checkpoint copies are excluded and counted in skipped.
func discoverNotebooks(dir, postsDir string) (files []notebookFile, skipped int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("reading input directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != notebookExt {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if isCheckpoint(path) {
			skipped++
			continue
		}
		files = append(files, newNotebookFile(path, postsDir))
	}
	return files, skipped, nil
}

// isCheckpoint reports whether path is a Jupyter autosave copy.
func isCheckpoint(path string) bool {
	return strings.Contains(filepath.ToSlash(path), checkpointDir) ||
		strings.HasSuffix(fileutil.Stem(path), checkpointSuffix)
}

func newNotebookFile(path, postsDir string) notebookFile {
	name := fileutil.Stem(path)
	return notebookFile{
		InputPath:  path,
		OutputPath: filepath.Join(postsDir, name+postExt),
		Name:       name,
	}
}

// resolvePostOutput determines where a single post is written.
// An output ending in .html is used as the file; otherwise it names the
// posts directory.
func resolvePostOutput(inputPath, output, postsDir string) notebookFile {
	if strings.HasSuffix(strings.ToLower(output), postExt) {
		f := newNotebookFile(inputPath, filepath.Dir(output))
		f.OutputPath = output
		return f
	}
	if output != "" {
		postsDir = output
	}
	return newNotebookFile(inputPath, postsDir)
}

// validateNotebookExtension checks that the file has a .ipynb extension.
func validateNotebookExtension(path string) error {
	if ext := filepath.Ext(path); ext != notebookExt {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
