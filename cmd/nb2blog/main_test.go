package main

// Notes:
// - End-to-end tests call runMain with an injected Environment and write
//   every file below t.TempDir()
// - Paths are always passed explicitly so the default notebooks/ and src/
//   directories are never touched
// - NB2BLOG_* variables of the host are read by loadConfig; tests do not
//   set them, so a clean environment is assumed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const minimalNotebook = `{"cells": [{"cell_type": "markdown", "source": "Just text."}]}`

const chapterNotebook = `{
  "cells": [
    {"cell_type": "markdown", "source": ["# Attention\n", "**Chapter 3**\n", "Queries and keys."]},
    {"cell_type": "code", "source": "print(1 < 2)", "outputs": [
      {"output_type": "stream", "text": "True\n"}
    ]}
  ]
}`

const imageNotebook = `{"cells": [
  {"cell_type": "markdown", "source": "## Plot\n<img src=\"figs/loss.png\">"}
]}`

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// blogLayout creates notebooks/ and returns the notebook dir, posts dir
// and index path under root.
func blogLayout(t *testing.T, notebooks map[string]string) (root, nbDir, postsDir, indexPath string) {
	t.Helper()
	root = t.TempDir()
	nbDir = filepath.Join(root, "notebooks")
	if err := os.MkdirAll(nbDir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range notebooks {
		writeTestFile(t, filepath.Join(nbDir, name), content)
	}
	return root, nbDir, filepath.Join(root, "src", "posts"), filepath.Join(root, "src", "index.html")
}

// ---------------------------------------------------------------------------
// TestRunMain - command dispatch
// ---------------------------------------------------------------------------

func TestRunMain_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command",
			args:       []string{"nb2blog"},
			wantCode:   ExitUsage,
			wantStderr: "Usage: nb2blog <command>",
		},
		{
			name:       "unknown command",
			args:       []string{"nb2blog", "publish"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: publish",
		},
		{
			name:       "version",
			args:       []string{"nb2blog", "version"},
			wantCode:   ExitSuccess,
			wantStdout: "nb2blog dev",
		},
		{
			name:       "version flag",
			args:       []string{"nb2blog", "--version"},
			wantCode:   ExitSuccess,
			wantStdout: "nb2blog dev",
		},
		{
			name:       "help",
			args:       []string{"nb2blog", "help"},
			wantCode:   ExitSuccess,
			wantStdout: "Commands:",
		},
		{
			name:       "help for command",
			args:       []string{"nb2blog", "help", "post"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage: nb2blog post <file.ipynb>",
		},
		{
			name:       "help for unknown topic",
			args:       []string{"nb2blog", "help", "publish"},
			wantCode:   ExitUsage,
			wantStderr: "Unknown command: publish",
		},
		{
			name:       "command help flag",
			args:       []string{"nb2blog", "build", "--help"},
			wantCode:   ExitSuccess,
			wantStderr: "Usage: nb2blog build [input-dir]",
		},
		{
			name:       "unknown flag",
			args:       []string{"nb2blog", "build", "--no-such-flag"},
			wantCode:   ExitUsage,
			wantStderr: "invalid usage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"short flag", []string{"nb2blog", "build", "-v"}, true},
		{"long flag", []string{"nb2blog", "build", "--verbose"}, true},
		{"absent", []string{"nb2blog", "build", "notebooks"}, false},
		{"after terminator", []string{"nb2blog", "build", "--", "-v"}, false},
		{"program name only", []string{"-v"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
