package main

// Notes:
// - Uses the fixtures and helpers of main_test.go
// - Page content is covered by the library tests; these tests check files,
//   progress output and exit codes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuild - posts and index
// ---------------------------------------------------------------------------

func TestBuild_WritesPostsAndIndex(t *testing.T) {
	t.Parallel()

	_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{
		"attention_basics.ipynb":      chapterNotebook,
		"lstm_gates.ipynb":            minimalNotebook,
		"lstm_gates-checkpoint.ipynb": minimalNotebook,
		"README.md":                   "not a notebook",
	})

	env, stdout, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	post := readTestFile(t, filepath.Join(postsDir, "attention_basics.html"))
	for _, want := range []string{"<h1>Attention Basics</h1>", `<div class="meta">november 2025</div>`, "<pre>True</pre>"} {
		if !strings.Contains(post, want) {
			t.Errorf("post missing %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(postsDir, "lstm_gates-checkpoint.html")); !os.IsNotExist(err) {
		t.Error("checkpoint notebook should not be rendered")
	}

	index := readTestFile(t, indexPath)
	for _, want := range []string{`href="posts/attention_basics.html"`, `href="posts/lstm_gates.html"`, "Queries and keys."} {
		if !strings.Contains(index, want) {
			t.Errorf("index missing %q", want)
		}
	}

	out := stdout.String()
	for _, want := range []string{
		"Created " + filepath.Join(postsDir, "attention_basics.html"),
		"Created " + filepath.Join(postsDir, "lstm_gates.html"),
		"2 succeeded, 0 failed",
		"Created " + indexPath,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestBuild_IndexLinksFollowPostsDir(t *testing.T) {
	t.Parallel()

	root, nbDir, _, indexPath := blogLayout(t, map[string]string{
		"lstm_gates.ipynb": minimalNotebook,
	})
	postsDir := filepath.Join(root, "out", "blog")

	env, _, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	if _, err := os.Stat(filepath.Join(postsDir, "lstm_gates.html")); err != nil {
		t.Fatalf("post not written: %v", err)
	}
	index := readTestFile(t, indexPath)
	if want := `href="../out/blog/lstm_gates.html"`; !strings.Contains(index, want) {
		t.Errorf("index missing %q", want)
	}
}

func TestBuild_FailedNotebookStillWritesIndex(t *testing.T) {
	t.Parallel()

	_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{
		"broken.ipynb": `{"cells": [`,
		"good.ipynb":   chapterNotebook,
	})

	env, stdout, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath}, env)
	if code != ExitGeneral {
		t.Errorf("runMain() = %d, want %d", code, ExitGeneral)
	}

	errOut := stderr.String()
	if !strings.Contains(errOut, "FAILED "+filepath.Join(nbDir, "broken.ipynb")) {
		t.Errorf("stderr missing FAILED line:\n%s", errOut)
	}
	if !strings.Contains(errOut, "warning: skipping "+filepath.Join(nbDir, "broken.ipynb")+" in index") {
		t.Errorf("stderr missing index warning:\n%s", errOut)
	}
	if !strings.Contains(errOut, "1 document(s) failed") {
		t.Errorf("stderr missing failure count:\n%s", errOut)
	}
	if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
		t.Errorf("stdout missing summary:\n%s", stdout)
	}

	if _, err := os.Stat(filepath.Join(postsDir, "broken.html")); !os.IsNotExist(err) {
		t.Error("broken notebook should produce no post")
	}
	index := readTestFile(t, indexPath)
	if !strings.Contains(index, "posts/good.html") || strings.Contains(index, "posts/broken.html") {
		t.Errorf("index should list only readable notebooks:\n%s", index)
	}
}

func TestBuild_OutputModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		flag     string
		wantOut  []string
		wantNone bool
	}{
		{
			name:     "quiet",
			flag:     "-q",
			wantNone: true,
		},
		{
			name:    "verbose",
			flag:    "-v",
			wantOut: []string{" -> ", "index -> ", "(1 entries, "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{"intro.ipynb": minimalNotebook})
			env, stdout, stderr := testEnv()
			code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath, tt.flag}, env)
			if code != ExitSuccess {
				t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
			}
			if tt.wantNone && stdout.Len() != 0 {
				t.Errorf("quiet mode wrote to stdout: %q", stdout)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestBuild_Verbose_ReportsDiscovery(t *testing.T) {
	t.Parallel()

	_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{"intro.ipynb": minimalNotebook})
	env, _, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath, "-v", "--renderer", "commonmark"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr.String(), "Found 1 notebook(s) in "+nbDir+" (renderer: commonmark, highlight: client)") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestBuild_WriteStyles(t *testing.T) {
	t.Parallel()

	root, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{"intro.ipynb": minimalNotebook})
	env, stdout, stderr := testEnv()
	code := runMain([]string{
		"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath,
		"--write-styles", "--highlight", "server",
	}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	for _, name := range []string{"style.css", "post-style.css", "chroma.css"} {
		path := filepath.Join(root, "src", "styles", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("stylesheet %s not written: %v", name, err)
		}
		if !strings.Contains(stdout.String(), "Created "+path) {
			t.Errorf("stdout missing Created line for %s", name)
		}
	}
}

func TestBuild_RewritePaths(t *testing.T) {
	t.Parallel()

	_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{"plots.ipynb": imageNotebook})
	env, _, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath, "--rewrite-paths"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	post := readTestFile(t, filepath.Join(postsDir, "plots.html"))
	if !strings.Contains(post, `src="../../notebooks/figs/loss.png"`) {
		t.Errorf("image path not rewritten:\n%s", post)
	}
}

func TestBuild_MetaFlag(t *testing.T) {
	t.Parallel()

	_, nbDir, postsDir, indexPath := blogLayout(t, map[string]string{"intro.ipynb": minimalNotebook})
	env, _, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath, "--meta", "auto:blog"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
	}

	// The fixed clock of testEnv is 2026-03-09.
	post := readTestFile(t, filepath.Join(postsDir, "intro.html"))
	if strings.Contains(post, "november 2025") {
		t.Errorf("default meta label used despite --meta:\n%s", post)
	}
	if !strings.Contains(post, "2026") {
		t.Errorf("resolved date missing from post:\n%s", post)
	}
}

// ---------------------------------------------------------------------------
// TestBuild - errors
// ---------------------------------------------------------------------------

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		notebooks  map[string]string
		extraArgs  []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "no notebooks",
			notebooks:  map[string]string{"a-checkpoint.ipynb": minimalNotebook},
			wantCode:   ExitIO,
			wantStderr: "1 checkpoint file(s)",
		},
		{
			name:       "invalid renderer",
			notebooks:  map[string]string{"a.ipynb": minimalNotebook},
			extraArgs:  []string{"--renderer", "pandoc"},
			wantCode:   ExitUsage,
			wantStderr: "renderer",
		},
		{
			name:       "unknown chroma style",
			notebooks:  map[string]string{"a.ipynb": minimalNotebook},
			extraArgs:  []string{"--highlight", "server", "--chroma-style", "no-such-style"},
			wantCode:   ExitUsage,
			wantStderr: "hint: available:",
		},
		{
			name:       "invalid meta format",
			notebooks:  map[string]string{"a.ipynb": minimalNotebook},
			extraArgs:  []string{"--meta", "auto:"},
			wantCode:   ExitUsage,
			wantStderr: "site.date",
		},
		{
			name:       "missing config",
			notebooks:  map[string]string{"a.ipynb": minimalNotebook},
			extraArgs:  []string{"--config", "/no/such/blog.yaml"},
			wantCode:   ExitUsage,
			wantStderr: "loading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, nbDir, postsDir, indexPath := blogLayout(t, tt.notebooks)
			args := append([]string{"nb2blog", "build", nbDir, "-o", postsDir, "--index", indexPath}, tt.extraArgs...)

			env, _, stderr := testEnv()
			if code := runMain(args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr, tt.wantStderr)
			}
			if _, err := os.Stat(indexPath); !os.IsNotExist(err) {
				t.Error("index should not be written on setup errors")
			}
		})
	}
}

func TestBuild_MissingInputDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	env, _, stderr := testEnv()
	code := runMain([]string{"nb2blog", "build", filepath.Join(root, "missing"), "--index", filepath.Join(root, "index.html")}, env)
	if code != ExitIO {
		t.Errorf("runMain() = %d, want %d (stderr: %s)", code, ExitIO, stderr)
	}
}

func TestResolveInputDir(t *testing.T) {
	t.Parallel()

	if _, err := resolveInputDir([]string{"a", "b"}, nil); err == nil {
		t.Error("expected error for two directories")
	}
}
