package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-nb2blog/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestStem - Path naming
// ---------------------------------------------------------------------------

func TestStem(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"notebooks/forward_diffusion.ipynb": "forward_diffusion",
		"notes.v2.ipynb":                    "notes.v2",
		"README":                            "README",
	}
	for in, want := range tests {
		if got := fileutil.Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Creates parents and writes content
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "src", "posts", "a.html")

	if err := fileutil.WriteFile(path, []byte("<p>x</p>")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != "<p>x</p>" {
		t.Errorf("content = %q, want %q", got, "<p>x</p>")
	}
	if info, err := os.Stat(filepath.Join(dir, "src", "posts")); err != nil || !info.IsDir() {
		t.Error("parent directory was not created")
	}
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.WriteFile(filepath.Join(blocker, "a.html"), []byte("x")); err == nil {
		t.Error("expected error when parent is a regular file")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestIsFilePath / TestIsURL
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.ipynb")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"/etc/nb2blog/site.yaml", true},
		{`C:\config\site.yaml`, true},
	}
	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/x", true},
		{"http://example.com", true},
		{"figures/plot.png", false},
		{"ftp://example.com", false},
	}
	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
