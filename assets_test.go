package nb2blog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	for _, name := range []string{PostStyle, IndexStyle} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
		if css == "" {
			t.Errorf("LoadStyle(%q) returned empty CSS", name)
		}
	}
	for _, name := range []string{PostTemplate, IndexTemplate} {
		if _, err := loader.LoadTemplate(name); err != nil {
			t.Errorf("LoadTemplate(%q) error = %v", name, err)
		}
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_NotFoundMapsToPublicSentinel(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate error = %v, want ErrTemplateNotFound", err)
	}
}

func TestNewAssetLoader_CustomOverridesEmbedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "styles", "post-style.css"), "body { color: red; }")

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}
	css, err := loader.LoadStyle(PostStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "body { color: red; }" {
		t.Errorf("LoadStyle() = %q, want custom content", css)
	}

	// Not overridden: embedded fallback.
	css, err = loader.LoadStyle(IndexStyle)
	if err != nil || css == "" {
		t.Errorf("LoadStyle(%q) = %q, %v; want embedded content", IndexStyle, css, err)
	}
}

// stubLoader serves fixed templates and no styles.
type stubLoader struct {
	post, index string
}

func (s *stubLoader) LoadStyle(name string) (string, error) {
	return "", ErrStyleNotFound
}

func (s *stubLoader) LoadTemplate(name string) (string, error) {
	switch name {
	case PostTemplate:
		return s.post, nil
	case IndexTemplate:
		return s.index, nil
	}
	return "", ErrTemplateNotFound
}

func TestWithAssetLoader(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{
		post:  "<h1>{{.Title}}</h1>",
		index: "{{range .Entries}}[{{.Name}}]{{end}}",
	}
	b, err := NewBuilder(WithAssetLoader(loader), WithAssetPath("/ignored/when/loader/set"))
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	page, err := b.RenderPost(context.Background(), PostInput{Source: []byte(untitledNotebook), Name: "my_post"})
	if err != nil {
		t.Fatalf("RenderPost() error = %v", err)
	}
	if string(page) != "<h1>My Post</h1>" {
		t.Errorf("RenderPost() = %q", page)
	}

	index, err := b.RenderIndex(context.Background(), []IndexEntry{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}
	if string(index) != "[a][b]" {
		t.Errorf("RenderIndex() = %q", index)
	}

	_, err = b.WriteStyles(t.TempDir())
	if !errors.Is(err, ErrStyleNotFound) || !strings.Contains(err.Error(), "style.css") {
		t.Errorf("WriteStyles() error = %v, want ErrStyleNotFound naming the file", err)
	}
}
