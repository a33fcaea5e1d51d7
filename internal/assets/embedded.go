package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// EmbeddedLoader serves the built-in templates and stylesheets.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load returns the built-in asset name of kind k.
func (e *EmbeddedLoader) Load(k Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(embedded, k.path(name))
	if err != nil {
		return "", fmt.Errorf("%w: no built-in %s %q", k.errNotFound(), k, name)
	}
	return string(data), nil
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) { return e.Load(Style, name) }

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) { return e.Load(Template, name) }

var _ AssetLoader = (*EmbeddedLoader)(nil)
