package assets

import "path"

// Kind is a category of asset. Each kind lives in its own subdirectory
// with a fixed extension.
type Kind int

const (
	Style    Kind = iota // styles/{name}.css
	Template             // templates/{name}.html
)

func (k Kind) String() string {
	if k == Style {
		return "style"
	}
	return "template"
}

func (k Kind) dir() string {
	if k == Style {
		return "styles"
	}
	return "templates"
}

func (k Kind) ext() string {
	if k == Style {
		return ".css"
	}
	return ".html"
}

func (k Kind) errNotFound() error {
	if k == Style {
		return ErrStyleNotFound
	}
	return ErrTemplateNotFound
}

// path returns the slash-separated location of name below an asset root.
func (k Kind) path(name string) string {
	return path.Join(k.dir(), name+k.ext())
}

// AssetLoader is implemented by every loader of this package and by the
// custom loaders the builder accepts.
type AssetLoader interface {
	// LoadStyle returns styles/{name}.css or ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns templates/{name}.html or ErrTemplateNotFound.
	LoadTemplate(name string) (string, error)
}
