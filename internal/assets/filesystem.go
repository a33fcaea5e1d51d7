package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader reads assets below a directory laid out like the
// embedded one. Files are opened with os.OpenInRoot, so neither ".."
// components nor symlinks can reach outside basePath.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader checks that basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	info, err := os.Stat(basePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, basePath)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, basePath)
	}
	if _, err := os.ReadDir(basePath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: basePath}, nil
}

// Load reads {basePath}/{kind dir}/{name}{kind ext}.
func (f *FilesystemLoader) Load(k Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	file, err := os.OpenInRoot(f.basePath, filepath.FromSlash(k.path(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", k.errNotFound(), name, f.basePath)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) { return f.Load(Style, name) }

func (f *FilesystemLoader) LoadTemplate(name string) (string, error) { return f.Load(Template, name) }

var _ AssetLoader = (*FilesystemLoader)(nil)
