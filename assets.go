package nb2blog

import (
	"errors"

	"github.com/alnah/go-nb2blog/internal/assets"
)

// Built-in asset names.
const (
	// PostTemplate is the template wrapping every post.
	PostTemplate = assets.PostTemplate

	// IndexTemplate is the template of the listing page.
	IndexTemplate = assets.IndexTemplate

	// PostStyle is the stylesheet linked from posts.
	PostStyle = assets.PostStyle

	// IndexStyle is the stylesheet linked from the index.
	IndexStyle = assets.IndexStyle
)

// AssetLoader defines the contract for loading page templates and stylesheets.
//
// NewAssetLoader provides filesystem loading with fallback to the embedded
// defaults. Implement this interface for other backends.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, only embedded assets are used.
// If basePath is set, files under basePath/styles and basePath/templates
// take precedence over the embedded ones.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter maps internal errors to the public sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	return content, convertAssetError(err)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	return content, convertAssetError(err)
}

func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return &assetError{sentinel: ErrStyleNotFound, cause: err}
	case errors.Is(err, assets.ErrTemplateNotFound):
		return &assetError{sentinel: ErrTemplateNotFound, cause: err}
	case errors.Is(err, assets.ErrInvalidBasePath):
		return &assetError{sentinel: ErrInvalidAssetPath, cause: err}
	default:
		return err
	}
}

// assetError keeps the internal message but unwraps to the public sentinel.
type assetError struct {
	sentinel error
	cause    error
}

func (e *assetError) Error() string { return e.cause.Error() }

func (e *assetError) Unwrap() error { return e.sentinel }

var _ AssetLoader = (*assetLoaderAdapter)(nil)
