package nb2blog

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyNotebook = errors.New("notebook content cannot be empty")
	ErrRender        = errors.New("page rendering failed")

	// Option validation errors.
	ErrInvalidRenderer  = errors.New("invalid markdown renderer")
	ErrInvalidHighlight = errors.New("invalid highlight mode")
	ErrInvalidLanguage  = errors.New("invalid code language")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
