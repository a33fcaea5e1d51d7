package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")

	// ErrAssetRead covers every read failure other than a missing file,
	// including a symlink that leaves the base directory.
	ErrAssetRead = errors.New("failed to read asset")
)
