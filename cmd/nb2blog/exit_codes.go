package main

import (
	"errors"
	"os"

	nb2blog "github.com/alnah/go-nb2blog"
	"github.com/alnah/go-nb2blog/internal/config"
	"github.com/alnah/go-nb2blog/internal/dateutil"
)

// Exit codes for the nb2blog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages written
	ExitGeneral = 1 // General error, including failed documents
	ExitUsage   = 2 // Invalid flags, config, or options
	ExitIO      = 3 // Missing input, no notebooks, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoNotebooks) ||
		errors.Is(err, ErrReadNotebook) ||
		errors.Is(err, ErrWritePost) ||
		errors.Is(err, ErrWriteIndex) ||
		errors.Is(err, ErrWriteStyles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, nb2blog.ErrInvalidRenderer) ||
		errors.Is(err, nb2blog.ErrInvalidHighlight) ||
		errors.Is(err, nb2blog.ErrInvalidLanguage) ||
		errors.Is(err, nb2blog.ErrInvalidAssetPath) ||
		errors.Is(err, nb2blog.ErrRender) {
		return ExitUsage
	}

	return ExitGeneral
}
