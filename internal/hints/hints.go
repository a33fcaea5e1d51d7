// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/nb2blog/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := string(filepath.Separator) + "nb2blog" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoNotebooks returns hints when an input directory holds no notebooks.
// skipped counts checkpoint files that were filtered out.
func ForNoNotebooks(dir string, skipped int) string {
	hints := []string{"pass the notebook directory as an argument or set input.dir"}
	if skipped > 0 {
		hints = append(hints, fmt.Sprintf("%d checkpoint file(s) in %s were skipped", skipped, dir))
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCustomTemplate returns hints when a template from a custom asset
// directory fails to load or parse.
func ForCustomTemplate(basePath string) string {
	if basePath == "" {
		return ""
	}
	return format("templates are read from " + filepath.Join(basePath, "templates") + "; remove a broken file to fall back to the built-in one")
}

// ForHighlightStyle returns hints for unknown chroma styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
