// Package dateutil resolves the post metadata date label.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps format tokens to their rendering for a given time.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return strconv.Itoa(t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"mmmm", func(t time.Time) string { return strings.ToLower(t.Month().String()) }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"mmm", func(t time.Time) string { return strings.ToLower(t.Month().String()[:3]) }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// DatePresets provides named shortcuts for common date formats.
// "blog" matches the lower-case "november 2025" labels of the posts.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
	"blog":     "mmmm YYYY",
}

// Format renders t using a user-friendly format string.
// Tokens: YYYY, YY, MMMM, mmmm, MMM, mmm, MM, M, DD, D (lower-case m tokens
// give lower-case month names). Bracketed text is copied literally: [Date].
// Any other character is preserved as a literal.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				result.WriteString(tok.render(t))
				i += len(tok.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date labels.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:mmmm YYYY")
//   - "auto:preset" → current date using a named preset (iso, european, us, long, month, blog)
//   - any other value → returned unchanged, so literal labels like "november 2025" pass through
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if lower == "auto" {
		return Format(t, DefaultDateFormat)
	}

	if !strings.HasPrefix(lower, "auto:") {
		return value, nil
	}

	// Format tokens are case-sensitive, presets are not.
	formatPart := value[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
		formatPart = preset
	}

	return Format(t, formatPart)
}
