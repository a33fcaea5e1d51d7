// Package yamlutil decodes the YAML documents read by the config package,
// so the rest of the module never imports the YAML library directly.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// MaxInputSize limits YAML input to 256KB. Site configs are a few lines long.
var MaxInputSize = 256 << 10

var (
	ErrEmptyInput    = errors.New("yamlutil: empty document")
	ErrNilTarget     = errors.New("yamlutil: nil target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v. Unknown fields and type mismatches
// are errors whose message quotes the offending source line. A null
// document ("", comments only, "---", "null", "~") leaves v untouched.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilTarget
	}

	if isNullDocument(data) {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
	}
	return nil
}

// isNullDocument reports whether the first document of data has no value.
// Syntax errors report false and are left to the decoder.
func isNullDocument(data []byte) bool {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return false
	}
	if len(file.Docs) == 0 {
		return true
	}
	body := file.Docs[0].Body
	return body == nil || body.Type() == ast.NullType
}
