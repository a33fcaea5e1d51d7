package assets

import "fmt"

// MaxAssetNameLength bounds asset names read from configuration.
const MaxAssetNameLength = 64

// ValidateAssetName accepts bare file stems made of ASCII letters, digits,
// '-' and '_'. Anything else, separators and dots included, is rejected
// with ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAssetName, MaxAssetNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
