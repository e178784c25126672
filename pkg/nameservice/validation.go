package nameservice

import (
	"fmt"
	"strings"
)

// ValidateName checks a single label. Labels are hashed byte-exact, so
// surrounding whitespace is rejected rather than trimmed.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q contains a dot", ErrInvalidName, name)
	}
	return nil
}

// SplitFullName splits "alice.gum" into its labels, left to right.
func SplitFullName(fullName string) ([]string, error) {
	labels := strings.Split(fullName, ".")
	for _, label := range labels {
		if err := ValidateName(label); err != nil {
			return nil, fmt.Errorf("full name %q: %w", fullName, err)
		}
	}
	return labels, nil
}
