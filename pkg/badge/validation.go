package badge

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateMetadataURI requires an absolute URI such as https://, ipfs:// or
// ar:// with no surrounding whitespace.
func ValidateMetadataURI(metadataURI string) error {
	if strings.TrimSpace(metadataURI) == "" {
		return fmt.Errorf("%w: URI is empty", ErrInvalidMetadataURI)
	}
	if strings.TrimSpace(metadataURI) != metadataURI {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidMetadataURI, metadataURI)
	}

	parsed, err := url.Parse(metadataURI)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMetadataURI, err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: %q has no scheme", ErrInvalidMetadataURI, metadataURI)
	}
	if parsed.Host == "" && parsed.Opaque == "" && strings.Trim(parsed.Path, "/") == "" {
		return fmt.Errorf("%w: %q has no location", ErrInvalidMetadataURI, metadataURI)
	}
	return nil
}
