package badge

import (
	"errors"
	"testing"
)

func TestValidateMetadataURI(t *testing.T) {
	valid := []string{
		"https://arweave.net/abc123",
		"ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		"ar://abc123",
		"http://localhost:8080/badge.json",
	}
	for _, uri := range valid {
		if err := ValidateMetadataURI(uri); err != nil {
			t.Fatalf("expected %q to be valid: %v", uri, err)
		}
	}

	invalid := []string{"", "   ", " https://arweave.net/x", "badge.json", "https://", "not a uri"}
	for _, uri := range invalid {
		if err := ValidateMetadataURI(uri); !errors.Is(err, ErrInvalidMetadataURI) {
			t.Fatalf("expected ErrInvalidMetadataURI for %q, got %v", uri, err)
		}
	}
}
