package address

import "errors"

var (
	ErrEmptySeed           = errors.New("seed value cannot be empty")
	ErrInvalidSeedEncoding = errors.New("seed value is not valid UTF-8")
	ErrSeedTooLong         = errors.New("seed exceeds 32 bytes")
	ErrNoSeeds             = errors.New("at least one seed is required")
)
