package badge

import "errors"

var (
	ErrInvalidMetadataURI = errors.New("invalid metadata URI")
	ErrMissingProgram     = errors.New("badge program handle is required")
	ErrMissingIndexer     = errors.New("indexer client is required for queries")
	ErrMissingHolder      = errors.New("holder is required")
	ErrMissingSchema      = errors.New("schema is required")
	ErrIssuerNotFound     = errors.New("issuer not found")
	ErrSchemaNotFound     = errors.New("schema not found")
	ErrBadgeNotFound      = errors.New("badge not found")
)
