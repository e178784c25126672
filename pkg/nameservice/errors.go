package nameservice

import "errors"

var (
	ErrInvalidName         = errors.New("invalid name")
	ErrMissingProgram      = errors.New("nameservice program handle is required")
	ErrMissingIndexer      = errors.New("indexer client is required for queries")
	ErrNameRecordNotFound  = errors.New("name record not found")
	ErrMissingNewAuthority = errors.New("new authority is required")
)
