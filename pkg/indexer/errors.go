package indexer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQueryName = errors.New("query name is required")
	ErrEmptyQuery     = errors.New("query document is required")
)

// QueryError reports a failed indexer query. Cause is the transport or
// GraphQL error returned by the service.
type QueryError struct {
	Query string
	Cause error
}

func (e *QueryError) Error() string {
	if e == nil {
		return "indexer query failed"
	}
	return fmt.Sprintf("indexer query %s failed: %v", e.Query, e.Cause)
}

func (e *QueryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
