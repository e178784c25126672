package nameservice

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gumhq/gum-sdk-go/pkg/indexer"
)

const nameRecordFields = `address
    name
    authority
    domain
    created_at
    updated_at`

const (
	QueryNameRecordsByDomain = `query GetNameRecordsByDomain($domain: String!) {
  name_record(where: {domain: {_eq: $domain}}) {
    ` + nameRecordFields + `
  }
}`

	QueryNameRecordsByAuthority = `query GetNameRecordsByAuthority($authority: String!) {
  name_record(where: {authority: {_eq: $authority}}) {
    ` + nameRecordFields + `
  }
}`

	QueryNameRecordByAddress = `query GetNameRecordByAddress($address: String!) {
  name_record(where: {address: {_eq: $address}}) {
    ` + nameRecordFields + `
  }
}`
)

const nameRecordTable = "name_record"

// GetNameRecordsByDomain returns the indexed records under domain.
func (c *Client) GetNameRecordsByDomain(ctx context.Context, domain solana.PublicKey) ([]NameRecordRow, error) {
	return c.queryNameRecords(ctx, "GetNameRecordsByDomain", QueryNameRecordsByDomain, "domain", domain)
}

// GetNameRecordsByAuthority returns the indexed records owned by authority.
func (c *Client) GetNameRecordsByAuthority(ctx context.Context, authority solana.PublicKey) ([]NameRecordRow, error) {
	return c.queryNameRecords(ctx, "GetNameRecordsByAuthority", QueryNameRecordsByAuthority, "authority", authority)
}

// GetTLDs returns the indexed top-level domains.
func (c *Client) GetTLDs(ctx context.Context) ([]NameRecordRow, error) {
	return c.queryNameRecords(ctx, "GetTLDs", QueryNameRecordsByDomain, "domain", solana.PublicKey{})
}

// GetNameRecordByAddress returns the indexed record at nameRecord, or nil
// when the indexer has no such row.
func (c *Client) GetNameRecordByAddress(ctx context.Context, nameRecord solana.PublicKey) (*NameRecordRow, error) {
	rows, err := c.queryNameRecords(ctx, "GetNameRecordByAddress", QueryNameRecordByAddress, "address", nameRecord)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *Client) queryNameRecords(ctx context.Context, name string, query string, variable string, value solana.PublicKey) ([]NameRecordRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[NameRecordRow](ctx, c.indexer, name, query, nameRecordTable, map[string]any{
		variable: value.String(),
	})
}
