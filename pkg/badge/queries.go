package badge

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/gumhq/gum-sdk-go/pkg/indexer"
)

const (
	QueryBadgesByIssuer = `query GetBadgesByIssuer($issuer: String!) {
  badge(where: {issuer: {_eq: $issuer}}) {
    address
    issuer
    holder
    update_authority
    schema
    metadata_uri
    created_at
    updated_at
  }
}`

	QueryBadgesByHolder = `query GetBadgesByHolder($holder: String!) {
  badge(where: {holder: {_eq: $holder}}) {
    address
    issuer
    holder
    update_authority
    schema
    metadata_uri
    created_at
    updated_at
  }
}`

	QueryIssuersByAuthority = `query GetIssuersByAuthority($authority: String!) {
  issuer(where: {authority: {_eq: $authority}}) {
    address
    authority
    verified
    created_at
    updated_at
  }
}`

	QueryVerifiedIssuers = `query GetVerifiedIssuers {
  issuer(where: {verified: {_eq: true}}) {
    address
    authority
    verified
    created_at
    updated_at
  }
}`

	QuerySchemasByAuthority = `query GetSchemasByAuthority($authority: String!) {
  schema(where: {authority: {_eq: $authority}}) {
    address
    authority
    metadata_uri
    random_hash
    created_at
  }
}`
)

// GetBadgesByIssuer returns the indexed badges awarded by issuer.
func (c *Client) GetBadgesByIssuer(ctx context.Context, issuer solana.PublicKey) ([]BadgeRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[BadgeRow](ctx, c.indexer, "GetBadgesByIssuer", QueryBadgesByIssuer, "badge", keyVariable("issuer", issuer))
}

// GetBadgesByHolder returns the indexed badges held by holder.
func (c *Client) GetBadgesByHolder(ctx context.Context, holder solana.PublicKey) ([]BadgeRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[BadgeRow](ctx, c.indexer, "GetBadgesByHolder", QueryBadgesByHolder, "badge", keyVariable("holder", holder))
}

// GetIssuersByAuthority returns the indexed issuers owned by authority.
func (c *Client) GetIssuersByAuthority(ctx context.Context, authority solana.PublicKey) ([]IssuerRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[IssuerRow](ctx, c.indexer, "GetIssuersByAuthority", QueryIssuersByAuthority, "issuer", keyVariable("authority", authority))
}

// GetVerifiedIssuers returns every indexed issuer with the verified flag set.
func (c *Client) GetVerifiedIssuers(ctx context.Context) ([]IssuerRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[IssuerRow](ctx, c.indexer, "GetVerifiedIssuers", QueryVerifiedIssuers, "issuer", nil)
}

// GetSchemasByAuthority returns the indexed schemas owned by authority.
func (c *Client) GetSchemasByAuthority(ctx context.Context, authority solana.PublicKey) ([]SchemaRow, error) {
	if c.indexer == nil {
		return nil, ErrMissingIndexer
	}
	return indexer.Rows[SchemaRow](ctx, c.indexer, "GetSchemasByAuthority", QuerySchemasByAuthority, "schema", keyVariable("authority", authority))
}

func keyVariable(name string, key solana.PublicKey) map[string]any {
	return map[string]any{name: key.String()}
}
