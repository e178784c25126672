package badge

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/address"
	"github.com/gumhq/gum-sdk-go/pkg/indexer"
	"github.com/gumhq/gum-sdk-go/pkg/program"
)

type Client struct {
	program    *program.Program
	indexer    *indexer.Client
	logger     *zap.Logger
	saltSource io.Reader
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	if config.Program == nil {
		return nil, ErrMissingProgram
	}

	logger := config.Logger
	if logger == nil {
		logger = config.Program.Logger()
	}
	saltSource := config.SaltSource
	if saltSource == nil {
		saltSource = rand.Reader
	}

	return &Client{
		program:    config.Program,
		indexer:    config.Indexer,
		logger:     logger.Named("badge"),
		saltSource: saltSource,
	}, nil
}

// Program returns the badge program handle.
func (c *Client) Program() *program.Program {
	return c.program
}

// DeriveIssuerAddress derives the issuer address for authority.
func (c *Client) DeriveIssuerAddress(authority solana.PublicKey) (address.Address, error) {
	return address.Issuer(c.program.ID(), authority)
}

// DeriveSchemaAddress derives the schema address for salt.
func (c *Client) DeriveSchemaAddress(salt [32]byte) (address.Address, error) {
	return address.Schema(c.program.ID(), salt)
}

// DeriveBadgeAddress derives the badge address for an issuer, schema and
// holder.
func (c *Client) DeriveBadgeAddress(issuer, schema, holder solana.PublicKey) (address.Address, error) {
	return address.Badge(c.program.ID(), issuer, schema, holder)
}

// PayerIssuerAddress derives the issuer owned by the payer.
func (c *Client) PayerIssuerAddress() (address.Address, error) {
	if !c.program.HasPayer() {
		return address.Address{}, program.ErrMissingPayer
	}
	return c.DeriveIssuerAddress(c.program.PayerKey())
}

// CreateIssuer submits a createIssuer request for the payer.
func (c *Client) CreateIssuer(ctx context.Context) (program.OperationResult, error) {
	builder, err := c.CreateIssuerBuilder()
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleIssuer)
}

// VerifyIssuer submits a verifyIssuer request. An empty verifier means the
// payer signs.
func (c *Client) VerifyIssuer(ctx context.Context, issuer solana.PublicKey, verifier solana.PrivateKey) (program.OperationResult, error) {
	builder, err := c.VerifyIssuerBuilder(issuer, verifier)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleIssuer)
}

// DeleteIssuer submits a deleteIssuer request for the payer's issuer.
func (c *Client) DeleteIssuer(ctx context.Context) (program.OperationResult, error) {
	builder, err := c.DeleteIssuerBuilder()
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleIssuer)
}

// CreateSchema submits a createSchema request with a fresh salt.
func (c *Client) CreateSchema(ctx context.Context, metadataURI string) (program.OperationResult, error) {
	builder, err := c.CreateSchemaBuilder(metadataURI)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleSchema)
}

// UpdateSchema submits an updateSchema request.
func (c *Client) UpdateSchema(ctx context.Context, schema solana.PublicKey, metadataURI string) (program.OperationResult, error) {
	builder, err := c.UpdateSchemaBuilder(schema, metadataURI)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleSchema)
}

// DeleteSchema submits a deleteSchema request.
func (c *Client) DeleteSchema(ctx context.Context, schema solana.PublicKey) (program.OperationResult, error) {
	builder, err := c.DeleteSchemaBuilder(schema)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleSchema)
}

// CreateBadge submits a createBadge request from the payer's issuer.
func (c *Client) CreateBadge(ctx context.Context, options CreateBadgeOptions) (program.OperationResult, error) {
	builder, err := c.CreateBadgeBuilder(options)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleBadge)
}

// UpdateBadge submits an updateBadge request signed by the payer as update
// authority.
func (c *Client) UpdateBadge(ctx context.Context, badge solana.PublicKey, issuer solana.PublicKey, metadataURI string) (program.OperationResult, error) {
	builder, err := c.UpdateBadgeBuilder(badge, issuer, metadataURI)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleBadge)
}

// BurnBadge submits a burnBadge request from the payer's issuer.
func (c *Client) BurnBadge(ctx context.Context, badge solana.PublicKey) (program.OperationResult, error) {
	builder, err := c.BurnBadgeBuilder(badge)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleBadge)
}

// GetOrCreateIssuer returns the payer's issuer address, creating the issuer
// when absent.
func (c *Client) GetOrCreateIssuer(ctx context.Context) (program.Ensured, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return program.Ensured{}, err
	}
	c.logger.Debug("ensuring issuer", zap.Stringer("issuer", issuer.Key))
	return program.GetOrCreate(ctx, c.program, issuer.Key, c.CreateIssuerBuilder)
}

// GetOrCreateBadge returns the badge address for the payer's issuer, the
// schema and the holder, awarding the badge when absent.
func (c *Client) GetOrCreateBadge(ctx context.Context, options CreateBadgeOptions) (program.Ensured, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return program.Ensured{}, err
	}
	if err := validateBadgeOptions(options); err != nil {
		return program.Ensured{}, err
	}

	badge, err := c.DeriveBadgeAddress(issuer.Key, options.Schema, options.Holder)
	if err != nil {
		return program.Ensured{}, err
	}
	c.logger.Debug("ensuring badge",
		zap.Stringer("issuer", issuer.Key),
		zap.Stringer("schema", options.Schema),
		zap.Stringer("holder", options.Holder),
	)
	return program.GetOrCreate(ctx, c.program, badge.Key, func() (*program.Builder, error) {
		return c.CreateBadgeBuilder(options)
	})
}

// LookupIssuer fetches the issuer at issuer.
func (c *Client) LookupIssuer(ctx context.Context, issuer solana.PublicKey) (program.Lookup[Issuer], error) {
	return program.Fetch[Issuer](ctx, c.program, AccountIssuer, issuer)
}

// LookupSchema fetches the schema at schema.
func (c *Client) LookupSchema(ctx context.Context, schema solana.PublicKey) (program.Lookup[Schema], error) {
	return program.Fetch[Schema](ctx, c.program, AccountSchema, schema)
}

// LookupBadge fetches the badge at badge.
func (c *Client) LookupBadge(ctx context.Context, badge solana.PublicKey) (program.Lookup[Badge], error) {
	return program.Fetch[Badge](ctx, c.program, AccountBadge, badge)
}

// GetIssuer fetches an issuer, returning ErrIssuerNotFound when absent.
func (c *Client) GetIssuer(ctx context.Context, issuer solana.PublicKey) (Issuer, error) {
	lookup, err := c.LookupIssuer(ctx, issuer)
	return foundOr(lookup, err, ErrIssuerNotFound)
}

// GetSchema fetches a schema, returning ErrSchemaNotFound when absent.
func (c *Client) GetSchema(ctx context.Context, schema solana.PublicKey) (Schema, error) {
	lookup, err := c.LookupSchema(ctx, schema)
	return foundOr(lookup, err, ErrSchemaNotFound)
}

// GetBadge fetches a badge, returning ErrBadgeNotFound when absent.
func (c *Client) GetBadge(ctx context.Context, badge solana.PublicKey) (Badge, error) {
	lookup, err := c.LookupBadge(ctx, badge)
	return foundOr(lookup, err, ErrBadgeNotFound)
}

func foundOr[T any](lookup program.Lookup[T], err error, notFound error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !lookup.Found() {
		return zero, fmt.Errorf("%s: %w", lookup.Address, notFound)
	}
	return lookup.Account, nil
}
