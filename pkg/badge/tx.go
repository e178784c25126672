package badge

import (
	"github.com/gagliardetto/solana-go"

	"github.com/gumhq/gum-sdk-go/pkg/program"
)

// CreateIssuerBuilder builds a createIssuer request with the payer as
// authority.
func (c *Client) CreateIssuerBuilder() (*program.Builder, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionCreateIssuer, nil,
		program.Writable(RoleIssuer, issuer.Key),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
		program.SystemProgram(),
	), nil
}

// VerifyIssuerBuilder builds a verifyIssuer request. verifier signs as the
// privileged signer; when empty, the payer does.
func (c *Client) VerifyIssuerBuilder(issuer solana.PublicKey, verifier solana.PrivateKey) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}

	signer := c.program.PayerKey()
	if len(verifier) != 0 {
		signer = verifier.PublicKey()
	}

	builder := c.program.NewBuilder(InstructionVerifyIssuer, nil,
		program.Writable(RoleIssuer, issuer),
		program.Signer(RoleSigner, signer),
	)
	if len(verifier) != 0 {
		builder.WithSigners(verifier)
	}
	return builder, nil
}

// DeleteIssuerBuilder builds a deleteIssuer request for the payer's issuer.
func (c *Client) DeleteIssuerBuilder() (*program.Builder, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionDeleteIssuer, nil,
		program.Writable(RoleIssuer, issuer.Key),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
	), nil
}

// CreateSchemaBuilder builds a createSchema request with a fresh salt. The
// new schema address is available from the builder's schema role.
func (c *Client) CreateSchemaBuilder(metadataURI string) (*program.Builder, error) {
	salt, err := readSalt(c.saltSource)
	if err != nil {
		return nil, err
	}
	return c.CreateSchemaBuilderWithSalt(metadataURI, salt)
}

// CreateSchemaBuilderWithSalt builds a createSchema request for a caller
// supplied salt.
func (c *Client) CreateSchemaBuilderWithSalt(metadataURI string, salt [32]byte) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	if err := ValidateMetadataURI(metadataURI); err != nil {
		return nil, err
	}
	schema, err := c.DeriveSchemaAddress(salt)
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionCreateSchema, createSchemaArgs{MetadataURI: metadataURI, RandomHash: salt},
		program.Writable(RoleSchema, schema.Key),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
		program.SystemProgram(),
	), nil
}

// UpdateSchemaBuilder builds an updateSchema request signed by the payer.
func (c *Client) UpdateSchemaBuilder(schema solana.PublicKey, metadataURI string) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	if schema.IsZero() {
		return nil, ErrMissingSchema
	}
	if err := ValidateMetadataURI(metadataURI); err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionUpdateSchema, metadataArgs{MetadataURI: metadataURI},
		program.Writable(RoleSchema, schema),
		program.Signer(RoleAuthority, c.program.PayerKey()),
	), nil
}

// DeleteSchemaBuilder builds a deleteSchema request signed by the payer.
func (c *Client) DeleteSchemaBuilder(schema solana.PublicKey) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	if schema.IsZero() {
		return nil, ErrMissingSchema
	}

	return c.program.NewBuilder(InstructionDeleteSchema, nil,
		program.Writable(RoleSchema, schema),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
	), nil
}

// CreateBadgeBuilder builds a createBadge request from the payer's issuer.
func (c *Client) CreateBadgeBuilder(options CreateBadgeOptions) (*program.Builder, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return nil, err
	}
	if err := validateBadgeOptions(options); err != nil {
		return nil, err
	}

	updateAuthority := options.UpdateAuthority
	if updateAuthority.IsZero() {
		updateAuthority = c.program.PayerKey()
	}
	badge, err := c.DeriveBadgeAddress(issuer.Key, options.Schema, options.Holder)
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionCreateBadge, metadataArgs{MetadataURI: options.MetadataURI},
		program.Writable(RoleBadge, badge.Key),
		program.ReadOnly(RoleIssuer, issuer.Key),
		program.ReadOnly(RoleSchema, options.Schema),
		program.ReadOnly(RoleHolder, options.Holder),
		program.ReadOnly(RoleUpdateAuthority, updateAuthority),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
		program.SystemProgram(),
	), nil
}

// UpdateBadgeBuilder builds an updateBadge request with the payer as update
// authority.
func (c *Client) UpdateBadgeBuilder(badge solana.PublicKey, issuer solana.PublicKey, metadataURI string) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	if err := ValidateMetadataURI(metadataURI); err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionUpdateBadge, metadataArgs{MetadataURI: metadataURI},
		program.Writable(RoleBadge, badge),
		program.ReadOnly(RoleIssuer, issuer),
		program.Signer(RoleUpdateAuthority, c.program.PayerKey()),
	), nil
}

// BurnBadgeBuilder builds a burnBadge request from the payer's issuer.
func (c *Client) BurnBadgeBuilder(badge solana.PublicKey) (*program.Builder, error) {
	issuer, err := c.PayerIssuerAddress()
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionBurnBadge, nil,
		program.Writable(RoleBadge, badge),
		program.ReadOnly(RoleIssuer, issuer.Key),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
	), nil
}

func validateBadgeOptions(options CreateBadgeOptions) error {
	if options.Schema.IsZero() {
		return ErrMissingSchema
	}
	if options.Holder.IsZero() {
		return ErrMissingHolder
	}
	return ValidateMetadataURI(options.MetadataURI)
}
