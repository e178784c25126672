package nameservice

import (
	"github.com/gagliardetto/solana-go"

	"github.com/gumhq/gum-sdk-go/pkg/program"
)

// CreateTLDBuilder builds a createTld request signed by the payer.
func (c *Client) CreateTLDBuilder(tld string) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	derived, err := c.DeriveTLDAddress(tld)
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionCreateTLD, createTLDArgs{TLD: tld},
		program.Writable(RoleNameRecord, derived.Key),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
		program.SystemProgram(),
	), nil
}

// CreateNameRecordBuilder builds a createNameRecord request for name under
// domain, signed by the payer.
func (c *Client) CreateNameRecordBuilder(name string, domain solana.PublicKey) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	derived, err := c.DeriveNameRecordAddress(name, domain)
	if err != nil {
		return nil, err
	}

	return c.program.NewBuilder(InstructionCreateNameRecord, createNameRecordArgs{Name: name},
		program.Writable(RoleNameRecord, derived.Key),
		program.ReadOnly(RoleDomain, domain),
		program.WritableSigner(RoleAuthority, c.program.PayerKey()),
		program.SystemProgram(),
	), nil
}

// TransferNameRecordBuilder builds a transferNameRecord request. The payer
// must be the record's current authority.
func (c *Client) TransferNameRecordBuilder(nameRecord solana.PublicKey, newAuthority solana.PublicKey) (*program.Builder, error) {
	if !c.program.HasPayer() {
		return nil, program.ErrMissingPayer
	}
	if newAuthority.IsZero() {
		return nil, ErrMissingNewAuthority
	}

	return c.program.NewBuilder(InstructionTransferNameRecord, nil,
		program.Writable(RoleNameRecord, nameRecord),
		program.Signer(RoleAuthority, c.program.PayerKey()),
		program.ReadOnly(RoleNewAuthority, newAuthority),
	), nil
}
