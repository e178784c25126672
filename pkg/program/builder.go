package program

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// AccountRole binds a named account slot of an instruction to a key.
type AccountRole struct {
	Name     string
	Key      solana.PublicKey
	Writable bool
	Signer   bool
}

// ReadOnly returns a read-only, non-signing role.
func ReadOnly(name string, key solana.PublicKey) AccountRole {
	return AccountRole{Name: name, Key: key}
}

// Writable returns a writable, non-signing role.
func Writable(name string, key solana.PublicKey) AccountRole {
	return AccountRole{Name: name, Key: key, Writable: true}
}

// Signer returns a read-only signing role.
func Signer(name string, key solana.PublicKey) AccountRole {
	return AccountRole{Name: name, Key: key, Signer: true}
}

// WritableSigner returns a writable signing role.
func WritableSigner(name string, key solana.PublicKey) AccountRole {
	return AccountRole{Name: name, Key: key, Writable: true, Signer: true}
}

// SystemProgram returns the read-only system program role.
func SystemProgram() AccountRole {
	return ReadOnly("systemProgram", solana.SystemProgramID)
}

// Builder is an unexecuted instruction request.
type Builder struct {
	program *Program
	name    string
	args    any
	roles   []AccountRole
	signers []solana.PrivateKey
}

// NewBuilder creates a Builder for the named instruction. Roles are kept in
// the order given, which must match the program's account schema.
func (p *Program) NewBuilder(name string, args any, roles ...AccountRole) *Builder {
	return &Builder{
		program: p,
		name:    name,
		args:    args,
		roles:   append([]AccountRole(nil), roles...),
	}
}

// Name returns the IDL instruction name.
func (b *Builder) Name() string {
	return b.name
}

// Args returns the instruction arguments.
func (b *Builder) Args() any {
	return b.args
}

// Roles returns a copy of the account roles in instruction order.
func (b *Builder) Roles() []AccountRole {
	return append([]AccountRole(nil), b.roles...)
}

// WithSigners adds keypairs that must sign besides the payer.
func (b *Builder) WithSigners(signers ...solana.PrivateKey) *Builder {
	b.signers = append(b.signers, signers...)
	return b
}

// ResolvePubkeys returns the key bound to every role.
func (b *Builder) ResolvePubkeys() map[string]solana.PublicKey {
	resolved := make(map[string]solana.PublicKey, len(b.roles))
	for _, role := range b.roles {
		resolved[role.Name] = role.Key
	}
	return resolved
}

// Pubkey returns the key bound to role.
func (b *Builder) Pubkey(role string) (solana.PublicKey, error) {
	for _, candidate := range b.roles {
		if candidate.Name == role {
			return candidate.Key, nil
		}
	}
	return solana.PublicKey{}, fmt.Errorf("%s has no role %q: %w", b.name, role, ErrUnknownRole)
}

// Instruction encodes the request as an Anchor instruction.
func (b *Builder) Instruction() (solana.Instruction, error) {
	data, err := EncodeInstructionData(b.name, b.args)
	if err != nil {
		return nil, err
	}

	accounts := make(solana.AccountMetaSlice, 0, len(b.roles))
	for _, role := range b.roles {
		accounts = append(accounts, solana.NewAccountMeta(role.Key, role.Writable, role.Signer))
	}
	return solana.NewInstruction(b.program.id, accounts, data), nil
}

// Send submits the request in its own transaction.
func (b *Builder) Send(ctx context.Context) (solana.Signature, error) {
	instruction, err := b.Instruction()
	if err != nil {
		return solana.Signature{}, err
	}
	return b.program.Submit(ctx, []solana.Instruction{instruction}, b.signers...)
}
