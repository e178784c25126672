package program

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// OperationResult is the outcome of a submitted facade operation: the
// primary account it touched and the transaction signature.
type OperationResult struct {
	Address   solana.PublicKey
	Signature solana.Signature
}

// Execute sends the builder and reports the key bound to role as the
// operation's address.
func (b *Builder) Execute(ctx context.Context, role string) (OperationResult, error) {
	address, err := b.Pubkey(role)
	if err != nil {
		return OperationResult{}, err
	}

	signature, err := b.Send(ctx)
	if err != nil {
		return OperationResult{}, err
	}
	return OperationResult{Address: address, Signature: signature}, nil
}
