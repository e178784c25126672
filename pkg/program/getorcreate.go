package program

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Ensured is the result of GetOrCreate.
type Ensured struct {
	Address   solana.PublicKey
	Created   bool
	Signature solana.Signature
}

// GetOrCreate returns address once an account exists there. When the lookup
// reports Absent it submits the builder returned by create. A lookup
// transport error is returned without submitting anything.
//
// If the submission fails, the address is looked up once more: a concurrent
// caller may have created the account first, in which case the program
// rejects this duplicate and the existing address is returned.
func GetOrCreate(ctx context.Context, p *Program, address solana.PublicKey, create func() (*Builder, error)) (Ensured, error) {
	logger := p.logger.With(zap.Stringer("address", address))

	lookup, err := p.FetchRaw(ctx, address)
	if err != nil {
		return Ensured{}, err
	}
	if lookup.Found() {
		logger.Debug("account found, skipping create")
		return Ensured{Address: address}, nil
	}

	if create == nil {
		return Ensured{}, ErrCreateBuilderRequired
	}
	builder, err := create()
	if err != nil {
		return Ensured{}, err
	}

	logger.Info("account absent, submitting create", zap.String("instruction", builder.Name()))
	signature, sendErr := builder.Send(ctx)
	if sendErr == nil {
		return Ensured{Address: address, Created: true, Signature: signature}, nil
	}

	recheck, err := p.FetchRaw(ctx, address)
	if err == nil && recheck.Found() {
		logger.Warn("create rejected but account now exists", zap.Error(sendErr))
		return Ensured{Address: address}, nil
	}
	return Ensured{}, sendErr
}
