package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Status is the outcome of an account lookup that reached the cluster.
type Status int

const (
	StatusAbsent Status = iota
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusAbsent:
		return "absent"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Lookup is a Found or Absent result for one address. Transport failures are
// returned as errors alongside a zero Lookup.
type Lookup[T any] struct {
	Address solana.PublicKey
	Status  Status
	Account T
}

// Found reports whether the account exists.
func (l Lookup[T]) Found() bool {
	return l.Status == StatusFound
}

// FetchRaw returns the account data at address, or StatusAbsent when the
// cluster has no account there.
func (p *Program) FetchRaw(ctx context.Context, address solana.PublicKey) (Lookup[[]byte], error) {
	result, err := p.rpc.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Commitment: p.commitment,
		Encoding:   solana.EncodingBase64,
	})
	if errors.Is(err, rpc.ErrNotFound) || (err == nil && (result == nil || result.Value == nil)) {
		return Lookup[[]byte]{Address: address, Status: StatusAbsent}, nil
	}
	if err != nil {
		return Lookup[[]byte]{}, fmt.Errorf("failed to fetch account %s: %w", address, err)
	}

	if !result.Value.Owner.Equals(p.id) {
		return Lookup[[]byte]{}, fmt.Errorf("account %s owned by %s: %w", address, result.Value.Owner, ErrAccountOwner)
	}

	var data []byte
	if result.Value.Data != nil {
		data = result.Value.Data.GetBinary()
	}
	return Lookup[[]byte]{Address: address, Status: StatusFound, Account: data}, nil
}

// Fetch looks up address and decodes it as the named Anchor account.
func Fetch[T any](ctx context.Context, p *Program, accountName string, address solana.PublicKey) (Lookup[T], error) {
	raw, err := p.FetchRaw(ctx, address)
	if err != nil {
		return Lookup[T]{}, err
	}
	if !raw.Found() {
		return Lookup[T]{Address: address, Status: StatusAbsent}, nil
	}

	var account T
	if err := DecodeAccount(accountName, raw.Account, &account); err != nil {
		return Lookup[T]{}, fmt.Errorf("account %s: %w", address, err)
	}
	return Lookup[T]{Address: address, Status: StatusFound, Account: account}, nil
}
