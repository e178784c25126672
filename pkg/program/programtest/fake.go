// Package programtest provides an in-memory RPC client for testing code
// built on the program package.
package programtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SentInstruction is a decoded instruction from a submitted transaction.
type SentInstruction struct {
	ProgramID solana.PublicKey
	Accounts  []solana.PublicKey
	Data      []byte
}

// FakeRPC stores accounts in memory and records submitted transactions.
type FakeRPC struct {
	mu sync.Mutex

	accounts map[solana.PublicKey]*rpc.Account

	// AccountErr is returned by every account lookup when set.
	AccountErr error
	// SendErr is returned by SendTransactionWithOpts when set.
	SendErr error
	// OnSend runs before a transaction is accepted; a non-nil error rejects it.
	OnSend func(transaction *solana.Transaction) error
	// Status is the confirmation status reported for every signature.
	Status rpc.ConfirmationStatusType
	// StatusErr is reported as the on-chain error for every signature.
	StatusErr any

	sent          []*solana.Transaction
	accountCalls  int
	statusQueries int
}

// NewFakeRPC creates a new FakeRPC.
func NewFakeRPC() *FakeRPC {
	return &FakeRPC{
		accounts: map[solana.PublicKey]*rpc.Account{},
		Status:   rpc.ConfirmationStatusFinalized,
	}
}

// SetAccount stores data at address owned by owner.
func (f *FakeRPC) SetAccount(address solana.PublicKey, owner solana.PublicKey, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = &rpc.Account{
		Lamports: 1_000_000,
		Owner:    owner,
		Data:     rpc.DataBytesOrJSONFromBytes(data),
	}
}

// DeleteAccount removes the account at address.
func (f *FakeRPC) DeleteAccount(address solana.PublicKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, address)
}

// Sent returns the submitted transactions in order.
func (f *FakeRPC) Sent() []*solana.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*solana.Transaction(nil), f.sent...)
}

// AccountCalls returns how many account lookups were made.
func (f *FakeRPC) AccountCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accountCalls
}

// StatusQueries returns how many signature status requests were made.
func (f *FakeRPC) StatusQueries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusQueries
}

// GetAccountInfoWithOpts implements program.RPCClient.
func (f *FakeRPC) GetAccountInfoWithOpts(_ context.Context, account solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls++

	if f.AccountErr != nil {
		return nil, f.AccountErr
	}
	stored, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: stored}, nil
}

// GetLatestBlockhash implements program.RPCClient.
func (f *FakeRPC) GetLatestBlockhash(_ context.Context, _ rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            solana.Hash{0x67, 0x75, 0x6d, 0x01},
			LastValidBlockHeight: 100,
		},
	}, nil
}

// SendTransactionWithOpts implements program.RPCClient.
func (f *FakeRPC) SendTransactionWithOpts(_ context.Context, transaction *solana.Transaction, _ rpc.TransactionOpts) (solana.Signature, error) {
	if f.SendErr != nil {
		return solana.Signature{}, f.SendErr
	}
	if len(transaction.Signatures) == 0 {
		return solana.Signature{}, fmt.Errorf("transaction is not signed")
	}
	if f.OnSend != nil {
		if err := f.OnSend(transaction); err != nil {
			return solana.Signature{}, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, transaction)
	return transaction.Signatures[0], nil
}

// GetSignatureStatuses implements program.RPCClient.
func (f *FakeRPC) GetSignatureStatuses(_ context.Context, _ bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusQueries++

	values := make([]*rpc.SignatureStatusesResult, 0, len(signatures))
	for range signatures {
		values = append(values, &rpc.SignatureStatusesResult{
			ConfirmationStatus: f.Status,
			Err:                f.StatusErr,
		})
	}
	return &rpc.GetSignatureStatusesResult{Value: values}, nil
}

// Instructions decodes the compiled instructions of transaction.
func Instructions(transaction *solana.Transaction) ([]SentInstruction, error) {
	keys := transaction.Message.AccountKeys
	decoded := make([]SentInstruction, 0, len(transaction.Message.Instructions))
	for _, compiled := range transaction.Message.Instructions {
		if int(compiled.ProgramIDIndex) >= len(keys) {
			return nil, fmt.Errorf("program index %d out of range", compiled.ProgramIDIndex)
		}
		accounts := make([]solana.PublicKey, 0, len(compiled.Accounts))
		for _, index := range compiled.Accounts {
			if int(index) >= len(keys) {
				return nil, fmt.Errorf("account index %d out of range", index)
			}
			accounts = append(accounts, keys[index])
		}
		decoded = append(decoded, SentInstruction{
			ProgramID: keys[compiled.ProgramIDIndex],
			Accounts:  accounts,
			Data:      []byte(compiled.Data),
		})
	}
	return decoded, nil
}
