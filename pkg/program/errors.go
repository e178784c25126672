package program

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrMissingPayer          = errors.New("payer keypair is required to submit transactions")
	ErrMissingRPC            = errors.New("rpc client is required")
	ErrMissingProgramID      = errors.New("program ID is required")
	ErrAccountDiscriminator  = errors.New("account discriminator mismatch")
	ErrAccountOwner          = errors.New("account is not owned by the program")
	ErrAccountDataTooShort   = errors.New("account data shorter than discriminator")
	ErrMissingBlockhash      = errors.New("rpc returned no blockhash")
	ErrEmptyInstructionName  = errors.New("instruction name is required")
	ErrUnknownRole           = errors.New("unknown account role")
	ErrCreateBuilderRequired = errors.New("create builder is required")
)

// TransactionError reports a transaction that reached the cluster but failed
// during execution.
type TransactionError struct {
	Signature solana.Signature
	Err       any
}

func (e *TransactionError) Error() string {
	if e == nil {
		return "transaction failed"
	}
	return fmt.Sprintf("transaction %s failed: %v", e.Signature, e.Err)
}
