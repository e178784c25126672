package program

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/shared"
)

const DefaultConfirmationPollInterval = 500 * time.Millisecond

type Config struct {
	ProgramID  solana.PublicKey
	RPC        RPCClient
	Payer      solana.PrivateKey
	Commitment rpc.CommitmentType

	// WaitForConfirmation makes Send block until the signature reaches the
	// configured commitment.
	WaitForConfirmation bool
	PollInterval        time.Duration

	Logger *zap.Logger
}

// Program is a handle on one deployed program.
type Program struct {
	id           solana.PublicKey
	rpc          RPCClient
	payer        solana.PrivateKey
	commitment   rpc.CommitmentType
	confirm      bool
	pollInterval time.Duration
	logger       *zap.Logger
}

// New creates a new Program.
func New(config Config) (*Program, error) {
	if config.ProgramID.IsZero() {
		return nil, ErrMissingProgramID
	}
	if config.RPC == nil {
		return nil, ErrMissingRPC
	}

	commitment := config.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultConfirmationPollInterval
	}

	return &Program{
		id:           config.ProgramID,
		rpc:          config.RPC,
		payer:        config.Payer,
		commitment:   commitment,
		confirm:      config.WaitForConfirmation,
		pollInterval: pollInterval,
		logger:       shared.LoggerOrNop(config.Logger).With(zap.Stringer("program", config.ProgramID)),
	}, nil
}

// ID returns the program ID.
func (p *Program) ID() solana.PublicKey {
	return p.id
}

// RPC returns the underlying RPC client.
func (p *Program) RPC() RPCClient {
	return p.rpc
}

// Commitment returns the commitment used for reads and confirmations.
func (p *Program) Commitment() rpc.CommitmentType {
	return p.commitment
}

// HasPayer reports whether a payer keypair is configured.
func (p *Program) HasPayer() bool {
	return len(p.payer) != 0
}

// PayerKey returns the payer public key, or the zero key when no payer is
// configured.
func (p *Program) PayerKey() solana.PublicKey {
	if !p.HasPayer() {
		return solana.PublicKey{}
	}
	return p.payer.PublicKey()
}

// Logger returns the program-scoped logger.
func (p *Program) Logger() *zap.Logger {
	return p.logger
}
