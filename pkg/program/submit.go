package program

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// Submit signs instructions with the payer and any extra signers and sends
// them as one transaction.
func (p *Program) Submit(ctx context.Context, instructions []solana.Instruction, signers ...solana.PrivateKey) (solana.Signature, error) {
	if !p.HasPayer() {
		return solana.Signature{}, ErrMissingPayer
	}

	latest, err := p.rpc.GetLatestBlockhash(ctx, p.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	if latest == nil || latest.Value == nil {
		return solana.Signature{}, ErrMissingBlockhash
	}

	transaction, err := solana.NewTransaction(
		instructions,
		latest.Value.Blockhash,
		solana.TransactionPayer(p.payer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	keys := make(map[solana.PublicKey]solana.PrivateKey, len(signers)+1)
	keys[p.payer.PublicKey()] = p.payer
	for _, signer := range signers {
		keys[signer.PublicKey()] = signer
	}
	if _, err := transaction.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if privateKey, ok := keys[key]; ok {
			return &privateKey
		}
		return nil
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	signature, err := p.rpc.SendTransactionWithOpts(ctx, transaction, rpc.TransactionOpts{
		PreflightCommitment: p.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	p.logger.Debug("transaction sent", zap.Stringer("signature", signature))

	if p.confirm {
		if err := p.WaitForConfirmation(ctx, signature); err != nil {
			return signature, err
		}
	}
	return signature, nil
}

// WaitForConfirmation polls the signature status until it reaches the
// program's commitment, fails on-chain, or ctx is done.
func (p *Program) WaitForConfirmation(ctx context.Context, signature solana.Signature) error {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		statuses, err := p.rpc.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			return fmt.Errorf("failed to get signature status: %w", err)
		}
		if statuses != nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return &TransactionError{Signature: signature, Err: status.Err}
			}
			if reachedCommitment(status.ConfirmationStatus, p.commitment) {
				p.logger.Debug("transaction confirmed",
					zap.Stringer("signature", signature),
					zap.String("status", string(status.ConfirmationStatus)),
				)
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", signature, ctx.Err())
		case <-ticker.C:
		}
	}
}

func reachedCommitment(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	switch commitment {
	case rpc.CommitmentFinalized:
		return status == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentProcessed:
		return status != ""
	default:
		return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
	}
}
