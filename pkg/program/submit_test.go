package program

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/gumhq/gum-sdk-go/pkg/program/programtest"
)

func TestSubmitRequiresPayer(t *testing.T) {
	fake := programtest.NewFakeRPC()
	handle, _ := newTestProgram(t, fake, false)

	_, err := handle.NewBuilder("noop", nil).Send(context.Background())
	if !errors.Is(err, ErrMissingPayer) {
		t.Fatalf("expected ErrMissingPayer, got %v", err)
	}
	if len(fake.Sent()) != 0 {
		t.Fatal("nothing should be sent without a payer")
	}
}

func TestSubmitPropagatesSendError(t *testing.T) {
	fake := programtest.NewFakeRPC()
	fake.SendErr = errors.New("blockhash not found")
	handle, _ := newTestProgram(t, fake, true)

	_, err := handle.NewBuilder("noop", nil).Send(context.Background())
	if err == nil || !errors.Is(err, fake.SendErr) {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func newConfirmingProgram(t *testing.T, fake *programtest.FakeRPC) *Program {
	t.Helper()
	payer, _ := solana.NewRandomPrivateKey()
	handle, err := New(Config{
		ProgramID:           testProgramID,
		RPC:                 fake,
		Payer:               payer,
		WaitForConfirmation: true,
		PollInterval:        time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return handle
}

func TestSubmitWaitsForConfirmation(t *testing.T) {
	fake := programtest.NewFakeRPC()
	fake.Status = rpc.ConfirmationStatusConfirmed
	handle := newConfirmingProgram(t, fake)

	if _, err := handle.NewBuilder("noop", nil).Send(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.StatusQueries() == 0 {
		t.Fatal("expected a signature status query")
	}
}

func TestSubmitReportsTransactionError(t *testing.T) {
	fake := programtest.NewFakeRPC()
	fake.StatusErr = map[string]any{"InstructionError": []any{0, "Custom"}}
	handle := newConfirmingProgram(t, fake)

	signature, err := handle.NewBuilder("noop", nil).Send(context.Background())
	var transactionErr *TransactionError
	if !errors.As(err, &transactionErr) {
		t.Fatalf("expected TransactionError, got %v", err)
	}
	if transactionErr.Signature != signature {
		t.Fatal("transaction error should carry the signature")
	}
}

func TestWaitForConfirmationHonoursContext(t *testing.T) {
	fake := programtest.NewFakeRPC()
	fake.Status = ""
	handle := newConfirmingProgram(t, fake)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := handle.WaitForConfirmation(ctx, solana.Signature{1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestReachedCommitment(t *testing.T) {
	cases := []struct {
		status     rpc.ConfirmationStatusType
		commitment rpc.CommitmentType
		expected   bool
	}{
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentConfirmed, false},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentConfirmed, true},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentConfirmed, true},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentFinalized, false},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentFinalized, true},
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentProcessed, true},
		{"", rpc.CommitmentProcessed, false},
	}
	for _, tc := range cases {
		if result := reachedCommitment(tc.status, tc.commitment); result != tc.expected {
			t.Fatalf("reachedCommitment(%q, %q) = %v", tc.status, tc.commitment, result)
		}
	}
}
