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

var testProgramID = solana.MustPublicKeyFromBase58("EpnZyjp2x89Rxw1EVACiqfsZDFBUAkKXPgmUGYdiDWZX")

func newTestProgram(t *testing.T, fake *programtest.FakeRPC, withPayer bool) (*Program, solana.PrivateKey) {
	t.Helper()
	var payer solana.PrivateKey
	if withPayer {
		var err error
		payer, err = solana.NewRandomPrivateKey()
		if err != nil {
			t.Fatalf("failed to generate payer: %v", err)
		}
	}
	handle, err := New(Config{
		ProgramID:    testProgramID,
		RPC:          fake,
		Payer:        payer,
		PollInterval: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return handle, payer
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{RPC: programtest.NewFakeRPC()}); !errors.Is(err, ErrMissingProgramID) {
		t.Fatalf("expected ErrMissingProgramID, got %v", err)
	}
	if _, err := New(Config{ProgramID: testProgramID}); !errors.Is(err, ErrMissingRPC) {
		t.Fatalf("expected ErrMissingRPC, got %v", err)
	}

	handle, err := New(Config{ProgramID: testProgramID, RPC: programtest.NewFakeRPC()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Commitment() != rpc.CommitmentConfirmed {
		t.Fatalf("unexpected default commitment %q", handle.Commitment())
	}
	if handle.HasPayer() {
		t.Fatal("expected no payer")
	}
	if !handle.PayerKey().IsZero() {
		t.Fatal("expected zero payer key")
	}
	if !handle.ID().Equals(testProgramID) {
		t.Fatalf("unexpected program ID %s", handle.ID())
	}
}

func TestFetchStatuses(t *testing.T) {
	fake := programtest.NewFakeRPC()
	handle, _ := newTestProgram(t, fake, false)
	ctx := context.Background()
	address := solana.NewWallet().PublicKey()

	absent, err := Fetch[testAccount](ctx, handle, "Issuer", address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.Found() || absent.Status != StatusAbsent {
		t.Fatalf("expected absent, got %s", absent.Status)
	}

	data, _ := EncodeAccount("Issuer", testAccount{Verified: true})
	fake.SetAccount(address, testProgramID, data)
	found, err := Fetch[testAccount](ctx, handle, "Issuer", address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Found() || !found.Account.Verified {
		t.Fatalf("expected found verified account, got %+v", found)
	}
	if !found.Address.Equals(address) {
		t.Fatalf("unexpected address %s", found.Address)
	}
}

func TestFetchTransportErrorIsNotAbsent(t *testing.T) {
	fake := programtest.NewFakeRPC()
	fake.AccountErr = errors.New("connection reset")
	handle, _ := newTestProgram(t, fake, false)

	lookup, err := handle.FetchRaw(context.Background(), solana.NewWallet().PublicKey())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if lookup.Found() {
		t.Fatal("expected zero lookup on error")
	}
}

func TestFetchRejectsForeignOwner(t *testing.T) {
	fake := programtest.NewFakeRPC()
	handle, _ := newTestProgram(t, fake, false)
	address := solana.NewWallet().PublicKey()
	fake.SetAccount(address, solana.SystemProgramID, []byte{1, 2, 3})

	if _, err := handle.FetchRaw(context.Background(), address); !errors.Is(err, ErrAccountOwner) {
		t.Fatalf("expected ErrAccountOwner, got %v", err)
	}
}

func TestFetchDecodeError(t *testing.T) {
	fake := programtest.NewFakeRPC()
	handle, _ := newTestProgram(t, fake, false)
	address := solana.NewWallet().PublicKey()
	data, _ := EncodeAccount("Badge", testAccount{})
	fake.SetAccount(address, testProgramID, data)

	if _, err := Fetch[testAccount](context.Background(), handle, "Issuer", address); !errors.Is(err, ErrAccountDiscriminator) {
		t.Fatalf("expected ErrAccountDiscriminator, got %v", err)
	}
}

func TestStatusString(t *testing.T) {
	if StatusFound.String() != "found" || StatusAbsent.String() != "absent" {
		t.Fatal("unexpected status strings")
	}
	if Status(7).String() != "status(7)" {
		t.Fatalf("unexpected unknown status string %q", Status(7).String())
	}
}

func TestNewAcceptsJSONRPCClient(t *testing.T) {
	var client RPCClient = rpc.New(rpc.LocalNet_RPC)
	handle, err := New(Config{ProgramID: testProgramID, RPC: client})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.RPC() != client {
		t.Fatal("expected the JSON-RPC client to be kept")
	}
}
