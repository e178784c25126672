package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddressName(t *testing.T) {
	output, err := runCommand(t, "address", "name", "alice.gum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "8AnPAT6ZrYfmpMdnvopvwLe2hvM2PztjTyMbjp9pLSLg") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestAddressIgnoresPayerSettings(t *testing.T) {
	t.Setenv("SOLANA_PRIVATE_KEY", "not-a-key")
	t.Setenv("SOLANA_KEYPAIR_PATH", "/does/not/exist.json")

	output, err := runCommand(t, "address", "name", "alice.gum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "8AnPAT6ZrYfmpMdnvopvwLe2hvM2PztjTyMbjp9pLSLg") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestAddressRejectsBadProgramOverride(t *testing.T) {
	t.Setenv("GUM_BADGE_PROGRAM_ID", "not-a-key")
	if _, err := runCommand(t, "address", "issuer", "Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v"); err == nil {
		t.Fatal("expected invalid program ID error")
	}
}

func TestAddressIssuer(t *testing.T) {
	output, err := runCommand(t, "address", "issuer", "Af2Y56WUFQuTTTYHMCjMozYsDxvTvSM6YQnyv8E6EK3v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "5SDsERV1qmHMUKdbhwrkmpnTUExGKde6dk87A3vjgSt4") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestAddressSchema(t *testing.T) {
	salt := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	output, err := runCommand(t, "address", "schema", salt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "EsmjSLicQ1JE4zp3fPNEDLAh1zuUcT8D5XjpF7dLmYqo") {
		t.Fatalf("unexpected output: %s", output)
	}

	if _, err := runCommand(t, "address", "schema", "0001"); err == nil {
		t.Fatal("expected short salt error")
	}
}

func TestAddressIssuerRejectsBadKey(t *testing.T) {
	if _, err := runCommand(t, "address", "issuer", "not-a-key"); err == nil {
		t.Fatal("expected invalid key error")
	}
}

func TestQueryTLDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name_record":[{"address":"BnxSpmRhzKuxDkr1rVX45XBzN8F6BqtjU93Ps1W16gpP","name":"gum","authority":"a","domain":"11111111111111111111111111111111","created_at":"2023-01-01"}]}}`))
	}))
	defer server.Close()

	output, err := runCommand(t, "query", "tlds", "--graphql-url", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "ADDRESS") || !strings.Contains(output, "gum") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestCreateRequiresPayer(t *testing.T) {
	t.Setenv("SOLANA_PRIVATE_KEY", "")
	t.Setenv("SOLANA_KEYPAIR_PATH", "")
	if _, err := runCommand(t, "create", "issuer"); err == nil || !strings.Contains(err.Error(), "payer") {
		t.Fatalf("expected payer error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	output, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "gumctl dev") {
		t.Fatalf("unexpected output: %s", output)
	}
}
