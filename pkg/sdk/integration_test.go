package sdk

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gumhq/gum-sdk-go/pkg/badge"
	"github.com/gumhq/gum-sdk-go/pkg/shared"
)

func TestSDKIntegration_EndToEnd(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION") != "1" {
		t.Skip("set RUN_INTEGRATION=1 to run live Solana integration tests")
	}

	operatorConfig, err := shared.OperatorConfigFromEnv()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if strings.EqualFold(operatorConfig.Network, shared.NetworkMainnet) && os.Getenv("ALLOW_MAINNET_INTEGRATION") != "1" {
		t.Skip("resolved mainnet credentials; set ALLOW_MAINNET_INTEGRATION=1 to allow live mainnet writes")
	}

	client, err := NewFromOperatorConfig(operatorConfig, nil)
	if err != nil {
		t.Fatalf("failed to create SDK: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tld, err := client.Nameservice().GetOrCreateTLD(ctx, "gum")
	if err != nil {
		t.Fatalf("failed to ensure TLD: %v", err)
	}
	t.Logf("gum TLD: %s (created=%t)", tld.Address, tld.Created)

	name := fmt.Sprintf("it-%d", time.Now().UnixNano())
	record, err := client.Nameservice().GetOrCreateNameRecord(ctx, name, tld.Address)
	if err != nil {
		t.Fatalf("failed to ensure name record: %v", err)
	}
	again, err := client.Nameservice().GetOrCreateNameRecord(ctx, name, tld.Address)
	if err != nil {
		t.Fatalf("failed to re-ensure name record: %v", err)
	}
	if !again.Address.Equals(record.Address) {
		t.Fatalf("get-or-create returned %s then %s", record.Address, again.Address)
	}

	issuer, err := client.Badge().GetOrCreateIssuer(ctx)
	if err != nil {
		t.Fatalf("failed to ensure issuer: %v", err)
	}
	t.Logf("issuer: %s (created=%t)", issuer.Address, issuer.Created)

	schema, err := client.Badge().CreateSchema(ctx, "https://arweave.net/gum-integration-schema.json")
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	holder := client.Badge().Program().PayerKey()
	awarded, err := client.Badge().GetOrCreateBadge(ctx, badge.CreateBadgeOptions{
		Schema:      schema.Address,
		Holder:      holder,
		MetadataURI: "https://arweave.net/gum-integration-badge.json",
	})
	if err != nil {
		t.Fatalf("failed to award badge: %v", err)
	}
	t.Logf("badge: %s", awarded.Address)

	rows, err := client.Badge().GetBadgesByHolder(ctx, holder)
	if err != nil {
		t.Fatalf("failed to query badges: %v", err)
	}
	t.Logf("indexer returned %d badges for holder", len(rows))
}
