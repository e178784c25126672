package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gumhq/gum-sdk-go/pkg/address"
	"github.com/gumhq/gum-sdk-go/pkg/nameservice"
	"github.com/gumhq/gum-sdk-go/pkg/sdk"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Derive Gum program addresses without touching the network",
}

var addressNameCmd = &cobra.Command{
	Use:   "name <name[.tld]>",
	Short: "Derive a name record address, e.g. alice.gum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		programID, err := resolveProgramID("nameservice-program-id", sdk.DefaultNameserviceProgramID)
		if err != nil {
			return err
		}
		derived, err := nameservice.FullNameAddress(programID, args[0])
		if err != nil {
			return err
		}
		return printAddress(cmd, derived)
	},
}

var addressIssuerCmd = &cobra.Command{
	Use:   "issuer <authority>",
	Short: "Derive the issuer address for an authority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authority, err := parseKey("authority", args[0])
		if err != nil {
			return err
		}
		programID, err := resolveProgramID("badge-program-id", sdk.DefaultBadgeProgramID)
		if err != nil {
			return err
		}
		derived, err := address.Issuer(programID, authority)
		if err != nil {
			return err
		}
		return printAddress(cmd, derived)
	},
}

var addressSchemaCmd = &cobra.Command{
	Use:   "schema <salt-hex>",
	Short: "Derive a schema address from its 32-byte salt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("invalid salt: %w", err)
		}
		if len(raw) != 32 {
			return fmt.Errorf("invalid salt: expected 32 bytes, got %d", len(raw))
		}
		var salt [32]byte
		copy(salt[:], raw)

		programID, err := resolveProgramID("badge-program-id", sdk.DefaultBadgeProgramID)
		if err != nil {
			return err
		}
		derived, err := address.Schema(programID, salt)
		if err != nil {
			return err
		}
		return printAddress(cmd, derived)
	},
}

var (
	badgeIssuer string
	badgeSchema string
	badgeHolder string
)

var addressBadgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Derive a badge address from issuer, schema and holder",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := parseKey("issuer", badgeIssuer)
		if err != nil {
			return err
		}
		schema, err := parseKey("schema", badgeSchema)
		if err != nil {
			return err
		}
		holder, err := parseKey("holder", badgeHolder)
		if err != nil {
			return err
		}
		programID, err := resolveProgramID("badge-program-id", sdk.DefaultBadgeProgramID)
		if err != nil {
			return err
		}
		derived, err := address.Badge(programID, issuer, schema, holder)
		if err != nil {
			return err
		}
		return printAddress(cmd, derived)
	},
}

func init() {
	addressBadgeCmd.Flags().StringVar(&badgeIssuer, "issuer", "", "issuer address")
	addressBadgeCmd.Flags().StringVar(&badgeSchema, "schema", "", "schema address")
	addressBadgeCmd.Flags().StringVar(&badgeHolder, "holder", "", "holder wallet")
	_ = addressBadgeCmd.MarkFlagRequired("issuer")
	_ = addressBadgeCmd.MarkFlagRequired("schema")
	_ = addressBadgeCmd.MarkFlagRequired("holder")

	addressCmd.AddCommand(addressNameCmd)
	addressCmd.AddCommand(addressIssuerCmd)
	addressCmd.AddCommand(addressSchemaCmd)
	addressCmd.AddCommand(addressBadgeCmd)
}

// resolveProgramID reads a program ID override from the resolved settings,
// falling back to the deployed default. Nothing else is parsed, so derivation
// works without a payer or network access.
func resolveProgramID(setting string, fallback string) (solana.PublicKey, error) {
	raw := strings.TrimSpace(viper.GetString(setting))
	if raw == "" {
		raw = fallback
	}
	return parseKey(setting, raw)
}

func printAddress(cmd *cobra.Command, derived address.Address) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (bump %d)\n", derived.Key, derived.Bump)
	return err
}
