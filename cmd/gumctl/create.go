package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/program"
)

var createDomain string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create Gum accounts with the configured payer",
	Long: `create submits get-or-create requests: when the account already exists
nothing is sent and the existing address is printed.`,
}

var createTLDCmd = &cobra.Command{
	Use:   "tld <tld>",
	Short: "Create a top-level domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logger, err := newSDK(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ensured, err := client.Nameservice().GetOrCreateTLD(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("create tld %q: %w", args[0], err)
		}
		return printEnsured(cmd, ensured)
	},
}

var createNameRecordCmd = &cobra.Command{
	Use:   "name-record <name>",
	Short: "Create a name record under --domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logger, err := newSDK(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		domain, err := resolveDomain(client.Nameservice(), createDomain)
		if err != nil {
			return err
		}
		logger.Info("creating name record", zap.String("name", args[0]), zap.Stringer("domain", domain))

		ensured, err := client.Nameservice().GetOrCreateNameRecord(cmd.Context(), args[0], domain)
		if err != nil {
			return fmt.Errorf("create name record %q: %w", args[0], err)
		}
		return printEnsured(cmd, ensured)
	},
}

var createIssuerCmd = &cobra.Command{
	Use:   "issuer",
	Short: "Create the payer's issuer",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logger, err := newSDK(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ensured, err := client.Badge().GetOrCreateIssuer(cmd.Context())
		if err != nil {
			return fmt.Errorf("create issuer: %w", err)
		}
		return printEnsured(cmd, ensured)
	},
}

func init() {
	createNameRecordCmd.Flags().StringVar(&createDomain, "domain", "", "parent domain: an address or a name such as gum")
	_ = createNameRecordCmd.MarkFlagRequired("domain")

	createCmd.AddCommand(createTLDCmd)
	createCmd.AddCommand(createNameRecordCmd)
	createCmd.AddCommand(createIssuerCmd)
}

func printEnsured(cmd *cobra.Command, ensured program.Ensured) error {
	out := cmd.OutOrStdout()
	if !ensured.Created {
		_, err := fmt.Fprintf(out, "exists   %s\n", ensured.Address)
		return err
	}
	_, err := fmt.Fprintf(out, "created  %s\nsignature %s\n", ensured.Address, ensured.Signature)
	return err
}
