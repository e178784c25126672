package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/gumhq/gum-sdk-go/pkg/badge"
	"github.com/gumhq/gum-sdk-go/pkg/nameservice"
)

var (
	queryFormat    string
	queryDomain    string
	queryAuthority string
	queryIssuer    string
	queryHolder    string
	queryVerified  bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the Gum indexer",
}

var queryTLDsCmd = &cobra.Command{
	Use:   "tlds",
	Short: "List top-level domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newSDK(false)
		if err != nil {
			return err
		}
		rows, err := client.Nameservice().GetTLDs(cmd.Context())
		if err != nil {
			return err
		}
		return printNameRecords(cmd.OutOrStdout(), rows)
	},
}

var queryNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "List name records by --domain or --authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (queryDomain == "") == (queryAuthority == "") {
			return fmt.Errorf("exactly one of --domain or --authority is required")
		}
		client, _, err := newSDK(false)
		if err != nil {
			return err
		}

		var rows []nameservice.NameRecordRow
		if queryDomain != "" {
			domain, err := resolveDomain(client.Nameservice(), queryDomain)
			if err != nil {
				return err
			}
			rows, err = client.Nameservice().GetNameRecordsByDomain(cmd.Context(), domain)
			if err != nil {
				return err
			}
		} else {
			authority, err := parseKey("authority", queryAuthority)
			if err != nil {
				return err
			}
			rows, err = client.Nameservice().GetNameRecordsByAuthority(cmd.Context(), authority)
			if err != nil {
				return err
			}
		}
		return printNameRecords(cmd.OutOrStdout(), rows)
	},
}

var queryBadgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges by --issuer or --holder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (queryIssuer == "") == (queryHolder == "") {
			return fmt.Errorf("exactly one of --issuer or --holder is required")
		}
		client, _, err := newSDK(false)
		if err != nil {
			return err
		}

		var rows []badge.BadgeRow
		if queryIssuer != "" {
			issuer, err := parseKey("issuer", queryIssuer)
			if err != nil {
				return err
			}
			rows, err = client.Badge().GetBadgesByIssuer(cmd.Context(), issuer)
			if err != nil {
				return err
			}
		} else {
			holder, err := parseKey("holder", queryHolder)
			if err != nil {
				return err
			}
			rows, err = client.Badge().GetBadgesByHolder(cmd.Context(), holder)
			if err != nil {
				return err
			}
		}
		return printBadges(cmd.OutOrStdout(), rows)
	},
}

var queryIssuersCmd = &cobra.Command{
	Use:   "issuers",
	Short: "List issuers by --authority, or all --verified issuers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (queryAuthority == "") == !queryVerified {
			return fmt.Errorf("exactly one of --authority or --verified is required")
		}
		client, _, err := newSDK(false)
		if err != nil {
			return err
		}

		var rows []badge.IssuerRow
		if queryVerified {
			rows, err = client.Badge().GetVerifiedIssuers(cmd.Context())
		} else {
			authority, parseErr := parseKey("authority", queryAuthority)
			if parseErr != nil {
				return parseErr
			}
			rows, err = client.Badge().GetIssuersByAuthority(cmd.Context(), authority)
		}
		if err != nil {
			return err
		}
		return printIssuers(cmd.OutOrStdout(), rows)
	},
}

var querySchemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List schemas by --authority",
	RunE: func(cmd *cobra.Command, args []string) error {
		authority, err := parseKey("authority", queryAuthority)
		if err != nil {
			return err
		}
		client, _, err := newSDK(false)
		if err != nil {
			return err
		}
		rows, err := client.Badge().GetSchemasByAuthority(cmd.Context(), authority)
		if err != nil {
			return err
		}
		return printSchemas(cmd.OutOrStdout(), rows)
	},
}

func init() {
	queryCmd.PersistentFlags().StringVar(&queryFormat, "format", "text", "Output format: text or json")

	queryNamesCmd.Flags().StringVar(&queryDomain, "domain", "", "parent domain: an address or a name such as gum")
	queryNamesCmd.Flags().StringVar(&queryAuthority, "authority", "", "record authority")
	queryBadgesCmd.Flags().StringVar(&queryIssuer, "issuer", "", "issuer address")
	queryBadgesCmd.Flags().StringVar(&queryHolder, "holder", "", "holder wallet")
	queryIssuersCmd.Flags().StringVar(&queryAuthority, "authority", "", "issuer authority")
	queryIssuersCmd.Flags().BoolVar(&queryVerified, "verified", false, "list verified issuers")
	querySchemasCmd.Flags().StringVar(&queryAuthority, "authority", "", "schema authority")
	_ = querySchemasCmd.MarkFlagRequired("authority")

	queryCmd.AddCommand(queryTLDsCmd)
	queryCmd.AddCommand(queryNamesCmd)
	queryCmd.AddCommand(queryBadgesCmd)
	queryCmd.AddCommand(queryIssuersCmd)
	queryCmd.AddCommand(querySchemasCmd)
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func printNameRecords(out io.Writer, rows []nameservice.NameRecordRow) error {
	if queryFormat == "json" {
		return printJSON(out, rows)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tNAME\tAUTHORITY\tDOMAIN\tCREATED")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Address, row.Name, row.Authority, row.Domain, row.CreatedAt)
	}
	return w.Flush()
}

func printBadges(out io.Writer, rows []badge.BadgeRow) error {
	if queryFormat == "json" {
		return printJSON(out, rows)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tISSUER\tHOLDER\tSCHEMA\tMETADATA")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Address, row.Issuer, row.Holder, row.Schema, row.MetadataURI)
	}
	return w.Flush()
}

func printIssuers(out io.Writer, rows []badge.IssuerRow) error {
	if queryFormat == "json" {
		return printJSON(out, rows)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tAUTHORITY\tVERIFIED\tCREATED")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Address, row.Authority, strconv.FormatBool(row.Verified), row.CreatedAt)
	}
	return w.Flush()
}

func printSchemas(out io.Writer, rows []badge.SchemaRow) error {
	if queryFormat == "json" {
		return printJSON(out, rows)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tAUTHORITY\tMETADATA\tCREATED")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Address, row.Authority, row.MetadataURI, row.CreatedAt)
	}
	return w.Flush()
}

// resolveDomain accepts either a base58 address or a dotted name.
func resolveDomain(client *nameservice.Client, raw string) (solana.PublicKey, error) {
	if key, err := solana.PublicKeyFromBase58(raw); err == nil {
		return key, nil
	}
	derived, err := client.DeriveFullNameAddress(raw)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return derived.Key, nil
}
