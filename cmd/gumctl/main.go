package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/sdk"
	"github.com/gumhq/gum-sdk-go/pkg/shared"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gumctl",
	Short: "Gum nameservice and badge CLI",
	Long: `gumctl derives Gum program addresses, queries the Gum indexer, and
submits nameservice and badge requests.

Settings come from flags, a config file (default ~/.gum/config.yaml) and the
SOLANA_* / GUM_* environment variables, in that order of precedence.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(home + "/.gum")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()
		_ = viper.ReadInConfig()
	},
}

var settingEnv = map[string][]string{
	"network":                {"SOLANA_NETWORK"},
	"rpc-url":                {"SOLANA_RPC_URL"},
	"private-key":            {"SOLANA_PRIVATE_KEY"},
	"keypair":                {"SOLANA_KEYPAIR_PATH"},
	"graphql-url":            {"GUM_GRAPHQL_URL"},
	"graphql-api-key":        {"GUM_GRAPHQL_API_KEY"},
	"nameservice-program-id": {"GUM_NAMESERVICE_PROGRAM_ID"},
	"badge-program-id":       {"GUM_BADGE_PROGRAM_ID"},
	"log-level":              {"GUM_LOG_LEVEL"},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.gum/config.yaml)")
	flags.String("network", "", "Solana network: mainnet, devnet or localnet (default devnet)")
	flags.String("rpc-url", "", "Solana JSON-RPC endpoint (default per network)")
	flags.String("private-key", "", "payer secret key, base58 or JSON byte array")
	flags.String("keypair", "", "path to a solana-keygen keypair file")
	flags.String("graphql-url", "", "Gum indexer GraphQL endpoint (default per network)")
	flags.String("graphql-api-key", "", "Gum indexer API key")
	flags.String("nameservice-program-id", "", "nameservice program ID override")
	flags.String("badge-program-id", "", "badge program ID override")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	for key, envs := range settingEnv {
		_ = viper.BindPFlag(key, flags.Lookup(key))
		_ = viper.BindEnv(append([]string{key}, envs...)...)
	}

	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(versionCmd)
}

// operatorSettings collects the resolved settings in the shape the SDK reads
// from the environment.
func operatorSettings() (shared.OperatorConfig, error) {
	network, err := shared.NormalizeNetwork(viper.GetString("network"))
	if err != nil {
		return shared.OperatorConfig{}, err
	}
	return shared.OperatorConfig{
		Network:              network,
		RPCURL:               viper.GetString("rpc-url"),
		PrivateKey:           viper.GetString("private-key"),
		KeypairPath:          viper.GetString("keypair"),
		GraphQLURL:           viper.GetString("graphql-url"),
		GraphQLAPIKey:        viper.GetString("graphql-api-key"),
		NameserviceProgramID: viper.GetString("nameservice-program-id"),
		BadgeProgramID:       viper.GetString("badge-program-id"),
	}, nil
}

// newSDK builds the SDK from the resolved settings. Commands that submit
// transactions pass requirePayer.
func newSDK(requirePayer bool) (*sdk.SDK, *zap.Logger, error) {
	settings, err := operatorSettings()
	if err != nil {
		return nil, nil, err
	}
	if requirePayer && strings.TrimSpace(settings.PrivateKey) == "" && strings.TrimSpace(settings.KeypairPath) == "" {
		return nil, nil, fmt.Errorf("a payer is required: set --private-key, --keypair, SOLANA_PRIVATE_KEY or SOLANA_KEYPAIR_PATH")
	}

	logger, err := shared.NewLogger(viper.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}

	client, err := sdk.NewFromOperatorConfig(settings, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

func parseKey(name string, raw string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(strings.TrimSpace(raw))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return key, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gumctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gumctl %s\n", version)
	},
}
