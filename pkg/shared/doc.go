// Package shared provides common utilities used across the Gum SDK for Go.
// It includes network normalization, RPC endpoint resolution, operator
// environment variable loading, keypair parsing, and logger construction.
//
// This package is typically used internally by other SDK packages but is
// also available for direct use when building custom integrations against
// the Gum programs on Solana.
//
// # Environment Variables
//
// The shared package supports loading operator credentials from environment
// variables or .env files:
//
//   - SOLANA_NETWORK: mainnet, devnet or localnet (default devnet)
//   - SOLANA_RPC_URL: overrides the cluster RPC endpoint
//   - SOLANA_PRIVATE_KEY: base58 secret key or a JSON byte array
//   - SOLANA_KEYPAIR_PATH: path to a solana-keygen JSON keypair file
//   - GUM_GRAPHQL_URL, GUM_GRAPHQL_API_KEY: indexer endpoint and credentials
//   - GUM_NAMESERVICE_PROGRAM_ID, GUM_BADGE_PROGRAM_ID: program overrides
//
// Network-scoped variants (MAINNET_SOLANA_PRIVATE_KEY, DEVNET_SOLANA_RPC_URL, ...)
// take precedence when the matching network is selected.
package shared
