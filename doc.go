// The Gum SDK for Go is a client for the Gum programs on Solana: the
// nameservice, which maps dotted names such as alice.gum to on-chain records,
// and the badge program, which lets issuers define schemas and award badges
// to holders.
//
// # Packages
//
//   - sdk: one-call setup of the RPC connection, program handles, indexer and facades
//   - nameservice: name record and TLD derivation, creation, transfer and queries
//   - badge: issuer, schema and badge derivation, lifecycle requests and queries
//   - address: seed hashing and program address derivation
//   - program: Anchor instruction builders, account lookups and submission
//   - indexer: GraphQL client for the Gum indexer
//   - shared: networks, operator settings, keypairs and logging
//
// The gumctl command in cmd/gumctl exposes address derivation, indexer
// queries and get-or-create submissions from the shell.
//
// # Installation
//
//	go get github.com/gumhq/gum-sdk-go@latest
package gum_sdk_go
