// Package sdk wires the Gum program clients together: one Solana RPC
// connection, a program handle per deployed program, the GraphQL indexer
// client, and the nameservice and badge facades built on top of them.
//
// Use New for explicit configuration, or NewFromEnv to read the operator
// settings documented in package shared.
package sdk
