// Package program is the shared handle the Gum facades use to reach a
// deployed Anchor program: it encodes instructions, reads and decodes
// program accounts, and signs and submits transactions through a Solana
// JSON-RPC client.
//
// # Request builders
//
// Every mutating operation is expressed as a Builder bound to an
// instruction name, an ordered list of account roles and borsh-encoded
// arguments. Callers can inspect the derived addresses with ResolvePubkeys
// before deciding to Send.
//
// # Lookups
//
// Account reads return a Lookup with an explicit Found or Absent status. A
// transport or decoding failure is reported as an error and is never
// confused with absence.
//
// # Get-or-create
//
// GetOrCreate derives nothing itself; it looks up an address and submits a
// creation request only when the account is Absent. Concurrent callers may
// both observe Absent and both submit; the program rejects the duplicate
// and the losing caller confirms the account now exists and returns the same
// address.
package program
