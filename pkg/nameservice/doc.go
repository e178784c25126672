// Package nameservice is the client for the Gum nameservice program.
//
// A name record lives at the program address derived from
// ["name_record", sha256(name), domain], where domain is the address of the
// parent record. Top-level domains use the zero key as their domain, so
// "alice.gum" resolves by deriving "gum" under the zero key and then "alice"
// under the "gum" record.
//
// The client is stricter about labels than the bare derivation in package
// address: a label must be non-empty, carry no surrounding whitespace and
// contain no dot, since the dot separates labels of a full name. Use
// address.NameRecord directly to derive the address of a record created
// outside these rules.
//
// Every mutating operation comes in two forms: a builder that can be
// inspected before submission, and a method that submits it directly.
// GetOrCreate methods look the record up first and only submit a create when
// the cluster reports the account absent. Two callers racing on the same name
// may both submit; the program rejects the duplicate and both callers end up
// with the same address.
//
// # Getting Started
//
//	client, err := nameservice.NewClient(nameservice.Config{Program: handle, Indexer: indexerClient})
//	if err != nil {
//		return err
//	}
//	tld, err := client.GetOrCreateTLD(ctx, "gum")
//	if err != nil {
//		return err
//	}
//	record, err := client.GetOrCreateNameRecord(ctx, "alice", tld.Address)
package nameservice
