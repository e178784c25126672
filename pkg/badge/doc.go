// Package badge is the client for the Gum badge program, which manages
// issuers, badge schemas and the badges issuers award to holders.
//
// Addresses are program addresses derived from fixed seed layouts:
//
//	issuer: ["issuer", authority]
//	schema: ["schema", random_hash]
//	badge:  ["badge", issuer, schema, holder]
//
// A schema's random_hash is a fresh 32-byte salt, so two schemas with the same
// metadata URI still get distinct addresses. Use CreateSchemaBuilder to learn
// the schema address before submitting. A badge address is fixed by its
// issuer, schema and holder, so each holder can hold at most one badge per
// issuer and schema.
//
// Metadata URIs are checked before a create or update request is built: the
// URI must be absolute, name a location and carry no surrounding whitespace.
// The program itself stores any string, so a record written by another
// client may hold a URI this package would refuse to submit.
//
// Issuer verification is performed by a privileged signer configured on the
// program; VerifyIssuer only submits the request.
package badge
