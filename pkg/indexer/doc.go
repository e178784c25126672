// Package indexer provides the GraphQL client used by the nameservice and
// badge packages to read indexed program state.
//
// The indexer mirrors on-chain accounts into tables that can be filtered by
// natural keys (domain, authority, issuer, holder). Every query is a fixed
// template with at most one variable; there is no pagination and nothing is
// cached. Responses compressed with brotli or gzip are decoded transparently.
package indexer
