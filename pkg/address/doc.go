// Package address derives the program-owned addresses (PDAs) used by the Gum
// programs. Every address is a pure function of an ordered seed list and a
// program ID:
//
//	[prefix, seed...] + programID -> solana.FindProgramAddress
//
// String seeds (names, domains) are replaced by their SHA-256 digest before
// derivation so arbitrary-length names fit the 32-byte seed limit. The seed
// order, prefix bytes and hash algorithm are part of the on-chain contract;
// changing any of them produces a different, non-interoperable address space.
package address
