package address

import (
	"crypto/sha256"
	"fmt"
	"unicode/utf8"

	"github.com/gagliardetto/solana-go"
)

const MaxSeedLength = solana.MaxSeedLength

var (
	PrefixNameRecord = []byte("name_record")
	PrefixBadge      = []byte("badge")
	PrefixIssuer     = []byte("issuer")
	PrefixSchema     = []byte("schema")
)

// Address is a derived program address together with its bump seed.
type Address struct {
	Key  solana.PublicKey
	Bump uint8
}

// String returns the base58 form of the key.
func (a Address) String() string {
	return a.Key.String()
}

// HashSeed returns the SHA-256 digest of the UTF-8 bytes of value. The value
// is hashed as given, without trimming or case folding. Invalid UTF-8 is
// rejected.
func HashSeed(value string) ([32]byte, error) {
	if value == "" {
		return [32]byte{}, ErrEmptySeed
	}
	if !utf8.ValidString(value) {
		return [32]byte{}, ErrInvalidSeedEncoding
	}
	return sha256.Sum256([]byte(value)), nil
}

// Derive finds the program address for [prefix, seeds...] under programID.
func Derive(programID solana.PublicKey, prefix []byte, seeds ...[]byte) (Address, error) {
	if len(prefix) == 0 {
		return Address{}, ErrNoSeeds
	}

	ordered := make([][]byte, 0, len(seeds)+1)
	ordered = append(ordered, prefix)
	ordered = append(ordered, seeds...)
	for index, seed := range ordered {
		if len(seed) > MaxSeedLength {
			return Address{}, fmt.Errorf("seed %d: %w", index, ErrSeedTooLong)
		}
	}

	key, bump, err := solana.FindProgramAddress(ordered, programID)
	if err != nil {
		return Address{}, fmt.Errorf("failed to derive program address: %w", err)
	}
	return Address{Key: key, Bump: bump}, nil
}

// NameRecord derives ["name_record", sha256(name), domain]. A zero domain
// key addresses a top-level domain.
func NameRecord(programID solana.PublicKey, name string, domain solana.PublicKey) (Address, error) {
	digest, err := HashSeed(name)
	if err != nil {
		return Address{}, fmt.Errorf("name: %w", err)
	}
	return Derive(programID, PrefixNameRecord, digest[:], domain.Bytes())
}

// Issuer derives ["issuer", authority].
func Issuer(programID solana.PublicKey, authority solana.PublicKey) (Address, error) {
	return Derive(programID, PrefixIssuer, authority.Bytes())
}

// Schema derives ["schema", salt].
func Schema(programID solana.PublicKey, salt [32]byte) (Address, error) {
	return Derive(programID, PrefixSchema, salt[:])
}

// Badge derives ["badge", issuer, schema, holder]. The triple makes at most
// one badge addressable per issuer, schema and holder.
func Badge(programID, issuer, schema, holder solana.PublicKey) (Address, error) {
	return Derive(programID, PrefixBadge, issuer.Bytes(), schema.Bytes(), holder.Bytes())
}
