package program

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode"

	bin "github.com/gagliardetto/binary"
)

const DiscriminatorLength = 8

// SnakeCase converts an IDL instruction name (createNameRecord) to the
// snake_case form Anchor hashes (create_name_record).
func SnakeCase(name string) string {
	var builder strings.Builder
	for index, character := range name {
		if unicode.IsUpper(character) {
			if index > 0 {
				builder.WriteByte('_')
			}
			builder.WriteRune(unicode.ToLower(character))
			continue
		}
		builder.WriteRune(character)
	}
	return builder.String()
}

// InstructionDiscriminator returns sha256("global:<snake_name>")[:8].
func InstructionDiscriminator(name string) [DiscriminatorLength]byte {
	return discriminator("global:" + SnakeCase(name))
}

// AccountDiscriminator returns sha256("account:<Name>")[:8].
func AccountDiscriminator(name string) [DiscriminatorLength]byte {
	return discriminator("account:" + name)
}

func discriminator(preimage string) [DiscriminatorLength]byte {
	digest := sha256.Sum256([]byte(preimage))
	var out [DiscriminatorLength]byte
	copy(out[:], digest[:DiscriminatorLength])
	return out
}

// EncodeInstructionData prefixes the borsh encoding of args with the
// instruction discriminator. A nil args value encodes no arguments.
func EncodeInstructionData(name string, args any) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyInstructionName
	}

	prefix := InstructionDiscriminator(name)
	buffer := bytes.NewBuffer(append([]byte{}, prefix[:]...))
	if args == nil {
		return buffer.Bytes(), nil
	}

	if err := bin.NewBorshEncoder(buffer).Encode(args); err != nil {
		return nil, fmt.Errorf("failed to encode %s arguments: %w", name, err)
	}
	return buffer.Bytes(), nil
}

// DecodeAccount checks the account discriminator and borsh-decodes the
// remaining bytes into target.
func DecodeAccount(name string, data []byte, target any) error {
	if len(data) < DiscriminatorLength {
		return ErrAccountDataTooShort
	}

	expected := AccountDiscriminator(name)
	if !bytes.Equal(data[:DiscriminatorLength], expected[:]) {
		return fmt.Errorf("%s: %w", name, ErrAccountDiscriminator)
	}

	if err := bin.NewBorshDecoder(data[DiscriminatorLength:]).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s account: %w", name, err)
	}
	return nil
}

// EncodeAccount is the inverse of DecodeAccount.
func EncodeAccount(name string, account any) ([]byte, error) {
	prefix := AccountDiscriminator(name)
	buffer := bytes.NewBuffer(append([]byte{}, prefix[:]...))
	if err := bin.NewBorshEncoder(buffer).Encode(account); err != nil {
		return nil, fmt.Errorf("failed to encode %s account: %w", name, err)
	}
	return buffer.Bytes(), nil
}
