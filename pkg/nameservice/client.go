package nameservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/address"
	"github.com/gumhq/gum-sdk-go/pkg/indexer"
	"github.com/gumhq/gum-sdk-go/pkg/program"
)

type Client struct {
	program *program.Program
	indexer *indexer.Client
	logger  *zap.Logger
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	if config.Program == nil {
		return nil, ErrMissingProgram
	}

	logger := config.Logger
	if logger == nil {
		logger = config.Program.Logger()
	}

	return &Client{
		program: config.Program,
		indexer: config.Indexer,
		logger:  logger.Named("nameservice"),
	}, nil
}

// Program returns the nameservice program handle.
func (c *Client) Program() *program.Program {
	return c.program
}

// DeriveNameRecordAddress derives the address of name under domain.
func (c *Client) DeriveNameRecordAddress(name string, domain solana.PublicKey) (address.Address, error) {
	if err := ValidateName(name); err != nil {
		return address.Address{}, err
	}
	return address.NameRecord(c.program.ID(), name, domain)
}

// DeriveTLDAddress derives the address of a top-level domain.
func (c *Client) DeriveTLDAddress(tld string) (address.Address, error) {
	return c.DeriveNameRecordAddress(tld, solana.PublicKey{})
}

// DeriveFullNameAddress derives the address of a dotted name such as
// "alice.gum", resolving labels from the TLD inwards.
func (c *Client) DeriveFullNameAddress(fullName string) (address.Address, error) {
	return FullNameAddress(c.program.ID(), fullName)
}

// FullNameAddress derives the address of a dotted name under programID
// without a client.
func FullNameAddress(programID solana.PublicKey, fullName string) (address.Address, error) {
	labels, err := SplitFullName(fullName)
	if err != nil {
		return address.Address{}, err
	}

	var derived address.Address
	domain := solana.PublicKey{}
	for index := len(labels) - 1; index >= 0; index-- {
		derived, err = address.NameRecord(programID, labels[index], domain)
		if err != nil {
			return address.Address{}, err
		}
		domain = derived.Key
	}
	return derived, nil
}

// CreateTLD submits a createTld request.
func (c *Client) CreateTLD(ctx context.Context, tld string) (program.OperationResult, error) {
	builder, err := c.CreateTLDBuilder(tld)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleNameRecord)
}

// CreateNameRecord submits a createNameRecord request.
func (c *Client) CreateNameRecord(ctx context.Context, name string, domain solana.PublicKey) (program.OperationResult, error) {
	builder, err := c.CreateNameRecordBuilder(name, domain)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleNameRecord)
}

// TransferNameRecord submits a transferNameRecord request.
func (c *Client) TransferNameRecord(ctx context.Context, nameRecord solana.PublicKey, newAuthority solana.PublicKey) (program.OperationResult, error) {
	builder, err := c.TransferNameRecordBuilder(nameRecord, newAuthority)
	if err != nil {
		return program.OperationResult{}, err
	}
	return builder.Execute(ctx, RoleNameRecord)
}

// GetOrCreateTLD returns the TLD address, creating the record when absent.
func (c *Client) GetOrCreateTLD(ctx context.Context, tld string) (program.Ensured, error) {
	derived, err := c.DeriveTLDAddress(tld)
	if err != nil {
		return program.Ensured{}, err
	}
	c.logger.Debug("ensuring tld", zap.String("tld", tld))
	return program.GetOrCreate(ctx, c.program, derived.Key, func() (*program.Builder, error) {
		return c.CreateTLDBuilder(tld)
	})
}

// GetOrCreateNameRecord returns the address of name under domain, creating
// the record when absent.
func (c *Client) GetOrCreateNameRecord(ctx context.Context, name string, domain solana.PublicKey) (program.Ensured, error) {
	derived, err := c.DeriveNameRecordAddress(name, domain)
	if err != nil {
		return program.Ensured{}, err
	}
	c.logger.Debug("ensuring name record", zap.String("name", name), zap.Stringer("domain", domain))
	return program.GetOrCreate(ctx, c.program, derived.Key, func() (*program.Builder, error) {
		return c.CreateNameRecordBuilder(name, domain)
	})
}

// LookupNameRecord fetches the record at nameRecord.
func (c *Client) LookupNameRecord(ctx context.Context, nameRecord solana.PublicKey) (program.Lookup[NameRecord], error) {
	return program.Fetch[NameRecord](ctx, c.program, AccountNameRecord, nameRecord)
}

// GetNameRecord fetches the record at nameRecord, returning
// ErrNameRecordNotFound when it does not exist.
func (c *Client) GetNameRecord(ctx context.Context, nameRecord solana.PublicKey) (NameRecord, error) {
	lookup, err := c.LookupNameRecord(ctx, nameRecord)
	if err != nil {
		return NameRecord{}, err
	}
	if !lookup.Found() {
		return NameRecord{}, fmt.Errorf("%s: %w", nameRecord, ErrNameRecordNotFound)
	}
	return lookup.Account, nil
}

// ResolveFullName derives and fetches a dotted name.
func (c *Client) ResolveFullName(ctx context.Context, fullName string) (solana.PublicKey, NameRecord, error) {
	derived, err := c.DeriveFullNameAddress(fullName)
	if err != nil {
		return solana.PublicKey{}, NameRecord{}, err
	}
	record, err := c.GetNameRecord(ctx, derived.Key)
	if err != nil {
		if errors.Is(err, ErrNameRecordNotFound) {
			return derived.Key, NameRecord{}, fmt.Errorf("%s: %w", fullName, ErrNameRecordNotFound)
		}
		return solana.PublicKey{}, NameRecord{}, err
	}
	return derived.Key, record, nil
}
