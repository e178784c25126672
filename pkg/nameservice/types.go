package nameservice

import (
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/indexer"
	"github.com/gumhq/gum-sdk-go/pkg/program"
)

const (
	AccountNameRecord = "NameRecord"

	InstructionCreateTLD          = "createTld"
	InstructionCreateNameRecord   = "createNameRecord"
	InstructionTransferNameRecord = "transferNameRecord"

	RoleNameRecord   = "nameRecord"
	RoleDomain       = "domain"
	RoleAuthority    = "authority"
	RoleNewAuthority = "newAuthority"
)

type Config struct {
	Program *program.Program
	Indexer *indexer.Client
	Logger  *zap.Logger
}

// NameRecord is the on-chain name record account.
type NameRecord struct {
	Authority solana.PublicKey
	Domain    solana.PublicKey
	Name      string
}

// IsTLD reports whether the record is a top-level domain.
func (r NameRecord) IsTLD() bool {
	return r.Domain.IsZero()
}

// NameRecordRow is the indexer projection of a name record.
type NameRecordRow struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Authority string `json:"authority"`
	Domain    string `json:"domain"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type createTLDArgs struct {
	TLD string
}

type createNameRecordArgs struct {
	Name string
}
