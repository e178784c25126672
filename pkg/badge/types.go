package badge

import (
	"io"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/indexer"
	"github.com/gumhq/gum-sdk-go/pkg/program"
)

const (
	AccountIssuer = "Issuer"
	AccountSchema = "Schema"
	AccountBadge  = "Badge"

	InstructionCreateIssuer = "createIssuer"
	InstructionVerifyIssuer = "verifyIssuer"
	InstructionDeleteIssuer = "deleteIssuer"
	InstructionCreateSchema = "createSchema"
	InstructionUpdateSchema = "updateSchema"
	InstructionDeleteSchema = "deleteSchema"
	InstructionCreateBadge  = "createBadge"
	InstructionUpdateBadge  = "updateBadge"
	InstructionBurnBadge    = "burnBadge"

	RoleIssuer          = "issuer"
	RoleSchema          = "schema"
	RoleBadge           = "badge"
	RoleHolder          = "holder"
	RoleUpdateAuthority = "updateAuthority"
	RoleAuthority       = "authority"
	RoleSigner          = "signer"
)

type Config struct {
	Program *program.Program
	Indexer *indexer.Client
	Logger  *zap.Logger

	// SaltSource supplies schema salts. Defaults to crypto/rand.
	SaltSource io.Reader
}

// Issuer is the on-chain issuer account.
type Issuer struct {
	Authority solana.PublicKey
	Verified  bool
}

// Schema is the on-chain badge schema account.
type Schema struct {
	Authority   solana.PublicKey
	MetadataURI string
	RandomHash  [32]byte
}

// Badge is the on-chain badge account.
type Badge struct {
	Issuer          solana.PublicKey
	Holder          solana.PublicKey
	UpdateAuthority solana.PublicKey
	Schema          solana.PublicKey
	MetadataURI     string
}

type IssuerRow struct {
	Address   string `json:"address"`
	Authority string `json:"authority"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type SchemaRow struct {
	Address     string `json:"address"`
	Authority   string `json:"authority"`
	MetadataURI string `json:"metadata_uri"`
	RandomHash  string `json:"random_hash"`
	CreatedAt   string `json:"created_at"`
}

type BadgeRow struct {
	Address         string `json:"address"`
	Issuer          string `json:"issuer"`
	Holder          string `json:"holder"`
	UpdateAuthority string `json:"update_authority"`
	Schema          string `json:"schema"`
	MetadataURI     string `json:"metadata_uri"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// CreateBadgeOptions describes a badge award. UpdateAuthority defaults to
// the payer.
type CreateBadgeOptions struct {
	Schema          solana.PublicKey
	Holder          solana.PublicKey
	UpdateAuthority solana.PublicKey
	MetadataURI     string
}

type createSchemaArgs struct {
	MetadataURI string
	RandomHash  [32]byte
}

type metadataArgs struct {
	MetadataURI string
}
