package sdk

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/badge"
	"github.com/gumhq/gum-sdk-go/pkg/indexer"
	"github.com/gumhq/gum-sdk-go/pkg/nameservice"
	"github.com/gumhq/gum-sdk-go/pkg/program"
	"github.com/gumhq/gum-sdk-go/pkg/shared"
)

const (
	DefaultNameserviceProgramID = "E76rQUHic2ut1pCpbBSw3xNKwoVWZWBZLqS5UJ8XcksT"
	DefaultBadgeProgramID       = "EpnZyjp2x89Rxw1EVACiqfsZDFBUAkKXPgmUGYdiDWZX"
)

type Config struct {
	Network string
	RPCURL  string
	// RPC replaces the JSON-RPC client built from Network and RPCURL.
	RPC   program.RPCClient
	Payer solana.PrivateKey

	NameserviceProgramID solana.PublicKey
	BadgeProgramID       solana.PublicKey

	GraphQLURL     string
	GraphQLAPIKey  string
	GraphQLHeaders map[string]string
	HTTPClient     *http.Client

	Commitment          rpc.CommitmentType
	WaitForConfirmation bool
	PollInterval        time.Duration

	Logger *zap.Logger
}

// SDK is the shared context handed to both facades.
type SDK struct {
	network     string
	rpc         program.RPCClient
	nameservice *nameservice.Client
	badge       *badge.Client
	indexer     *indexer.Client
	logger      *zap.Logger
}

// New creates a new SDK.
func New(config Config) (*SDK, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}
	logger := shared.LoggerOrNop(config.Logger)

	rpcClient := config.RPC
	if rpcClient == nil {
		client, err := shared.NewRPCClient(network, config.RPCURL)
		if err != nil {
			return nil, err
		}
		rpcClient = client
	}

	nameserviceID := config.NameserviceProgramID
	if nameserviceID.IsZero() {
		nameserviceID = solana.MustPublicKeyFromBase58(DefaultNameserviceProgramID)
	}
	badgeID := config.BadgeProgramID
	if badgeID.IsZero() {
		badgeID = solana.MustPublicKeyFromBase58(DefaultBadgeProgramID)
	}

	indexerClient, err := indexer.NewClient(indexer.Config{
		Network:    network,
		BaseURL:    config.GraphQLURL,
		HTTPClient: config.HTTPClient,
		APIKey:     config.GraphQLAPIKey,
		Headers:    config.GraphQLHeaders,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	programConfig := program.Config{
		RPC:                 rpcClient,
		Payer:               config.Payer,
		Commitment:          config.Commitment,
		WaitForConfirmation: config.WaitForConfirmation,
		PollInterval:        config.PollInterval,
		Logger:              logger,
	}

	programConfig.ProgramID = nameserviceID
	nameserviceProgram, err := program.New(programConfig)
	if err != nil {
		return nil, fmt.Errorf("nameservice program: %w", err)
	}
	programConfig.ProgramID = badgeID
	badgeProgram, err := program.New(programConfig)
	if err != nil {
		return nil, fmt.Errorf("badge program: %w", err)
	}

	nameserviceClient, err := nameservice.NewClient(nameservice.Config{
		Program: nameserviceProgram,
		Indexer: indexerClient,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	badgeClient, err := badge.NewClient(badge.Config{
		Program: badgeProgram,
		Indexer: indexerClient,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("sdk initialised",
		zap.String("network", network),
		zap.Stringer("nameservice", nameserviceID),
		zap.Stringer("badge", badgeID),
		zap.String("indexer", indexerClient.Endpoint()),
		zap.Bool("payer", len(config.Payer) != 0),
	)

	return &SDK{
		network:     network,
		rpc:         rpcClient,
		nameservice: nameserviceClient,
		badge:       badgeClient,
		indexer:     indexerClient,
		logger:      logger,
	}, nil
}

// NewFromOperatorConfig creates an SDK from operator settings, parsing the
// keypair and program ID overrides. Submissions wait for confirmation.
func NewFromOperatorConfig(operator shared.OperatorConfig, logger *zap.Logger) (*SDK, error) {
	config := Config{
		Network:       operator.Network,
		RPCURL:        operator.RPCURL,
		GraphQLURL:    operator.GraphQLURL,
		GraphQLAPIKey: operator.GraphQLAPIKey,
		Logger:        logger,

		WaitForConfirmation: true,
	}

	if strings.TrimSpace(operator.PrivateKey) != "" || strings.TrimSpace(operator.KeypairPath) != "" {
		payer, err := operator.Keypair()
		if err != nil {
			return nil, err
		}
		config.Payer = payer
	}

	var err error
	if config.NameserviceProgramID, err = parseProgramID("nameservice", operator.NameserviceProgramID); err != nil {
		return nil, err
	}
	if config.BadgeProgramID, err = parseProgramID("badge", operator.BadgeProgramID); err != nil {
		return nil, err
	}

	return New(config)
}

// NewFromEnv creates an SDK from environment variables and any .env file.
func NewFromEnv(logger *zap.Logger) (*SDK, error) {
	operator, err := shared.OperatorConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewFromOperatorConfig(operator, logger)
}

func parseProgramID(name string, raw string) (solana.PublicKey, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return solana.PublicKey{}, nil
	}
	key, err := solana.PublicKeyFromBase58(trimmed)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s program ID: %w", name, err)
	}
	return key, nil
}

// Network returns the normalized network name.
func (s *SDK) Network() string {
	return s.network
}

// RPC returns the shared RPC client.
func (s *SDK) RPC() program.RPCClient {
	return s.rpc
}

// Nameservice returns the nameservice client.
func (s *SDK) Nameservice() *nameservice.Client {
	return s.nameservice
}

// Badge returns the badge client.
func (s *SDK) Badge() *badge.Client {
	return s.badge
}

// Indexer returns the GraphQL indexer client.
func (s *SDK) Indexer() *indexer.Client {
	return s.indexer
}

// Logger returns the SDK logger.
func (s *SDK) Logger() *zap.Logger {
	return s.logger
}
