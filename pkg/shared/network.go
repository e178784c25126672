package shared

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

const (
	NetworkMainnet  = "mainnet"
	NetworkDevnet   = "devnet"
	NetworkLocalnet = "localnet"
)

const (
	MainnetRPCURL  = "https://api.mainnet-beta.solana.com"
	DevnetRPCURL   = "https://api.devnet.solana.com"
	LocalnetRPCURL = "http://127.0.0.1:8899"
)

// NormalizeNetwork performs the requested operation.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkDevnet, nil
	}

	switch normalized {
	case NetworkMainnet, "mainnet-beta":
		return NetworkMainnet, nil
	case NetworkDevnet, NetworkLocalnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// RPCEndpoint returns the default JSON-RPC endpoint for a network.
func RPCEndpoint(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}

	switch normalized {
	case NetworkMainnet:
		return MainnetRPCURL, nil
	case NetworkLocalnet:
		return LocalnetRPCURL, nil
	default:
		return DevnetRPCURL, nil
	}
}

// NewRPCClient creates a JSON-RPC client. An explicit endpoint wins over the
// network default.
func NewRPCClient(network string, endpoint string) (*rpc.Client, error) {
	resolved := strings.TrimSpace(endpoint)
	if resolved == "" {
		var err error
		resolved, err = RPCEndpoint(network)
		if err != nil {
			return nil, err
		}
	} else if _, err := NormalizeNetwork(network); err != nil {
		return nil, err
	}

	return rpc.New(resolved), nil
}
