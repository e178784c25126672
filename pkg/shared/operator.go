package shared

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
)

type OperatorConfig struct {
	Network     string
	RPCURL      string
	PrivateKey  string
	KeypairPath string

	GraphQLURL    string
	GraphQLAPIKey string

	NameserviceProgramID string
	BadgeProgramID       string
}

var dotenvLoadOnce sync.Once

// OperatorConfigFromEnv performs the requested operation.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("SOLANA_NETWORK", "SOLANA_CLUSTER", "NETWORK")
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return OperatorConfig{}, err
	}

	config := OperatorConfig{
		Network:              normalized,
		RPCURL:               firstNonEmptyEnv("SOLANA_RPC_URL", "RPC_URL"),
		PrivateKey:           firstNonEmptyEnv("SOLANA_PRIVATE_KEY", "PRIVATE_KEY"),
		KeypairPath:          firstNonEmptyEnv("SOLANA_KEYPAIR_PATH", "KEYPAIR_PATH"),
		GraphQLURL:           firstNonEmptyEnv("GUM_GRAPHQL_URL"),
		GraphQLAPIKey:        firstNonEmptyEnv("GUM_GRAPHQL_API_KEY"),
		NameserviceProgramID: firstNonEmptyEnv("GUM_NAMESERVICE_PROGRAM_ID"),
		BadgeProgramID:       firstNonEmptyEnv("GUM_BADGE_PROGRAM_ID"),
	}

	scope := strings.ToUpper(normalized)
	if scoped := firstNonEmptyEnv(scope+"_SOLANA_RPC_URL", scope+"_RPC_URL"); scoped != "" {
		config.RPCURL = scoped
	}
	if scoped := firstNonEmptyEnv(scope+"_SOLANA_PRIVATE_KEY", scope+"_PRIVATE_KEY"); scoped != "" {
		config.PrivateKey = scoped
	}
	if scoped := firstNonEmptyEnv(scope+"_SOLANA_KEYPAIR_PATH", scope+"_KEYPAIR_PATH"); scoped != "" {
		config.KeypairPath = scoped
	}
	if scoped := firstNonEmptyEnv(scope + "_GUM_GRAPHQL_URL"); scoped != "" {
		config.GraphQLURL = scoped
	}

	if config.PrivateKey == "" && config.KeypairPath == "" {
		return OperatorConfig{}, fmt.Errorf("SOLANA_PRIVATE_KEY or SOLANA_KEYPAIR_PATH is required")
	}

	return config, nil
}

// Keypair resolves the operator signing key from the inline key or the
// keypair file, in that order.
func (config OperatorConfig) Keypair() (solana.PrivateKey, error) {
	if strings.TrimSpace(config.PrivateKey) != "" {
		return ParsePrivateKey(config.PrivateKey)
	}
	if strings.TrimSpace(config.KeypairPath) != "" {
		return LoadKeypairFile(config.KeypairPath)
	}
	return nil, fmt.Errorf("operator private key is required")
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		startPaths := make([]string, 0, 2)

		if cwd, err := os.Getwd(); err == nil {
			startPaths = append(startPaths, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			startPaths = append(startPaths, filepath.Dir(currentFile))
		}

		seen := make(map[string]struct{})
		for _, start := range startPaths {
			for current := start; ; {
				candidate := filepath.Join(current, ".env")
				if _, visited := seen[candidate]; !visited {
					seen[candidate] = struct{}{}
					if _, statErr := os.Stat(candidate); statErr == nil {
						loadDotEnvFile(candidate)
						return
					}
				}

				parent := filepath.Dir(current)
				if parent == current {
					break
				}
				current = parent
			}
		}
	})
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func parseDotEnvLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !isValidEnvKey(key) {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses a base58 secret key or a JSON byte array as written
// by solana-keygen.
func ParsePrivateKey(raw string) (solana.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}

	var key solana.PrivateKey
	if strings.HasPrefix(candidate, "[") {
		var bytes []byte
		if err := json.Unmarshal([]byte(candidate), &bytes); err != nil {
			return nil, fmt.Errorf("failed to parse private key byte array: %w", err)
		}
		key = solana.PrivateKey(bytes)
	} else {
		decoded, err := solana.PrivateKeyFromBase58(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key as base58: %w", err)
		}
		key = decoded
	}

	if len(key) != 64 {
		return nil, fmt.Errorf("private key must be 64 bytes, got %d", len(key))
	}
	return key, nil
}

// LoadKeypairFile reads a solana-keygen JSON keypair file.
func LoadKeypairFile(path string) (solana.PrivateKey, error) {
	content, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}
	return ParsePrivateKey(string(content))
}
