package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"github.com/gumhq/gum-sdk-go/pkg/shared"
)

const (
	MainnetGraphQLURL  = "https://graphql.gum.fun/v1/graphql"
	DevnetGraphQLURL   = "https://graphql.devnet.gum.fun/v1/graphql"
	LocalnetGraphQLURL = "http://localhost:8080/v1/graphql"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
	Logger     *zap.Logger
}

type Client struct {
	endpoint string
	graph    *graphql.Client
	apiKey   string
	headers  map[string]string
	logger   *zap.Logger
}

// DefaultURL returns the hosted indexer endpoint for network.
func DefaultURL(network string) (string, error) {
	normalized, err := shared.NormalizeNetwork(network)
	if err != nil {
		return "", err
	}
	switch normalized {
	case shared.NetworkMainnet:
		return MainnetGraphQLURL, nil
	case shared.NetworkLocalnet:
		return LocalnetGraphQLURL, nil
	default:
		return DevnetGraphQLURL, nil
	}
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if endpoint == "" {
		defaultURL, err := DefaultURL(config.Network)
		if err != nil {
			return nil, err
		}
		endpoint = defaultURL
	}

	parsedEndpoint, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid indexer URL: %w", err)
	}
	if parsedEndpoint.Scheme != "http" && parsedEndpoint.Scheme != "https" {
		return nil, fmt.Errorf("invalid indexer URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedEndpoint.Host) == "" {
		return nil, fmt.Errorf("invalid indexer URL: host is required")
	}
	endpoint = strings.TrimRight(parsedEndpoint.String(), "/")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	if config.HTTPClient != nil {
		copied := *config.HTTPClient
		httpClient = &copied
	}
	httpClient.Transport = newDecodingTransport(httpClient.Transport)

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	logger := shared.LoggerOrNop(config.Logger).With(zap.String("indexer", endpoint))
	graph := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	graph.Log = func(message string) {
		logger.Debug(message)
	}

	return &Client{
		endpoint: endpoint,
		graph:    graph,
		apiKey:   strings.TrimSpace(config.APIKey),
		headers:  headers,
		logger:   logger,
	}, nil
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Query runs one named GraphQL document and decodes its data object into
// target. Failures are returned as *QueryError.
func (c *Client) Query(ctx context.Context, name string, query string, variables map[string]any, target any) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyQueryName
	}
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}

	request := graphql.NewRequest(query)
	for key, value := range variables {
		request.Var(key, value)
	}
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	c.logger.Debug("running indexer query", zap.String("query", name))
	if err := c.graph.Run(ctx, request, target); err != nil {
		return &QueryError{Query: name, Cause: err}
	}
	return nil
}

// Rows runs query and returns the rows under field of the data object. Zero
// matching rows yield an empty, non-nil slice.
func Rows[T any](ctx context.Context, c *Client, name string, query string, field string, variables map[string]any) ([]T, error) {
	var data map[string][]T
	if err := c.Query(ctx, name, query, variables, &data); err != nil {
		return nil, err
	}

	rows := data[field]
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
