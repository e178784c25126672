package indexer

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

type testRow struct {
	Address   string `json:"address"`
	Authority string `json:"authority"`
	CreatedAt string `json:"created_at"`
}

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newGraphQLServer(t *testing.T, body string, captured *capturedRequest, headers *http.Header) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		if headers != nil {
			*headers = r.Header.Clone()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestNewClientDefaults(t *testing.T) {
	cases := map[string]string{
		"":         DevnetGraphQLURL,
		"devnet":   DevnetGraphQLURL,
		"mainnet":  MainnetGraphQLURL,
		"localnet": LocalnetGraphQLURL,
	}
	for network, expected := range cases {
		client, err := NewClient(Config{Network: network})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", network, err)
		}
		if client.Endpoint() != expected {
			t.Fatalf("unexpected endpoint for %q: %s", network, client.Endpoint())
		}
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://indexer.example.com/v1/graphql/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Endpoint() != "https://indexer.example.com/v1/graphql" {
		t.Fatalf("unexpected endpoint: %s", client.Endpoint())
	}
}

func TestNewClientRejectsInvalidURL(t *testing.T) {
	for _, baseURL := range []string{"ftp://indexer.example.com", "https://", "://bad"} {
		if _, err := NewClient(Config{BaseURL: baseURL}); err == nil {
			t.Fatalf("expected error for %q", baseURL)
		}
	}
}

func TestNewClientUnsupportedNetwork(t *testing.T) {
	if _, err := NewClient(Config{Network: "badnet"}); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestNewClientDoesNotMutateHTTPClient(t *testing.T) {
	custom := &http.Client{}
	if _, err := NewClient(Config{HTTPClient: custom}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom.Transport != nil {
		t.Fatal("caller http client transport was replaced")
	}
}

func TestQuerySendsVariablesAndHeaders(t *testing.T) {
	var captured capturedRequest
	var headers http.Header
	server := newGraphQLServer(t, `{"data":{"issuer":[{"address":"a1","authority":"auth","created_at":"2023-01-01"}]}}`, &captured, &headers)
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "secret",
		Headers: map[string]string{"X-Hasura-Role": "anonymous"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := Rows[testRow](context.Background(), client, "GetIssuers", "query GetIssuers($authority: String!) { issuer { address } }", "issuer", map[string]any{"authority": "auth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Address != "a1" || rows[0].CreatedAt != "2023-01-01" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if !strings.Contains(captured.Query, "GetIssuers") {
		t.Fatalf("unexpected query: %s", captured.Query)
	}
	if captured.Variables["authority"] != "auth" {
		t.Fatalf("unexpected variables: %v", captured.Variables)
	}
	if headers.Get("Authorization") != "Bearer secret" {
		t.Fatalf("unexpected authorization header %q", headers.Get("Authorization"))
	}
	if headers.Get("X-Hasura-Role") != "anonymous" {
		t.Fatalf("unexpected custom header %q", headers.Get("X-Hasura-Role"))
	}
	if headers.Get("Accept-Encoding") != acceptEncoding {
		t.Fatalf("unexpected accept-encoding %q", headers.Get("Accept-Encoding"))
	}
}

func TestRowsEmptyResult(t *testing.T) {
	server := newGraphQLServer(t, `{"data":{"badge":[]}}`, nil, nil)
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	rows, err := Rows[testRow](context.Background(), client, "GetBadges", "query { badge { address } }", "badge", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestRowsMissingField(t *testing.T) {
	server := newGraphQLServer(t, `{"data":{}}`, nil, nil)
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	rows, err := Rows[testRow](context.Background(), client, "GetBadges", "query { badge { address } }", "badge", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestQueryGraphQLError(t *testing.T) {
	server := newGraphQLServer(t, `{"errors":[{"message":"field \"badge\" not found"}]}`, nil, nil)
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	_, err := Rows[testRow](context.Background(), client, "GetBadges", "query { badge { address } }", "badge", nil)

	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if queryErr.Query != "GetBadges" {
		t.Fatalf("unexpected query name %q", queryErr.Query)
	}
	if !strings.Contains(queryErr.Error(), "not found") {
		t.Fatalf("expected service message in error, got %q", queryErr.Error())
	}
}

func TestQueryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	err := client.Query(context.Background(), "GetTLDs", "query { name_record { address } }", nil, &map[string]any{})

	var queryErr *QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if queryErr.Unwrap() == nil {
		t.Fatal("expected underlying cause")
	}
}

func TestQueryValidation(t *testing.T) {
	client, _ := NewClient(Config{})
	if err := client.Query(context.Background(), "", "query { x }", nil, nil); !errors.Is(err, ErrEmptyQueryName) {
		t.Fatalf("expected ErrEmptyQueryName, got %v", err)
	}
	if err := client.Query(context.Background(), "Name", " ", nil, nil); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestQueryDecodesBrotliResponse(t *testing.T) {
	var compressed bytes.Buffer
	writer := brotli.NewWriter(&compressed)
	if _, err := writer.Write([]byte(`{"data":{"schema":[{"address":"s1"}]}}`)); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close brotli writer: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "br") {
			t.Errorf("client did not advertise brotli: %q", r.Header.Get("Accept-Encoding"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "br")
		_, _ = w.Write(compressed.Bytes())
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	rows, err := Rows[testRow](context.Background(), client, "GetSchemas", "query { schema { address } }", "schema", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Address != "s1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestQueryDecodesGzipResponse(t *testing.T) {
	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	_, _ = writer.Write([]byte(`{"data":{"name_record":[{"address":"n1"},{"address":"n2"}]}}`))
	_ = writer.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(compressed.Bytes())
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	rows, err := Rows[testRow](context.Background(), client, "GetTLDs", "query { name_record { address } }", "name_record", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %+v", rows)
	}
}
