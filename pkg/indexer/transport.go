package indexer

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

const acceptEncoding = "br, gzip"

// decodingTransport asks the indexer for compressed responses and inflates
// brotli or gzip bodies before they reach the GraphQL decoder.
type decodingTransport struct {
	base http.RoundTripper
}

func newDecodingTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &decodingTransport{base: base}
}

func (t *decodingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	if request.Header.Get("Accept-Encoding") == "" {
		request = request.Clone(request.Context())
		request.Header.Set("Accept-Encoding", acceptEncoding)
	}

	response, err := t.base.RoundTrip(request)
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(strings.TrimSpace(response.Header.Get("Content-Encoding")))
	switch encoding {
	case "br":
		response.Body = &decodedBody{Reader: brotli.NewReader(response.Body), source: response.Body}
	case "gzip":
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			response.Body.Close()
			return nil, fmt.Errorf("failed to decode gzip indexer response: %w", err)
		}
		response.Body = &decodedBody{Reader: reader, source: response.Body, closer: reader}
	default:
		return response, nil
	}

	response.Header.Del("Content-Encoding")
	response.Header.Del("Content-Length")
	response.ContentLength = -1
	response.Uncompressed = true
	return response, nil
}

type decodedBody struct {
	io.Reader
	source io.Closer
	closer io.Closer
}

func (b *decodedBody) Close() error {
	if b.closer != nil {
		b.closer.Close()
	}
	return b.source.Close()
}
