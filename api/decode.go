package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"launch-browser/launch"

	"github.com/andybalholm/brotli"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

// readBody reads the whole response body, undoing the content encoding.
// Only gzip and br are advertised, so anything else is an error.
func readBody(res *http.Response) ([]byte, error) {
	encoding := strings.ToLower(strings.TrimSpace(res.Header.Get("Content-Encoding")))

	switch encoding {
	case "", "identity":
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return data, nil
	case "gzip":
		gzipReader, err := gzip.NewReader(res.Body)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzipReader.Close()

		data, err := io.ReadAll(gzipReader)
		if err != nil {
			return nil, fmt.Errorf("reading gzip content: %w", err)
		}
		return data, nil
	case "br":
		data, err := io.ReadAll(brotli.NewReader(res.Body))
		if err != nil {
			return nil, fmt.Errorf("reading brotli content: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// decodeLaunches parses a JSON array of launches. Bodies that are not an
// array, or whose records do not match the launch shape, are reported as
// ErrMalformedResponse together with their detected content type.
func decodeLaunches(data []byte) ([]launch.Launch, error) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrMalformedResponse, mimetype.Detect(trimmed).String())
	}

	launches := []launch.Launch{}
	if err := json.Unmarshal(trimmed, &launches); err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrMalformedResponse, mimetype.Detect(trimmed).String(), err)
	}
	return launches, nil
}
