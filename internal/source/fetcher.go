// Package source reads the reference tables from disk, over HTTP or from
// the database and installs them as the current dataset.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/alexivanou/carryon-checker/internal/seeder"
)

// ErrNotFound is returned when a table does not exist at the source
var ErrNotFound = errors.New("table not found")

// Fetcher returns the raw content of a named table
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileFetcher reads tables from a data directory or its zip bundle
type FileFetcher struct {
	parser *seeder.Parser
}

// NewFileFetcher creates a fetcher for dataDir
func NewFileFetcher(dataDir string) *FileFetcher {
	return &FileFetcher{parser: seeder.NewParser(dataDir)}
}

func (f *FileFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := f.parser.ReadTable(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}

// HTTPFetcher downloads tables relative to a base URL
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher for baseURL. A nil client uses http.DefaultClient.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := f.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", name, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
