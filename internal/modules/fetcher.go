package modules

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var colorWriter io.Writer = os.Stderr

// HTTPFetcher retrieves a single file over http(s), the transport the
// resolver uses to walk a remote dependency graph one manifest or
// source file at a time — never a versioned release archive.
type HTTPFetcher struct {
	Client *http.Client
	Quiet  bool
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: 30 * time.Second}}
}

func (f *HTTPFetcher) Fetch(rawURL string) ([]byte, error) {
	if !f.Quiet {
		color.New(color.FgBlue).Fprintf(colorWriter, "fetching %s\n", rawURL)
	}

	resp, err := f.Client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", rawURL, err)
	}
	return data, nil
}
