package modules

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher is the injected capability for retrieving one file's bytes
// over a remote transport. Production code uses HTTPFetcher; tests
// substitute an in-memory map.
type Fetcher interface {
	Fetch(rawURL string) ([]byte, error)
}

// Cache is the injected capability for the on-disk package cache: a
// normalized-URL-path-keyed store of previously resolved files.
type Cache interface {
	ResolveSrcPath(normalizedPath string) (string, error)
	Write(normalizedPath string, data []byte) error
	Read(normalizedPath string) ([]byte, bool, error)
}

// NormalizeURLPath turns a remote URL into the relative path its
// fetched bytes are cached under: scheme stripped, host and path kept
// verbatim, so "https://example.com/pkg/yak.pkg" caches at
// "example.com/pkg/yak.pkg".
func NormalizeURLPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid module URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("module URL %q must be http(s)", rawURL)
	}
	return filepath.Join(u.Host, filepath.FromSlash(u.Path)), nil
}

// DiskCache is the on-disk package cache rooted at
// $HOME_override/v<version>/{bin,pkg,src}, matching the original
// YakHome layout. An empty or "0.0.0" Version puts {bin,pkg,src}
// directly under Root, with no version directory.
type DiskCache struct {
	Root    string // e.g. $HOME/.yak
	Version string // e.g. "0.0.0"
}

func (d *DiskCache) srcDir() string {
	if d.Version == "" || d.Version == "0.0.0" {
		return filepath.Join(d.Root, "src")
	}
	return filepath.Join(d.Root, "v"+strings.TrimPrefix(d.Version, "v"), "src")
}

// EnsureDirs creates the bin/pkg/src tree under the active version
// root, mirroring YakHome::create_home_dir.
func (d *DiskCache) EnsureDirs() error {
	base := filepath.Dir(d.srcDir())
	for _, sub := range []string{"bin", "pkg", "src"} {
		if err := os.MkdirAll(filepath.Join(base, sub), 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory %s: %w", sub, err)
		}
	}
	return nil
}

func (d *DiskCache) ResolveSrcPath(normalizedPath string) (string, error) {
	return filepath.Join(d.srcDir(), normalizedPath), nil
}

func (d *DiskCache) Write(normalizedPath string, data []byte) error {
	full, err := d.ResolveSrcPath(normalizedPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory for %s: %w", normalizedPath, err)
	}
	return os.WriteFile(full, data, 0o644)
}

func (d *DiskCache) Read(normalizedPath string) ([]byte, bool, error) {
	full, err := d.ResolveSrcPath(normalizedPath)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
