package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/modules"
)

// TestBuildLocalPackageEndToEnd exercises the full pipeline a `yak
// build` invocation drives: reading a local manifest, lowering its
// files to HIR, and pinning its one remote dependency in the lockfile.
func TestBuildLocalPackageEndToEnd(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "yak.pkg", `
package app
version "1.0.0"
description "sample app"
files {
  "main.yak"
}
dependencies {
  mathutils "http://example.com/mathutils"
}
`)
	writeFile(t, dir, "main.yak", `
const GREETING: string = "hi"

fn :main {} =>
  let x: int = 1
`)

	fetcher := &fixtureFetcher{files: map[string]string{
		"http://example.com/mathutils/yak.pkg": `
package mathutils
version "1.0.0"
files {
  "lib.yak"
}
`,
		"http://example.com/mathutils/lib.yak": `const PI: int = 3
`,
	}}
	cache := newMemCache()
	lock, err := modules.LoadLockfile(dir)
	require.NoError(t, err)

	r := modules.NewResolver(fetcher, cache, lock)
	h, err := r.Build(dir)
	require.NoError(t, err)
	require.Len(t, h.Modules, 2)

	entry, ok := lock.GetDependency("mathutils")
	require.True(t, ok)
	require.Equal(t, "1.0.0", entry.Version)
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

type fixtureFetcher struct {
	files map[string]string
}

func (f *fixtureFetcher) Fetch(rawURL string) ([]byte, error) {
	data, ok := f.files[rawURL]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(data), nil
}

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) ResolveSrcPath(p string) (string, error) { return p, nil }
func (c *memCache) Write(p string, data []byte) error {
	c.data[p] = append([]byte(nil), data...)
	return nil
}
func (c *memCache) Read(p string) ([]byte, bool, error) {
	d, ok := c.data[p]
	return d, ok, nil
}
