package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/hir"
	"compiler/internal/manifest"
)

// fakeFetcher serves fixed bytes for a fixed set of URLs, used so
// resolver tests never touch the network.
type fakeFetcher struct {
	files map[string][]byte
}

func (f *fakeFetcher) Fetch(rawURL string) ([]byte, error) {
	data, ok := f.files[rawURL]
	if !ok {
		return nil, &ResolutionError{Msg: "no such fixture url: " + rawURL}
	}
	return data, nil
}

// memCache is an in-memory Cache, keyed by normalized path.
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

func TestNormalizeURLPath(t *testing.T) {
	p, err := NormalizeURLPath("https://example.com/pkg/yak.pkg")
	require.NoError(t, err)
	require.Equal(t, "example.com/pkg/yak.pkg", p)

	_, err = NormalizeURLPath("ftp://example.com/x")
	require.Error(t, err)
}

func TestGetFetchesManifestAndFiles(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"http://example.com/mathutils/yak.pkg": []byte(
			"package mathutils\nversion \"1.0.0\"\nfiles {\n  \"lib.yak\"\n}\n"),
		"http://example.com/mathutils/lib.yak": []byte("const PI: int = 3\n"),
	}}
	cache := newMemCache()
	r := NewResolver(fetcher, cache, nil)

	err := r.Get("http://example.com/mathutils")
	require.NoError(t, err)

	_, ok, _ := cache.Read("example.com/mathutils/yak.pkg")
	require.True(t, ok)
	_, ok, _ = cache.Read("example.com/mathutils/lib.yak")
	require.True(t, ok)
}

func TestResolveRemoteDependencyPinsManifestVersionInLockfile(t *testing.T) {
	fetcher := &fakeFetcher{files: map[string][]byte{
		"http://example.com/mathutils/yak.pkg": []byte(
			"package mathutils\nversion \"2.0.0\"\nfiles {\n}\n"),
	}}
	cache := newMemCache()
	lock, _ := LoadLockfile(t.TempDir())
	r := NewResolver(fetcher, cache, lock)

	dep := manifest.Dependency{PackageID: "mathutils", Path: "http://example.com/mathutils"}
	err := r.resolveDependency(dep, "", "root", &hir.Hir{})
	require.NoError(t, err)

	entry, ok := lock.GetDependency("mathutils")
	require.True(t, ok)
	require.Equal(t, "2.0.0", entry.Version)
}

func TestResolveLocalDependencyReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	depDir := filepath.Join(dir, "vendor", "mathutils")
	require.NoError(t, os.MkdirAll(depDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(depDir, "yak.pkg"),
		[]byte("package mathutils\nversion \"1.0.0\"\nfiles {\n  \"lib.yak\"\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(depDir, "lib.yak"),
		[]byte("const PI: int = 3\n"), 0o644))

	lock, _ := LoadLockfile(t.TempDir())
	r := NewResolver(&fakeFetcher{}, newMemCache(), lock)

	dep := manifest.Dependency{PackageID: "mathutils", Path: "vendor/mathutils"}
	h := &hir.Hir{}
	err := r.resolveDependency(dep, dir, "root", h)
	require.NoError(t, err)
	require.Len(t, h.Modules, 1)

	entry, ok := lock.GetDependency("mathutils")
	require.True(t, ok)
	require.Equal(t, "1.0.0", entry.Version)
}
