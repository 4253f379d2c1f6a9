// Package modules resolves a package's dependency graph: walking from
// a root yak.pkg manifest, fetching or loading each dependency exactly
// once through injected Fetcher/Cache capabilities, and lowering every
// reached package into one merged Hir.
package modules

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"compiler/internal/hir"
	"compiler/internal/manifest"
	"compiler/internal/parser"
)

const manifestFile = "yak.pkg"

// ResolutionError reports a dependency the resolver could not place: a
// remote manifest or source file that was fetched but is not found in
// the cache when it is read back for lowering.
type ResolutionError struct {
	Msg string
}

func (e *ResolutionError) Error() string { return e.Msg }

// Resolver walks a package's dependency graph using the two injected
// capabilities instead of talking to the network or filesystem
// directly, so tests can swap in fakes for both.
type Resolver struct {
	Fetcher Fetcher
	Cache   Cache
	Lock    *Lockfile

	visited map[string]bool
}

func NewResolver(fetcher Fetcher, cache Cache, lock *Lockfile) *Resolver {
	return &Resolver{Fetcher: fetcher, Cache: cache, Lock: lock, visited: map[string]bool{}}
}

// Build resolves and lowers the local package rooted at dir (which
// must contain a yak.pkg manifest), recursively pulling in every
// dependency it declares, remote or local, and returns one merged Hir.
func (r *Resolver) Build(dir string) (*hir.Hir, error) {
	manifestPath := filepath.Join(dir, manifestFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}
	m, err := manifest.Parse(manifestPath, string(data))
	if err != nil {
		return nil, err
	}
	m.IsRoot = true

	h := &hir.Hir{}
	if err := r.lowerLocalFiles(dir, m, h); err != nil {
		return nil, err
	}
	for _, dep := range m.Deps {
		if err := r.resolveDependency(dep, dir, m.PackageID, h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Get fetches a remote package's manifest and every file it lists into
// the cache, recursively fetching its own dependencies, without
// lowering anything — the `get` CLI verb populates the cache ahead of
// a later `build`.
func (r *Resolver) Get(rawURL string) error {
	manifestURL := withManifestSuffix(rawURL)
	normalized, err := NormalizeURLPath(manifestURL)
	if err != nil {
		return err
	}

	if r.visited[normalized] {
		return nil
	}
	r.visited[normalized] = true

	data, err := r.Fetcher.Fetch(manifestURL)
	if err != nil {
		return err
	}
	if err := r.Cache.Write(normalized, data); err != nil {
		return err
	}

	m, err := manifest.Parse(manifestURL, string(data))
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(manifestURL, manifestFile)
	baseNormalized := strings.TrimSuffix(normalized, manifestFile)
	for _, f := range m.Files {
		fileURL := base + f
		fileData, err := r.Fetcher.Fetch(fileURL)
		if err != nil {
			return err
		}
		if err := r.Cache.Write(path.Join(baseNormalized, f), fileData); err != nil {
			return err
		}
	}

	for _, dep := range m.Deps {
		if !isRemotePath(dep.Path) {
			continue
		}
		if err := r.Get(dep.Path); err != nil {
			return err
		}
	}
	return nil
}

// isRemotePath reports whether a dependency's declared path is an
// http(s) URL rather than a relative filesystem location.
func isRemotePath(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// resolveDependency places dep (remote or local, per §4.6: "dependencies
// with remote paths are delegated to get first, then all dependencies
// (remote or local) are built with pkg_root = false"), lowers its files
// into h, and recurses into its own dependencies, tolerating diamond
// re-visits via r.visited. baseDir is the filesystem directory a local
// dep's relative path is resolved against — the referencing manifest's
// own directory, or the cache directory a remote manifest was fetched
// into when recursing through one of its local-path dependencies.
func (r *Resolver) resolveDependency(dep manifest.Dependency, baseDir, usedBy string, h *hir.Hir) error {
	if isRemotePath(dep.Path) {
		return r.resolveRemoteDependency(dep, usedBy, h)
	}
	return r.resolveLocalDependency(dep, baseDir, usedBy, h)
}

func (r *Resolver) resolveRemoteDependency(dep manifest.Dependency, usedBy string, h *hir.Hir) error {
	key := "remote:" + dep.Path
	if r.visited[key] {
		return nil
	}
	r.visited[key] = true

	if err := r.Get(dep.Path); err != nil {
		return err
	}

	manifestURL := withManifestSuffix(dep.Path)
	normalized, err := NormalizeURLPath(manifestURL)
	if err != nil {
		return err
	}
	data, ok, err := r.Cache.Read(normalized)
	if err != nil {
		return err
	}
	if !ok {
		return &ResolutionError{Msg: fmt.Sprintf("dependency %s was fetched but is missing from the cache", dep.Path)}
	}
	m, err := manifest.Parse(manifestURL, string(data))
	if err != nil {
		return err
	}
	m.SourceURL = manifestURL

	if r.Lock != nil {
		r.Lock.SetDependency(dep.PackageID, m.Version, usedBy == "", usedBy)
	}

	baseNormalized := strings.TrimSuffix(normalized, manifestFile)
	if err := r.lowerCachedFiles(baseNormalized, m, h); err != nil {
		return err
	}

	depBase, err := r.Cache.ResolveSrcPath(baseNormalized)
	if err != nil {
		return err
	}
	for _, sub := range m.Deps {
		if err := r.resolveDependency(sub, depBase, dep.PackageID, h); err != nil {
			return err
		}
	}
	return nil
}

// resolveLocalDependency reads a relative-path dependency directly off
// the filesystem: local dependencies are built, not fetched or cached.
func (r *Resolver) resolveLocalDependency(dep manifest.Dependency, baseDir, usedBy string, h *hir.Hir) error {
	depDir := filepath.Join(baseDir, dep.Path)
	key := "local:" + depDir
	if r.visited[key] {
		return nil
	}
	r.visited[key] = true

	manifestPath := filepath.Join(depDir, manifestFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}
	m, err := manifest.Parse(manifestPath, string(data))
	if err != nil {
		return err
	}

	if r.Lock != nil {
		r.Lock.SetDependency(dep.PackageID, m.Version, usedBy == "", usedBy)
	}

	if err := r.lowerLocalFiles(depDir, m, h); err != nil {
		return err
	}

	for _, sub := range m.Deps {
		if err := r.resolveDependency(sub, depDir, dep.PackageID, h); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) lowerLocalFiles(dir string, m *manifest.Manifest, h *hir.Hir) error {
	for _, f := range m.Files {
		data, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			return fmt.Errorf("failed to read source file %s: %w", f, err)
		}
		if err := lowerOneFile(f, string(data), m.PackageID, h); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) lowerCachedFiles(baseNormalized string, m *manifest.Manifest, h *hir.Hir) error {
	for _, f := range m.Files {
		data, ok, err := r.Cache.Read(path.Join(baseNormalized, f))
		if err != nil {
			return err
		}
		if !ok {
			return &ResolutionError{Msg: fmt.Sprintf("cached source file missing: %s", f)}
		}
		if err := lowerOneFile(f, string(data), m.PackageID, h); err != nil {
			return err
		}
	}
	return nil
}

func lowerOneFile(name, src, pkgID string, h *hir.Hir) error {
	file, err := parser.ParseFile(name, src)
	if err != nil {
		return err
	}
	mod, err := hir.FromFile(pkgID, file)
	if err != nil {
		return err
	}
	h.Merge(mod)
	return nil
}

func withManifestSuffix(rawURL string) string {
	if strings.HasSuffix(rawURL, manifestFile) {
		return rawURL
	}
	return strings.TrimSuffix(rawURL, "/") + "/" + manifestFile
}
