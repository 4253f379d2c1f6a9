package modules

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LockEntry pins one resolved dependency's version and the set of
// packages that depend on it, for diamond-dependency bookkeeping.
type LockEntry struct {
	Version string   `yaml:"version"`
	Direct  bool     `yaml:"direct"`
	UsedBy  []string `yaml:"usedBy"`
}

// Lockfile is the resolver's on-disk dependency pin set, serialized as
// YAML rather than the teacher's JSON so it reads like a hand-editable
// Cargo.lock-adjacent sidecar.
type Lockfile struct {
	projectRoot  string
	Version      string               `yaml:"version"`
	Dependencies map[string]LockEntry `yaml:"dependencies"`
}

const lockfileName = "yak.lock"

func lockfilePath(projectRoot string) string {
	return filepath.Join(projectRoot, lockfileName)
}

// LoadLockfile reads the lockfile in projectRoot, returning a fresh
// empty one if it doesn't exist yet.
func LoadLockfile(projectRoot string) (*Lockfile, error) {
	lf := &Lockfile{projectRoot: projectRoot, Version: "1", Dependencies: map[string]LockEntry{}}

	data, err := os.ReadFile(lockfilePath(projectRoot))
	if os.IsNotExist(err) {
		return lf, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, err
	}
	if lf.Dependencies == nil {
		lf.Dependencies = map[string]LockEntry{}
	}
	return lf, nil
}

// Save writes the lockfile back out, sorted by package id so diffs stay
// small across runs (yaml.v3 emits map keys in sorted order).
func (lf *Lockfile) Save() error {
	data, err := yaml.Marshal(lf)
	if err != nil {
		return err
	}
	return os.WriteFile(lockfilePath(lf.projectRoot), data, 0o644)
}

// SetDependency records (or updates) a resolved dependency's pinned
// version and adds usedBy to its user set.
func (lf *Lockfile) SetDependency(packageID, version string, direct bool, usedBy string) {
	entry, ok := lf.Dependencies[packageID]
	if !ok {
		entry = LockEntry{Version: version, Direct: direct}
	}
	entry.Version = version
	entry.Direct = entry.Direct || direct
	if usedBy != "" && !containsString(entry.UsedBy, usedBy) {
		entry.UsedBy = append(entry.UsedBy, usedBy)
	}
	lf.Dependencies[packageID] = entry
}

func (lf *Lockfile) GetDependency(packageID string) (LockEntry, bool) {
	e, ok := lf.Dependencies[packageID]
	return e, ok
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
