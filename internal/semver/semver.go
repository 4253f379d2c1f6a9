// Package semver adapts golang.org/x/mod/semver, which requires a
// leading "v", to the bare "major.minor.patch" strings yak.pkg
// manifests and lockfiles use.
package semver

import "golang.org/x/mod/semver"

func normalize(v string) string {
	if len(v) == 0 || v[0] != 'v' {
		return "v" + v
	}
	return v
}

// IsValid reports whether v is a valid semantic version string.
func IsValid(v string) bool {
	return semver.IsValid(normalize(v))
}

// Compare returns -1, 0 or +1 depending on whether a is less than,
// equal to, or greater than b, per semantic-version precedence rules.
func Compare(a, b string) int {
	return semver.Compare(normalize(a), normalize(b))
}

// Max returns the greater of two valid semver strings.
func Max(a, b string) string {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}
