// Package version models CPython and tool release versions and reconciles release catalogues.
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// semverPattern is the strict X.Y.Z shape accepted for user supplied versions.
var semverPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// minorKeyPattern is the "major.minor" shape used to key catalogues.
var minorKeyPattern = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// SemanticVersion is an immutable major.minor.patch triple.
type SemanticVersion struct {
	Major int
	Minor int
	Patch int
}

// New constructs a SemanticVersion, rejecting negative components.
func New(major, minor, patch int) (SemanticVersion, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return SemanticVersion{}, fmt.Errorf("%w: %d.%d.%d has a negative component", ErrInvalidVersion, major, minor, patch)
	}

	return SemanticVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// FromTokens constructs a SemanticVersion from three decimal tokens.
func FromTokens(major, minor, patch string) (SemanticVersion, error) {
	var parts [3]int

	for i, token := range []string{major, minor, patch} {
		n, err := parseComponent(token)
		if err != nil {
			return SemanticVersion{}, err
		}
		parts[i] = n
	}

	return New(parts[0], parts[1], parts[2])
}

// Parse reads a strict "X.Y.Z" string.
func Parse(s string) (SemanticVersion, error) {
	match := semverPattern.FindStringSubmatch(s)
	if match == nil {
		return SemanticVersion{}, fmt.Errorf("%w: %q, expected format X.Y.Z", ErrInvalidVersion, s)
	}

	return FromTokens(match[1], match[2], match[3])
}

// ParseMinorKey reads a "major.minor" catalogue key. The returned patch is always zero.
func ParseMinorKey(key string) (SemanticVersion, error) {
	match := minorKeyPattern.FindStringSubmatch(key)
	if match == nil {
		return SemanticVersion{}, fmt.Errorf("%w: minor version key %q, expected format X.Y", ErrInvalidVersion, key)
	}

	return FromTokens(match[1], match[2], "0")
}

func parseComponent(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 || token == "" || token[0] == '+' || token[0] == '-' {
		return 0, fmt.Errorf("%w: component %q is not a non-negative integer", ErrInvalidVersion, token)
	}

	return n, nil
}

// String renders the version as "major.minor.patch".
func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MinorVersion renders the grouping key "major.minor".
func (v SemanticVersion) MinorVersion() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// NextMinor bumps the minor component and keeps the patch as is.
func (v SemanticVersion) NextMinor() SemanticVersion {
	return SemanticVersion{Major: v.Major, Minor: v.Minor + 1, Patch: v.Patch}
}
