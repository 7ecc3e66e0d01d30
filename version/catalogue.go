package version

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Catalogue maps a minor version key ("3.12") to the latest known patch of that minor version.
type Catalogue map[string]SemanticVersion

// LatestPatches folds versions into a Catalogue keeping, per minor version, the largest patch.
// The result does not depend on the input order.
func LatestPatches(versions []SemanticVersion) Catalogue {
	return lo.Reduce(versions, func(latest Catalogue, v SemanticVersion, _ int) Catalogue {
		key := v.MinorVersion()
		if current, ok := latest[key]; !ok || v.Patch > current.Patch {
			latest[key] = v
		}
		return latest
	}, Catalogue{})
}

// Get looks up the entry for a minor version key.
func (c Catalogue) Get(key string) mo.Option[SemanticVersion] {
	if v, ok := c[key]; ok {
		return mo.Some(v)
	}
	return mo.None[SemanticVersion]()
}

// Keys returns the minor version keys ordered by ascending (major, minor).
// Keys that do not parse as "major.minor" sort last, lexically.
func (c Catalogue) Keys() []string {
	keys := lo.Keys(c)
	slices.SortFunc(keys, func(a, b string) int {
		av, aErr := ParseMinorKey(a)
		bv, bErr := ParseMinorKey(b)

		switch {
		case aErr == nil && bErr == nil:
			return av.Compare(bv)
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})

	return keys
}

// Policy selects the release lines worth tracking out of everything a source reports.
type Policy struct {
	Major    int
	MinMinor int
}

// Filter keeps versions of the policy's major version whose minor is at least MinMinor.
func (p Policy) Filter(versions []SemanticVersion) []SemanticVersion {
	return lo.Filter(versions, func(v SemanticVersion, _ int) bool {
		return v.Major == p.Major && v.Minor >= p.MinMinor
	})
}
