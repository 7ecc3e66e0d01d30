package version

import (
	"github.com/samber/lo"
)

// Compare orders v against other lexicographically on (major, minor, patch).
// Returns 1 if v > other, -1 if v < other, and 0 if equal.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	for _, pair := range []lo.Tuple2[int, int]{
		{A: v.Major, B: other.Major},
		{A: v.Minor, B: other.Minor},
		{A: v.Patch, B: other.Patch},
	} {
		if pair.A > pair.B {
			return 1
		}

		if pair.A < pair.B {
			return -1
		}
	}

	return 0
}
