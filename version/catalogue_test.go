package version

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func mustParseAll(ss ...string) []SemanticVersion {
	return lo.Map(ss, func(s string, _ int) SemanticVersion {
		return lo.Must(Parse(s))
	})
}

func TestLatestPatches(t *testing.T) {
	Convey("Given versions spanning several minor versions", t, func() {
		versions := mustParseAll("3.12.1", "3.11.9", "3.12.5", "3.12.3", "3.11.2", "3.13.0", "2.7.18", "3.12.5")

		Convey("It keeps the largest patch per minor version", func() {
			latest := LatestPatches(versions)
			So(latest, ShouldResemble, Catalogue{
				"2.7":  {2, 7, 18},
				"3.11": {3, 11, 9},
				"3.12": {3, 12, 5},
				"3.13": {3, 13, 0},
			})
		})

		Convey("It does not depend on input order", func() {
			expected := LatestPatches(versions)
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 20; i++ {
				shuffled := append([]SemanticVersion(nil), versions...)
				rng.Shuffle(len(shuffled), func(a, b int) {
					shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
				})
				So(LatestPatches(shuffled), ShouldResemble, expected)
			}
		})

		Convey("An empty input yields an empty catalogue", func() {
			So(LatestPatches(nil), ShouldBeEmpty)
		})
	})
}

func TestCatalogue(t *testing.T) {
	Convey("Keys are ordered by ascending minor version", t, func() {
		c := LatestPatches(mustParseAll("3.10.1", "3.7.17", "3.9.2", "3.14.0", "3.8.20"))
		So(c.Keys(), ShouldResemble, []string{"3.7", "3.8", "3.9", "3.10", "3.14"})
	})

	Convey("Get wraps lookups in an option", t, func() {
		c := Catalogue{"3.12": {3, 12, 5}}
		So(c.Get("3.12").MustGet(), ShouldResemble, SemanticVersion{3, 12, 5})
		So(c.Get("3.13").IsAbsent(), ShouldBeTrue)
	})

	Convey("Policy keeps the configured release lines", t, func() {
		p := Policy{Major: 3, MinMinor: 7}
		kept := p.Filter(mustParseAll("2.7.18", "3.6.15", "3.7.17", "3.12.5", "4.0.0"))
		So(kept, ShouldResemble, mustParseAll("3.7.17", "3.12.5"))
	})
}

func TestDiff(t *testing.T) {
	Convey("Given a remote catalogue with a newer patch", t, func() {
		remote := Catalogue{"3.12": {3, 12, 5}}
		local := Catalogue{"3.12": {3, 12, 3}}

		Convey("It reports one update", func() {
			updates, err := Diff(remote, local)
			So(err, ShouldBeNil)
			So(updates, ShouldResemble, []RequiredUpdate{{
				MinorVersion: "3.12",
				Current:      SemanticVersion{3, 12, 3},
				Available:    SemanticVersion{3, 12, 5},
			}})
			So(updates[0].String(), ShouldEqual, "- minor 3.12: 3 => 5")
		})
	})

	Convey("Given catalogues where remote is never ahead", t, func() {
		remote := Catalogue{"3.11": {3, 11, 9}, "3.12": {3, 12, 3}, "3.13": {3, 13, 0}}
		local := Catalogue{"3.11": {3, 11, 9}, "3.12": {3, 12, 4}}

		Convey("It reports nothing", func() {
			updates, err := Diff(remote, local)
			So(err, ShouldBeNil)
			So(updates, ShouldBeEmpty)
		})
	})

	Convey("Given several updates", t, func() {
		remote := Catalogue{"3.8": {3, 8, 20}, "3.9": {3, 9, 21}, "3.10": {3, 10, 16}, "3.11": {3, 11, 11}}
		local := Catalogue{"3.10": {3, 10, 14}, "3.8": {3, 8, 19}, "3.9": {3, 9, 21}, "3.11": {3, 11, 10}}

		Convey("They are ordered by ascending minor version", func() {
			updates, err := Diff(remote, local)
			So(err, ShouldBeNil)
			So(lo.Map(updates, func(u RequiredUpdate, _ int) string { return u.String() }), ShouldResemble, []string{
				"- minor 3.8: 19 => 20",
				"- minor 3.10: 14 => 16",
				"- minor 3.11: 10 => 11",
			})
		})
	})

	Convey("Given a local minor version the remote no longer reports", t, func() {
		remote := Catalogue{"3.13": {3, 13, 2}, "3.14": {3, 14, 0}}
		local := Catalogue{"3.14": {3, 14, 0}, "3.15": {3, 15, 0}}

		Convey("It fails instead of skipping", func() {
			_, err := Diff(remote, local)
			So(errors.Is(err, ErrMissingMinorVersion), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "3.15")
		})
	})
}
