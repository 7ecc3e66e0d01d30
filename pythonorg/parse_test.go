package pythonorg

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/pwalch/lonesnake-release/version"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractVersions(t *testing.T) {
	Convey("Given the downloads page", t, func() {
		f := lo.Must(os.Open("testdata/downloads.html"))
		defer f.Close()

		versions, err := ExtractVersions(f)

		Convey("It lists every release label in ascending order", func() {
			So(err, ShouldBeNil)
			So(lo.Map(versions, func(v version.SemanticVersion, _ int) string { return v.String() }), ShouldResemble, []string{
				"2.7.18", "3.6.15", "3.7.17", "3.8.20", "3.9.21", "3.10.16", "3.11.11", "3.12.4", "3.12.5", "3.13.0",
			})
		})

		Convey("The headings row outside the list is not read", func() {
			So(versions, ShouldHaveLength, 10)
		})

		Convey("Latest keeps one patch per tracked release line", func() {
			latest := Latest(versions, version.Policy{Major: 3, MinMinor: 7})
			So(latest.Keys(), ShouldResemble, []string{"3.7", "3.8", "3.9", "3.10", "3.11", "3.12", "3.13"})
			So(latest["3.12"].String(), ShouldEqual, "3.12.5")
		})
	})

	Convey("Given markup without the release list widget", t, func() {
		_, err := ExtractVersions(strings.NewReader(`<html><body><ol class="list-row-container"></ol></body></html>`))

		Convey("It fails with a parse error", func() {
			So(errors.Is(err, ErrParse), ShouldBeTrue)
		})
	})

	Convey("Given a widget without the release list", t, func() {
		_, err := ExtractVersions(strings.NewReader(`<div class="row download-list-widget"><p>nothing</p></div>`))

		Convey("It fails with a parse error", func() {
			So(errors.Is(err, ErrParse), ShouldBeTrue)
		})
	})

	Convey("Given a release label that is not a CPython version", t, func() {
		html := `<div class="download-list-widget"><ol class="list-row-container menu">
			<li><span class="release-number"><a>Python 3.12.5</a></span></li>
			<li><span class="release-number"><a>Python install manager 25.0b</a></span></li>
		</ol></div>`
		_, err := ExtractVersions(strings.NewReader(html))

		Convey("It fails with an invalid version error", func() {
			So(errors.Is(err, version.ErrInvalidVersion), ShouldBeTrue)
		})
	})
}

func TestParseRelease(t *testing.T) {
	Convey("ParseRelease", t, func() {
		Convey("It ignores surrounding text", func() {
			v, err := ParseRelease("  Python 3.11.11 (security)\n")
			So(err, ShouldBeNil)
			So(v.String(), ShouldEqual, "3.11.11")
		})

		Convey("It is case-sensitive", func() {
			_, err := ParseRelease("python 3.11.11")
			So(errors.Is(err, version.ErrInvalidVersion), ShouldBeTrue)
		})

		Convey("It needs three components", func() {
			_, err := ParseRelease("Python 3.14")
			So(errors.Is(err, version.ErrInvalidVersion), ShouldBeTrue)
		})
	})
}
