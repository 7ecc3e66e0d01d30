package release

import (
	"testing"
	"time"

	"github.com/pwalch/lonesnake-release/config"
	"github.com/pwalch/lonesnake-release/key"
	"github.com/pwalch/lonesnake-release/version"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestOptionsFromConfig(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(config.Setup(), ShouldBeNil)
		opts := OptionsFromConfig()

		Convey("It targets the lonesnake repository layout", func() {
			So(opts.Paths, ShouldResemble, Paths{
				Script:    "lonesnake",
				KitScript: "helpers/lonesnake-kit",
				Readme:    "README.md",
			})
			So(opts.ReadmeURLPrefix, ShouldEqual, "https://raw.githubusercontent.com/pwalch/lonesnake")
			So(opts.DownloadsURL, ShouldEqual, "https://www.python.org/downloads/")
		})

		Convey("It tracks CPython 3.7 and later without caching", func() {
			So(opts.Policy, ShouldResemble, version.Policy{Major: 3, MinMinor: 7})
			So(opts.TrackedMinors[0], ShouldEqual, "3.7")
			So(opts.CacheLifetime, ShouldEqual, time.Duration(0))
			So(opts.AllowMissingBlock, ShouldBeFalse)
			So(opts.ValidateSyntax, ShouldBeTrue)
		})

		Convey("Overrides are honored", func() {
			viper.Set(key.DownloadsCacheMinutes, 30)
			viper.Set(key.PythonTrackedMinors, []string{"3.12", "3.13"})
			defer viper.Set(key.DownloadsCacheMinutes, 0)
			defer viper.Set(key.PythonTrackedMinors, nil)

			opts := OptionsFromConfig()
			So(opts.CacheLifetime, ShouldEqual, 30*time.Minute)
			So(opts.TrackedMinors, ShouldResemble, []string{"3.12", "3.13"})
		})
	})
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LONESNAKE_RELEASE_PYTHON_TRACKED_MINORS", "3.11,3.12")

	Convey("Given tracked minor versions in the environment", t, func() {
		So(config.Setup(), ShouldBeNil)

		Convey("Each minor version becomes a separate entry", func() {
			So(OptionsFromConfig().TrackedMinors, ShouldResemble, []string{"3.11", "3.12"})
		})
	})
}
