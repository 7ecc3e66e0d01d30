package config

import (
	"errors"
	"testing"

	"github.com/pwalch/lonesnake-release/key"
	"github.com/pwalch/lonesnake-release/version"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSplitList(t *testing.T) {
	Convey("SplitList", t, func() {
		Convey("Splits comma separated values", func() {
			So(SplitList([]string{"3.7,3.8"}), ShouldResemble, []string{"3.7", "3.8"})
		})

		Convey("Flattens separate arguments and trims blanks", func() {
			So(SplitList([]string{"3.11, 3.12", "3.13", ""}), ShouldResemble, []string{"3.11", "3.12", "3.13"})
		})

		Convey("Leaves single items alone", func() {
			So(SplitList([]string{"3.12", "3.13"}), ShouldResemble, []string{"3.12", "3.13"})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Tracked minor versions", t, func() {
		Convey("Accept a list of minor version keys", func() {
			So(Validate(key.PythonTrackedMinors, []string{"3.12", "3.13"}), ShouldBeNil)
		})

		Convey("Reject an unsplit list", func() {
			err := Validate(key.PythonTrackedMinors, []string{"3.7,3.8"})
			So(errors.Is(err, version.ErrInvalidVersion), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, key.PythonTrackedMinors)
		})

		Convey("Reject an empty list", func() {
			So(Validate(key.PythonTrackedMinors, []string{}), ShouldNotBeNil)
		})
	})

	Convey("Keys without a validator accept any value", t, func() {
		So(Validate(key.DownloadsURL, "anything"), ShouldBeNil)
	})
}

func TestTrackedMinorsFromEnv(t *testing.T) {
	t.Setenv("LONESNAKE_RELEASE_PYTHON_TRACKED_MINORS", "3.11,3.12")

	Convey("A comma separated environment variable yields one item per minor version", t, func() {
		So(Setup(), ShouldBeNil)
		So(SplitList(viper.GetStringSlice(key.PythonTrackedMinors)), ShouldResemble, []string{"3.11", "3.12"})
	})
}
