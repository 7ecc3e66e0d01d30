package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/pwalch/lonesnake-release/filesystem"
	"github.com/pwalch/lonesnake-release/key"
	"github.com/pwalch/lonesnake-release/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and nothing is emitted", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates a dated log file", func() {
			So(Setup(), ShouldBeNil)
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given a buffer as the log output", t, func() {
		var buf bytes.Buffer
		enabled = true
		defer func() { enabled = false }()

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(configure(&buf), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)

			Debugf("hidden %d", 1)
			Infof("shown %d", 2)
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "shown 2")
		})

		Convey("JSON output carries structured fields", func() {
			viper.Set(key.LogsLevel, "info")
			viper.Set(key.LogsJson, true)
			defer viper.Set(key.LogsJson, false)

			So(configure(&buf), ShouldBeNil)
			WithFields(map[string]any{"minor": "3.12"}, "update")
			So(buf.String(), ShouldContainSubstring, `"minor": "3.12"`)
		})
	})
}
