// Package release runs the lonesnake release tasks against the files of a repository checkout.
package release

import (
	"time"

	"github.com/pwalch/lonesnake-release/config"
	"github.com/pwalch/lonesnake-release/key"
	"github.com/pwalch/lonesnake-release/version"
	"github.com/spf13/viper"
)

// Paths locates the files touched by a release.
type Paths struct {
	Script    string
	KitScript string
	Readme    string
}

// Options carries every setting of a release task.
type Options struct {
	Paths           Paths
	ReadmeURLPrefix string

	DownloadsURL  string
	CacheLifetime time.Duration

	Policy        version.Policy
	TrackedMinors []string

	AllowMissingBlock bool
	ValidateSyntax    bool
}

// OptionsFromConfig reads Options from the loaded configuration.
func OptionsFromConfig() Options {
	return Options{
		Paths: Paths{
			Script:    viper.GetString(key.PathsScript),
			KitScript: viper.GetString(key.PathsKitScript),
			Readme:    viper.GetString(key.PathsReadme),
		},
		ReadmeURLPrefix: viper.GetString(key.ReadmeURLPrefix),
		DownloadsURL:    viper.GetString(key.DownloadsURL),
		CacheLifetime:   time.Duration(viper.GetInt(key.DownloadsCacheMinutes)) * time.Minute,
		Policy: version.Policy{
			Major:    viper.GetInt(key.PythonMajor),
			MinMinor: viper.GetInt(key.PythonMinMinor),
		},
		TrackedMinors:     config.SplitList(viper.GetStringSlice(key.PythonTrackedMinors)),
		AllowMissingBlock: viper.GetBool(key.BlockAllowMissing),
		ValidateSyntax:    viper.GetBool(key.ScriptValidateSyntax),
	}
}
