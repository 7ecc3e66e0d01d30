// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "lonesnake-release"

	// EnvPrefix prefixes every environment variable read by the application.
	EnvPrefix = "lonesnake_release"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent to python.org.
	UserAgent = App + "/" + Version + " (+https://github.com/pwalch/lonesnake)"
)
