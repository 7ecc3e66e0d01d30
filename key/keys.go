// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Release Targets - these keys locate the files rewritten by a release.
const (
	PathsScript     = "paths.script"
	PathsKitScript  = "paths.kit_script"
	PathsReadme     = "paths.readme"
	ReadmeURLPrefix = "readme.url_prefix"
)

// Downloads Page - these keys configure where CPython releases are discovered.
const (
	DownloadsURL          = "downloads.url"
	DownloadsCacheMinutes = "downloads.cache_minutes"
)

// CPython Tracking - these keys select the release lines kept in the latest patch block.
const (
	PythonMajor         = "python.major"
	PythonMinMinor      = "python.min_minor"
	PythonTrackedMinors = "python.tracked_minors"
)

// Script Rewriting - these keys govern how the shell scripts are rewritten.
const (
	BlockAllowMissing    = "block.allow_missing"
	ScriptValidateSyntax = "script.validate_syntax"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern command output.
const (
	CliColored = "cli.colored"
)
