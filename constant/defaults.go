package constant

// Release targets - the files and URLs the lonesnake release process reads and rewrites.
const (
	DownloadsURL    = "https://www.python.org/downloads/"
	ScriptPath      = "lonesnake"
	KitScriptPath   = "helpers/lonesnake-kit"
	ReadmePath      = "README.md"
	ReadmeURLPrefix = "https://raw.githubusercontent.com/pwalch/lonesnake"
)

// CPython release lines tracked by the latest patch block.
const (
	PythonMajor    = 3
	PythonMinMinor = 7
)

// TrackedMinors lists the minor versions rendered into the latest patch block, in block order.
func TrackedMinors() []string {
	return []string{"3.7", "3.8", "3.9", "3.10", "3.11", "3.12", "3.13", "3.14"}
}
