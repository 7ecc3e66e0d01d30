package script

import (
	"fmt"
	"regexp"

	"github.com/pwalch/lonesnake-release/version"
)

var progVersionDeclaration = regexp.MustCompile(`readonly PROG_VERSION="\d+\.\d+\.\d+"`)

// ReplaceProgVersion rewrites every PROG_VERSION declaration of text to v.
func ReplaceProgVersion(text string, v version.SemanticVersion) string {
	return progVersionDeclaration.ReplaceAllLiteralString(text, fmt.Sprintf(`readonly PROG_VERSION="%s"`, v))
}

// ReplaceURLVersion rewrites the version segment of every "<prefix>/X.Y.Z" occurrence of text to v.
func ReplaceURLVersion(text, prefix string, v version.SemanticVersion) string {
	pattern := regexp.MustCompile(regexp.QuoteMeta(prefix) + `/\d+\.\d+\.\d+`)
	return pattern.ReplaceAllLiteralString(text, prefix+"/"+v.String())
}
