package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pwalch/lonesnake-release/version"
)

// BlockHeader is the comment line opening the latest patch declaration block.
const BlockHeader = "# Latest patch version number for each supported Python minor version"

// ErrBlockNotFound reports a script without a latest patch declaration block.
var ErrBlockNotFound = errors.New("latest patch block not found")

var blockPattern = regexp.MustCompile(regexp.QuoteMeta(BlockHeader) + `\n(?:readonly LATEST_PATCH_CP\d+="\d+"(?:\n|\z))+`)

// RenderBlock renders the declaration block for the tracked minor version keys, in order.
// Every tracked key must be present in patches; nothing is rendered otherwise.
func RenderBlock(tracked []string, patches version.Catalogue) (string, error) {
	lines := make([]string, 0, len(tracked)+1)
	lines = append(lines, BlockHeader)

	for _, key := range tracked {
		minor, err := version.ParseMinorKey(key)
		if err != nil {
			return "", err
		}

		latest, ok := patches.Get(key).Get()
		if !ok {
			return "", fmt.Errorf("%w: no latest patch for tracked minor version %q", version.ErrMissingMinorVersion, key)
		}

		lines = append(lines, fmt.Sprintf(`readonly LATEST_PATCH_CP%d%d="%d"`, minor.Major, minor.Minor, latest.Patch))
	}

	return strings.Join(lines, "\n"), nil
}

// ReplaceBlock swaps the first declaration block of text for block. The block spans the header
// and every contiguous declaration line after it; the rest of text is kept byte for byte.
// When text has no block it is returned unchanged with found set to false.
func ReplaceBlock(text, block string) (updated string, found bool) {
	loc := blockPattern.FindStringIndex(text)
	if loc == nil {
		return text, false
	}

	span := text[loc[0]:loc[1]]
	if strings.HasSuffix(span, "\n") {
		block += "\n"
	}

	return text[:loc[0]] + block + text[loc[1]:], true
}
