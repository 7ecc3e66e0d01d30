// Package pythonorg reads CPython release versions off the python.org downloads page.
package pythonorg

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pwalch/lonesnake-release/version"
	"golang.org/x/exp/slices"
)

// ErrParse reports that the downloads page does not have the expected structure.
var ErrParse = errors.New("unexpected downloads page structure")

// Selectors locating the release list on the downloads page.
const (
	widgetSelector  = "div.download-list-widget"
	listSelector    = "ol.list-row-container"
	releaseSelector = "span.release-number"
)

var releasePattern = regexp.MustCompile(`Python (\d+)\.(\d+)\.(\d+)`)

// ExtractVersions parses the downloads page markup and returns every release version listed in
// the release list widget, sorted ascending. Duplicates and all release lines are kept.
func ExtractVersions(r io.Reader) ([]version.SemanticVersion, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	widget := doc.Find(widgetSelector).First()
	if widget.Length() == 0 {
		return nil, fmt.Errorf("%w: release list widget %q not found", ErrParse, widgetSelector)
	}

	list := widget.Find(listSelector).First()
	if list.Length() == 0 {
		return nil, fmt.Errorf("%w: release list %q not found in widget", ErrParse, listSelector)
	}

	labels := list.Find(releaseSelector).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})

	versions := make([]version.SemanticVersion, 0, len(labels))
	for _, label := range labels {
		v, err := ParseRelease(label)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}

	slices.SortFunc(versions, func(a, b version.SemanticVersion) int {
		return a.Compare(b)
	})

	return versions, nil
}

// ParseRelease reads a release label such as "Python 3.12.5". Text around the version is ignored.
func ParseRelease(label string) (version.SemanticVersion, error) {
	match := releasePattern.FindStringSubmatch(label)
	if match == nil {
		return version.SemanticVersion{}, fmt.Errorf("%w: release label %q, expected \"Python X.Y.Z\"", version.ErrInvalidVersion, strings.TrimSpace(label))
	}

	return version.FromTokens(match[1], match[2], match[3])
}

// Latest reduces extracted versions to the latest patch of every release line the policy tracks.
func Latest(versions []version.SemanticVersion, policy version.Policy) version.Catalogue {
	return version.LatestPatches(policy.Filter(versions))
}
