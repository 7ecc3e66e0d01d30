// Package script reads and rewrites the version declarations embedded in the lonesnake shell scripts.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pwalch/lonesnake-release/util"
	"github.com/pwalch/lonesnake-release/version"
)

// ErrVersionLineNotFound reports a script without a PROG_VERSION declaration.
var ErrVersionLineNotFound = errors.New("version line not found")

var (
	latestPatchPattern = regexp.MustCompile(`^readonly LATEST_PATCH_CP3(?P<minor>\d+)="(?P<patch>\d+)"`)
	progVersionPattern = regexp.MustCompile(`readonly PROG_VERSION="(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)"`)
)

// ParseCatalogue collects the LATEST_PATCH_CP3<minor> declarations of a script into a catalogue.
// Lines that are not declarations are skipped.
func ParseCatalogue(r io.Reader) (version.Catalogue, error) {
	catalogue := version.Catalogue{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		groups := util.ReGroups(latestPatchPattern, strings.TrimSpace(scanner.Text()))
		if len(groups) == 0 {
			continue
		}

		v, err := version.FromTokens("3", groups["minor"], groups["patch"])
		if err != nil {
			return nil, err
		}
		catalogue[v.MinorVersion()] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan declarations: %w", err)
	}

	return catalogue, nil
}

// FindProgVersion returns the version of the first PROG_VERSION declaration of a script.
func FindProgVersion(r io.Reader) (version.SemanticVersion, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		groups := util.ReGroups(progVersionPattern, scanner.Text())
		if len(groups) == 0 {
			continue
		}

		return version.FromTokens(groups["major"], groups["minor"], groups["patch"])
	}

	if err := scanner.Err(); err != nil {
		return version.SemanticVersion{}, fmt.Errorf("scan declarations: %w", err)
	}

	return version.SemanticVersion{}, ErrVersionLineNotFound
}
