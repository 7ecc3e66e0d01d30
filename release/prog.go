package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pwalch/lonesnake-release/filesystem"
	"github.com/pwalch/lonesnake-release/log"
	"github.com/pwalch/lonesnake-release/script"
	"github.com/pwalch/lonesnake-release/version"
)

// ErrInvalidArgument reports a malformed command argument.
var ErrInvalidArgument = errors.New("invalid argument")

// CurrentProgVersion reads PROG_VERSION from the lonesnake script.
func CurrentProgVersion(opts Options) (version.SemanticVersion, error) {
	text, err := filesystem.ReadText(opts.Paths.Script)
	if err != nil {
		return version.SemanticVersion{}, err
	}

	v, err := script.FindProgVersion(strings.NewReader(text))
	if err != nil {
		return version.SemanticVersion{}, fmt.Errorf("%s: %w", opts.Paths.Script, err)
	}

	return v, nil
}

// NextProgVersion returns PROG_VERSION with its minor component bumped.
func NextProgVersion(opts Options) (version.SemanticVersion, error) {
	current, err := CurrentProgVersion(opts)
	if err != nil {
		return version.SemanticVersion{}, err
	}

	return current.NextMinor(), nil
}

// ParseProgVersion validates a program version given on the command line.
func ParseProgVersion(arg string) (version.SemanticVersion, error) {
	v, err := version.Parse(arg)
	if err != nil {
		return version.SemanticVersion{}, fmt.Errorf("%w: %q, expected format X.Y.Z", ErrInvalidArgument, arg)
	}

	return v, nil
}

// OverwriteProgVersion stamps arg as PROG_VERSION into both scripts and into the README URLs.
// The argument is validated and every new content computed before any file is written.
func OverwriteProgVersion(opts Options, arg string) error {
	next, err := ParseProgVersion(arg)
	if err != nil {
		return err
	}

	type rewrite struct {
		path    string
		content string
	}

	var rewrites []rewrite

	for _, path := range []string{opts.Paths.Script, opts.Paths.KitScript} {
		text, err := filesystem.ReadText(path)
		if err != nil {
			return err
		}

		updated := script.ReplaceProgVersion(text, next)
		if opts.ValidateSyntax {
			if err := script.Validate(path, updated); err != nil {
				return err
			}
		}

		rewrites = append(rewrites, rewrite{path: path, content: updated})
	}

	readme, err := filesystem.ReadText(opts.Paths.Readme)
	if err != nil {
		return err
	}
	rewrites = append(rewrites, rewrite{
		path:    opts.Paths.Readme,
		content: script.ReplaceURLVersion(readme, opts.ReadmeURLPrefix, next),
	})

	for _, r := range rewrites {
		if err := filesystem.WriteText(r.path, r.content); err != nil {
			return err
		}
		log.Infof("stamped version %s into %s", next, r.path)
	}

	return nil
}
