package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/pwalch/lonesnake-release/filesystem"
	"github.com/pwalch/lonesnake-release/log"
	"github.com/pwalch/lonesnake-release/pythonorg"
	"github.com/pwalch/lonesnake-release/script"
	"github.com/pwalch/lonesnake-release/util"
	"github.com/pwalch/lonesnake-release/version"
)

// UpdatesHeader opens the report of available CPython updates.
const UpdatesHeader = "The following CPython version updates can be applied to the lonesnake script:"

// NoUpdate is the report printed when the script is up to date.
const NoUpdate = "NO UPDATE AVAILABLE"

// RemotePatches fetches the downloads page and reduces it to the latest patch per tracked release line.
func RemotePatches(ctx context.Context, opts Options) (version.Catalogue, error) {
	page, err := pythonorg.Fetch(ctx, opts.DownloadsURL, opts.CacheLifetime)
	if err != nil {
		return nil, err
	}

	versions, err := pythonorg.ExtractVersions(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	latest := pythonorg.Latest(versions, opts.Policy)
	log.Debugf("python.org latest patches: %v", latest)
	return latest, nil
}

// LocalPatches reads the latest patch declarations of the lonesnake script.
func LocalPatches(opts Options) (version.Catalogue, error) {
	text, err := filesystem.ReadText(opts.Paths.Script)
	if err != nil {
		return nil, err
	}

	return script.ParseCatalogue(strings.NewReader(text))
}

// CheckUpdates lists the CPython patch updates python.org has over the lonesnake script.
func CheckUpdates(ctx context.Context, opts Options) ([]version.RequiredUpdate, error) {
	remote, err := RemotePatches(ctx, opts)
	if err != nil {
		return nil, err
	}

	local, err := LocalPatches(opts)
	if err != nil {
		return nil, err
	}

	updates, err := version.Diff(remote, local)
	if err != nil {
		return nil, err
	}

	log.Infof("found %s", util.Quantify(len(updates), "CPython update", "CPython updates"))
	for _, u := range updates {
		log.WithFields(map[string]any{
			"minor":     u.MinorVersion,
			"current":   u.Current.String(),
			"available": u.Available.String(),
		}, "update available")
	}

	return updates, nil
}

// Report renders the outcome of CheckUpdates, one line per entry.
func Report(updates []version.RequiredUpdate) []string {
	if len(updates) == 0 {
		return []string{NoUpdate}
	}

	lines := make([]string, 0, len(updates)+1)
	lines = append(lines, UpdatesHeader)
	for _, u := range updates {
		lines = append(lines, u.String())
	}
	return lines
}

// OverwriteLatestPatchBlock rewrites the latest patch block of the lonesnake script from python.org.
func OverwriteLatestPatchBlock(ctx context.Context, opts Options) error {
	remote, err := RemotePatches(ctx, opts)
	if err != nil {
		return err
	}

	block, err := script.RenderBlock(opts.TrackedMinors, remote)
	if err != nil {
		return err
	}

	text, err := filesystem.ReadText(opts.Paths.Script)
	if err != nil {
		return err
	}

	updated, found := script.ReplaceBlock(text, block)
	if !found {
		if opts.AllowMissingBlock {
			log.Warnf("no latest patch block in %s, leaving it untouched", opts.Paths.Script)
			return nil
		}
		return fmt.Errorf("%w in %s", script.ErrBlockNotFound, opts.Paths.Script)
	}

	if opts.ValidateSyntax {
		if err := script.Validate(opts.Paths.Script, updated); err != nil {
			return err
		}
	}

	if updated == text {
		log.Infof("latest patch block of %s already up to date", opts.Paths.Script)
		return nil
	}

	if err := filesystem.WriteText(opts.Paths.Script, updated); err != nil {
		return err
	}

	log.Infof("rewrote latest patch block of %s", opts.Paths.Script)
	return nil
}
