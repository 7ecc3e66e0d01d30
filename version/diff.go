package version

import "fmt"

// RequiredUpdate is a minor version whose available patch is newer than the current one.
type RequiredUpdate struct {
	MinorVersion string
	Current      SemanticVersion
	Available    SemanticVersion
}

// String renders the update as a report line, e.g. "- minor 3.12: 3 => 5".
func (u RequiredUpdate) String() string {
	return fmt.Sprintf("- minor %s: %d => %d", u.MinorVersion, u.Current.Patch, u.Available.Patch)
}

// Diff lists the updates needed to bring local up to remote.
// Every local key must be present in remote; updates are ordered by ascending minor version.
// An empty result means no update is available.
func Diff(remote, local Catalogue) ([]RequiredUpdate, error) {
	var updates []RequiredUpdate

	for _, key := range local.Keys() {
		current := local[key]

		available, ok := remote.Get(key).Get()
		if !ok {
			return nil, fmt.Errorf("%w: could not find minor version %q in remote patch versions %v", ErrMissingMinorVersion, key, remote.Keys())
		}

		if available.Compare(current) > 0 {
			updates = append(updates, RequiredUpdate{
				MinorVersion: key,
				Current:      current,
				Available:    available,
			})
		}
	}

	return updates, nil
}
