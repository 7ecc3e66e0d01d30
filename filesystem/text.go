package filesystem

import "fmt"

// ReadText reads the whole file at path.
func ReadText(path string) (string, error) {
	data, err := API().ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText replaces the content of the existing file at path, keeping its permissions.
func WriteText(path, content string) error {
	info, err := API().Stat(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := API().WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
