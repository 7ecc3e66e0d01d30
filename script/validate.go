package script

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Validate checks that text still parses as a shell program.
func Validate(name, text string) error {
	if _, err := syntax.NewParser().Parse(strings.NewReader(text), name); err != nil {
		return fmt.Errorf("rewritten %s is not valid shell: %w", name, err)
	}

	return nil
}
