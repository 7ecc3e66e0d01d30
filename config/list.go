package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/pwalch/lonesnake-release/key"
	"github.com/pwalch/lonesnake-release/version"
	"github.com/samber/lo"
)

// SplitList flattens list values given as "3.11,3.12" or "3.11 3.12" into separate items.
// Environment variables and positional arguments both arrive in that form.
func SplitList(values []string) []string {
	return lo.FlatMap(values, func(v string, _ int) []string {
		return strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	})
}

var validators = map[string]func(any) error{
	key.PythonTrackedMinors: validateMinorKeys,
}

// Validate checks a value about to be stored under k. Keys without a validator accept anything.
func Validate(k string, v any) error {
	validate, ok := validators[k]
	if !ok {
		return nil
	}

	if err := validate(v); err != nil {
		return fmt.Errorf("%s: %w", k, err)
	}
	return nil
}

func validateMinorKeys(v any) error {
	keys, ok := v.([]string)
	if !ok {
		return fmt.Errorf("expected a list of minor versions, got %T", v)
	}

	if len(keys) == 0 {
		return errors.New("at least one minor version is required")
	}

	for _, k := range keys {
		if _, err := version.ParseMinorKey(k); err != nil {
			return err
		}
	}
	return nil
}
