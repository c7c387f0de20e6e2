// Package flags interprets the raw flag tokens of a parsed instruction,
// for example `--from=build` or `--mount=type=cache,target=/root/.cache`.
package flags

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tonistiigi/go-csvvalue"
)

// Flag is a single `--name[=value]` token.
type Flag struct {
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	HasValue bool   `json:"has_value" yaml:"has_value"`
}

// Set is the ordered list of flags of one instruction. A flag may repeat
// (`RUN --mount=... --mount=...`).
type Set []Flag

// Parse turns raw flag tokens into flags. Surrounding quotes of a value
// are removed.
func Parse(raw []string) (Set, error) {
	set := make(Set, 0, len(raw))
	for _, token := range raw {
		f, err := parseFlag(token)
		if err != nil {
			return nil, err
		}
		set = append(set, f)
	}
	return set, nil
}

func parseFlag(token string) (Flag, error) {
	if !strings.HasPrefix(token, "--") {
		return Flag{}, errors.Errorf("invalid flag %q: must start with --", token)
	}
	name, value, hasValue := strings.Cut(token[2:], "=")
	if name == "" {
		return Flag{}, errors.Errorf("invalid flag %q: missing name", token)
	}
	if hasValue {
		value = unquote(value)
	}
	return Flag{Name: strings.ToLower(name), Value: value, HasValue: hasValue}, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// Lookup returns the first flag called name.
func (s Set) Lookup(name string) (Flag, bool) {
	name = strings.ToLower(name)
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// All returns every flag called name, in order.
func (s Set) All(name string) []Flag {
	name = strings.ToLower(name)
	var out []Flag
	for _, f := range s {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the distinct flag names in order of first appearance.
func (s Set) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, f := range s {
		if _, ok := seen[f.Name]; ok {
			continue
		}
		seen[f.Name] = struct{}{}
		names = append(names, f.Name)
	}
	return names
}

// Fields splits a comma separated value, honoring CSV quoting.
func (f Flag) Fields() ([]string, error) {
	if f.Value == "" {
		return nil, nil
	}
	fields, err := csvvalue.Fields(f.Value, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse value of --%s", f.Name)
	}
	return fields, nil
}

// Options interprets the value as comma separated key=value pairs, as used
// by --mount and --security. A field without `=` maps to an empty string.
func (f Flag) Options() (map[string]string, error) {
	fields, err := f.Fields()
	if err != nil {
		return nil, err
	}
	opts := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, _ := strings.Cut(field, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, errors.Errorf("invalid field %q in --%s", field, f.Name)
		}
		opts[key] = value
	}
	return opts, nil
}

func (f Flag) String() string {
	if !f.HasValue {
		return "--" + f.Name
	}
	return "--" + f.Name + "=" + f.Value
}
