package config

import (
	"sort"
	"strings"

	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// Merge combines user-supplied configuration with manifest-declared
// parameter defaults, producing the complete render bindings.
//
// Every user key is validated against its spec; undeclared keys outside
// RecognizedKeys warn but still pass through. Every declared parameter
// absent from the user config is populated from its default, or fails
// with MissingRequired when it has none. Private parameters with defaults
// are always populated.
func Merge(user Configuration, specs map[string]manifest.ParameterSpec, inv []string) (Configuration, error) {
	result := make(Configuration, len(user)+len(specs))

	// Validate user keys in sorted order for deterministic warnings.
	userKeys := make([]string, 0, len(user))
	for k := range user {
		userKeys = append(userKeys, k)
	}
	sort.Strings(userKeys)

	for _, p := range userKeys {
		v := user[p]
		spec, declared := specs[p]
		if !declared {
			if !RecognizedKeys[p] {
				debug.Debug("[config] Unrecognized key %q in config", p)
			}
			result[p] = v
			continue
		}
		if err := validateType(p, spec, v); err != nil {
			return nil, err
		}
		result[p] = v
	}

	for k, spec := range specs {
		if _, supplied := user[k]; supplied {
			continue
		}
		if !spec.HasDefault() {
			return nil, NewMissingRequiredError(k)
		}
		d, err := DeriveDefault(specs, k, inv)
		if err != nil {
			return nil, err
		}
		result[k] = d
	}

	return result, nil
}

// validateType checks a user value against its declared type tag.
func validateType(param string, spec manifest.ParameterSpec, v interface{}) error {
	typ := string(spec.Type)
	switch {
	case strings.HasPrefix(typ, "str"):
		if _, ok := v.(string); !ok {
			return NewTypeMismatchError(param, spec.Type, v)
		}
	case strings.HasPrefix(typ, "int"):
		if !isInteger(v) {
			return NewTypeMismatchError(param, spec.Type, v)
		}
	case strings.HasPrefix(typ, "enum"):
		s, ok := v.(string)
		if !ok {
			return NewTypeMismatchError(param, spec.Type, v)
		}
		found := false
		for _, opt := range spec.Options {
			if s == opt {
				found = true
				break
			}
		}
		if !found {
			return &Error{
				Type:    TypeMismatch,
				Param:   param,
				Message: "enum error; " + s + " not in " + strings.Join(spec.Options, ", "),
			}
		}
	}
	return nil
}

// isInteger accepts the integer widths TOML and JSON decoders produce.
func isInteger(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64:
		return true
	default:
		return false
	}
}
