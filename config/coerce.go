// File: lixenwraith/drift/config/coerce.go
package config

import (
	"strconv"
	"strings"
)

// removeKey deletes key from props and returns its value, reporting whether
// the key was present.
func removeKey(props map[string]string, key string) (string, bool) {
	value, present := props[key]
	if present {
		delete(props, key)
	}
	return value, present
}

// removeBool deletes key from props and parses its value as a boolean.
// Absence of the key is not an error. Accepted literals are the strconv
// forms: 1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False.
func removeBool(props map[string]string, key string) (value, present bool, err error) {
	raw, present := removeKey(props, key)
	if !present {
		return false, false, nil
	}
	value, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		return false, true, errorf("invalid value for %s (should be either true or false): %s", key, raw)
	}
	return value, true, nil
}

// removeInt deletes key from props and parses its value as an integer.
// Absence of the key is not an error.
func removeInt(props map[string]string, key string) (value int, present bool, err error) {
	raw, present := removeKey(props, key)
	if !present {
		return 0, false, nil
	}
	value, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		return 0, true, errorf("invalid value for %s (should be an integer): %s", key, raw)
	}
	return value, true, nil
}

// tokenize splits s on sep, trims surrounding whitespace from each token
// and drops empty tokens. Empty input yields a nil slice.
func tokenize(s, sep string) []string {
	var tokens []string
	for _, token := range strings.Split(s, sep) {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// extractNamespace partitions props by prefix: every key that starts with
// prefix and has at least one character beyond it moves to the extracted
// map with the prefix stripped, whether or not its suffix means anything to
// the caller. Neither input map is mutated; the reduced remainder is
// returned alongside the extracted sub-mapping.
func extractNamespace(props map[string]string, prefix string) (extracted, remaining map[string]string) {
	extracted = make(map[string]string)
	remaining = make(map[string]string, len(props))

	for key, value := range props {
		if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
			extracted[strings.TrimPrefix(key, prefix)] = value
		} else {
			remaining[key] = value
		}
	}
	return extracted, remaining
}
