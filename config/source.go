// File: lixenwraith/drift/config/source.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a configuration file and merges its contents through
// ApplyProps. TOML, YAML and JSON are supported; the format is detected
// from the extension first, then by parsing. Nested tables flatten to
// dot-notation keys, so
//
//	[placeholders]
//	env = "production"
//
// becomes the property "drift.placeholders.env". Top-level keys without
// the drift prefix gain it, letting files omit the namespace root.
func (c *Config) LoadFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return errorf("unable to read config file %s: %v", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
	}

	fileConfig := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &fileConfig); err != nil {
			return errorf("unable to parse TOML config file %s: %v", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber()
		if err := decoder.Decode(&fileConfig); err != nil {
			return errorf("unable to parse JSON config file %s: %v", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &fileConfig); err != nil {
			return errorf("unable to parse YAML config file %s: %v", path, err)
		}
	default:
		return errorf("unable to determine config format for file %s", path)
	}

	props := make(map[string]string)
	for key, value := range flattenMap(fileConfig, "") {
		if !strings.HasPrefix(key, KnownPrefix) {
			key = KnownPrefix + key
		}
		props[key] = stringifyValue(value)
	}

	return c.ApplyProps(props)
}

// flattenMap converts a nested map to a flat map with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}

	return flat
}

// stringifyValue renders a parsed scalar back into the string form the
// property coercers expect. Lists join with commas.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. JSON is
// tried first because it is the strictest, then YAML, then TOML. Each
// probe targets a map so that scalar documents do not match; YAML in
// particular parses almost any line as a plain scalar.
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
