// Package config assembles the typed configuration the drift migration
// engine runs with.
//
// A Config is built from any mix of sources: direct setter calls, flat
// string property maps (ApplyProps), configuration files in TOML, YAML or
// JSON (LoadFile), process environment variables (ApplyEnv), and other
// configurations (FromConfig). All sources funnel through the same
// setters, so validation and edition gating hold regardless of where a
// value came from. The engine consumes the result through the read-only
// Reader interface.
//
// Property keys live under the "drift." namespace. Two sub-namespaces
// form mappings rather than scalars: "drift.placeholders.<name>" and
// "drift.driverProperties.<name>". Keys under "drift." that the package
// does not recognize fail the property pass with an
// UnrecognizedPropertiesError listing every leftover at once; keys
// outside the namespace are ignored so drift settings can share a
// property map with other tools.
package config
