// File: lixenwraith/drift/config/errors.go
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is checks across the configuration boundary.
var (
	// ErrConfiguration matches every validation failure produced by this
	// package, including unrecognized-property errors.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrUpgradeRequired matches attempts to set an edition-gated field in
	// the community edition.
	ErrUpgradeRequired = errors.New("drift Teams upgrade required")
)

// ErrorCode identifies the failure class in a stable, machine-readable way.
type ErrorCode string

const (
	// CodeConfiguration is a malformed or invalid configuration value.
	CodeConfiguration ErrorCode = "CONFIGURATION"

	// CodeUnrecognizedProperty is a property key this layer does not know.
	CodeUnrecognizedProperty ErrorCode = "UNRECOGNIZED_PROPERTY"

	// CodeUpgradeRequired is an edition-gated field used without the
	// required capability tier.
	CodeUpgradeRequired ErrorCode = "UPGRADE_REQUIRED"
)

// Error is a configuration validation failure. The message names the
// offending field and value.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrConfiguration
}

// errorf builds a validation Error with CodeConfiguration.
func errorf(format string, args ...any) *Error {
	return &Error{Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// UpgradeRequiredError reports use of a field that requires the Teams
// edition. Field carries the configuration field name.
type UpgradeRequiredError struct {
	Field string
}

func (e *UpgradeRequiredError) Error() string {
	return fmt.Sprintf("drift Teams upgrade required: %s is not supported by the community edition", e.Field)
}

func (e *UpgradeRequiredError) Unwrap() error {
	return ErrUpgradeRequired
}

// UnrecognizedPropertiesError lists every property key left over after a
// property pass, so one pass surfaces all typos at once. Keys are sorted.
type UnrecognizedPropertiesError struct {
	Keys []string
}

func newUnrecognizedPropertiesError(keys []string) *UnrecognizedPropertiesError {
	sort.Strings(keys)
	return &UnrecognizedPropertiesError{Keys: keys}
}

func (e *UnrecognizedPropertiesError) Error() string {
	return fmt.Sprintf("unknown configuration properties: %s", strings.Join(e.Keys, ", "))
}

func (e *UnrecognizedPropertiesError) Unwrap() error {
	return ErrConfiguration
}
