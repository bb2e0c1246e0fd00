// File: lixenwraith/drift/version.go
package drift

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a migration version: an ordered sequence of numeric parts
// ("1", "2.4", "6.5.3") or one of the symbolic tokens "current" and
// "latest". The zero value means "not set".
type Version struct {
	raw   string
	parts []int64
}

// Symbolic versions recognized as target bounds.
var (
	// VersionCurrent designates the version the schema is currently at.
	VersionCurrent = Version{raw: "current"}
	// VersionLatest designates the highest version among the available
	// migrations.
	VersionLatest = Version{raw: "latest"}
)

// ParseVersion parses a version string. Underscores are accepted as part
// separators for compatibility with file-name derived versions ("1_2" is
// "1.2"). The tokens "current" and "latest" are matched case-insensitively.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, fmt.Errorf("version must not be empty")
	}

	switch strings.ToLower(s) {
	case "current":
		return VersionCurrent, nil
	case "latest":
		return VersionLatest, nil
	}

	normalized := strings.ReplaceAll(s, "_", ".")
	segments := strings.Split(normalized, ".")
	parts := make([]int64, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.ParseInt(segment, 10, 64)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: must be numbers separated by dots", s)
		}
		parts = append(parts, n)
	}

	return Version{raw: normalized, parts: parts}, nil
}

// MustVersion is like ParseVersion but panics on error. Intended for
// compile-time constant versions such as defaults.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool {
	return v.raw == ""
}

// IsSymbolic reports whether the version is one of the "current"/"latest"
// tokens rather than a concrete number.
func (v Version) IsSymbolic() bool {
	return v.raw != "" && v.parts == nil
}

// IsLatest reports whether the version is the latest token.
func (v Version) IsLatest() bool {
	return v.raw == VersionLatest.raw
}

// Compare orders two numeric versions part by part, treating missing
// trailing parts as zero ("1.0" equals "1"). The latest token sorts above
// every numeric version; an unset version sorts below everything.
func (v Version) Compare(o Version) int {
	if v.raw == o.raw {
		return 0
	}
	if v.IsZero() || o.IsLatest() {
		return -1
	}
	if o.IsZero() || v.IsLatest() {
		return 1
	}

	n := len(v.parts)
	if len(o.parts) > n {
		n = len(o.parts)
	}
	for i := 0; i < n; i++ {
		var a, b int64
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(o.parts) {
			b = o.parts[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v Version) String() string {
	return v.raw
}
