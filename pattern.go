// File: lixenwraith/drift/pattern.go
package drift

import "strings"

// Pattern selects migrations for cherry-picking. A pattern is either a
// version ("1", "2.4") matched against versioned migrations, or a
// description ("Insert_Data") matched case-insensitively against repeatable
// migrations, with spaces and underscores treated as equivalent.
type Pattern struct {
	raw string
}

// NewPattern creates a pattern from its configured string form.
func NewPattern(s string) Pattern {
	return Pattern{raw: s}
}

// MatchesVersion reports whether the pattern selects the given version.
func (p Pattern) MatchesVersion(v Version) bool {
	pv, err := ParseVersion(p.raw)
	if err != nil {
		return false
	}
	return !v.IsZero() && pv.Compare(v) == 0
}

// MatchesDescription reports whether the pattern selects a repeatable
// migration with the given description.
func (p Pattern) MatchesDescription(description string) bool {
	return normalizeDescription(p.raw) == normalizeDescription(description)
}

func (p Pattern) String() string {
	return p.raw
}

func normalizeDescription(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
