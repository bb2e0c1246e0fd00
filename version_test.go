// FILE: lixenwraith/drift/version_test.go
package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseVersion tests version string parsing
func TestParseVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{"SinglePart", "1", "1", false},
		{"TwoParts", "2.4", "2.4", false},
		{"ThreeParts", "6.5.3", "6.5.3", false},
		{"UnderscoreSeparators", "1_2_3", "1.2.3", false},
		{"MixedSeparators", "1.2_3", "1.2.3", false},
		{"LeadingZeros", "007", "007", false},
		{"Current", "current", "current", false},
		{"CurrentUppercase", "CURRENT", "current", false},
		{"Latest", "latest", "latest", false},
		{"LatestMixedCase", "Latest", "latest", false},
		{"Empty", "", "", true},
		{"Negative", "-1", "", true},
		{"NonNumeric", "one", "", true},
		{"TrailingDot", "1.", "", true},
		{"EmbeddedSpace", "1 2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, v.String())
			}
		})
	}
}

// TestVersionCompare tests version ordering
func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"Equal", "1.2", "1.2", 0},
		{"MissingTrailingPartsAreZero", "1.0", "1", 0},
		{"MissingTrailingPartsAreZeroLonger", "2", "2.0.0", 0},
		{"Less", "1.9", "2", -1},
		{"Greater", "10", "9.9.9", 1},
		{"PartwiseNotLexicographic", "1.10", "1.9", 1},
		{"LatestAboveNumeric", "latest", "999", 1},
		{"NumericBelowLatest", "999", "latest", -1},
		{"LatestEqualsLatest", "latest", "LATEST", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustVersion(tt.a)
			b := MustVersion(tt.b)
			assert.Equal(t, tt.expected, a.Compare(b))
			assert.Equal(t, -tt.expected, b.Compare(a))
		})
	}

	t.Run("ZeroBelowEverything", func(t *testing.T) {
		var zero Version
		assert.Equal(t, -1, zero.Compare(MustVersion("0")))
		assert.Equal(t, 1, MustVersion("0").Compare(zero))
		assert.Equal(t, 0, zero.Compare(Version{}))
	})
}

// TestVersionPredicates tests the classification helpers
func TestVersionPredicates(t *testing.T) {
	var zero Version
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsSymbolic())

	assert.False(t, MustVersion("1.2").IsZero())
	assert.False(t, MustVersion("1.2").IsSymbolic())

	assert.True(t, VersionCurrent.IsSymbolic())
	assert.True(t, VersionLatest.IsSymbolic())
	assert.False(t, VersionLatest.IsZero())

	assert.True(t, VersionLatest.IsLatest())
	assert.False(t, VersionCurrent.IsLatest())
	assert.False(t, MustVersion("1.2").IsLatest())
	assert.False(t, zero.IsLatest())
}

// TestMustVersion tests the panicking constructor
func TestMustVersion(t *testing.T) {
	assert.NotPanics(t, func() { MustVersion("1.2") })
	assert.Panics(t, func() { MustVersion("bogus") })
}
