package domain_test

import (
	"testing"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		op       domain.Operator
		raw      string
		prefix   bool
		parsed   bool
	}{
		{name: "exact", input: "==2.1.0", op: domain.OpEqual, raw: "2.1.0", parsed: true},
		{name: "floor", input: ">=1.0.22", op: domain.OpGreaterEqual, raw: "1.0.22", parsed: true},
		{name: "spaces around version", input: ">= 1.2", op: domain.OpGreaterEqual, raw: "1.2", parsed: true},
		{name: "compatible", input: "~=2.4", op: domain.OpCompatible, raw: "2.4", parsed: true},
		{name: "prefix", input: "==1.2.*", op: domain.OpEqual, raw: "1.2.*", prefix: true, parsed: true},
		{name: "not equal prefix", input: "!=1.2.*", op: domain.OpNotEqual, raw: "1.2.*", prefix: true, parsed: true},
		{name: "arbitrary", input: "===anything-goes", op: domain.OpArbitrary, raw: "anything-goes"},
		{name: "bad version kept raw", input: "==not.a.version!", op: domain.OpEqual, raw: "not.a.version!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := domain.ParseSpecifier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.op, spec.Op)
			assert.Equal(t, tt.raw, spec.Raw)
			assert.Equal(t, tt.prefix, spec.Prefix)
			assert.Equal(t, tt.parsed, spec.Version != nil)
		})
	}
}

func TestParseSpecifier_Invalid(t *testing.T) {
	for _, input := range []string{"", "1.0", "=1.0", ">=", ">=1.0.* "} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseSpecifier(input)
			require.ErrorIs(t, err, domain.ErrInvalidSpecifier)
		})
	}
}

func TestSpecifier_Match(t *testing.T) {
	tests := []struct {
		spec      string
		candidate string
		want      bool
	}{
		{"==1.0", "1.0", true},
		{"==1.0", "1.0.0", true},
		{"==1.0", "1.0+local", true},
		{"==1.0+local", "1.0+local", true},
		{"==1.0+local", "1.0", false},
		{"==1.0", "1.0.1", false},
		{"!=1.0", "1.0.1", true},
		{"!=1.0", "1.0", false},
		{">=1.0", "1.0", true},
		{">=1.0", "0.9", false},
		{">1.0", "1.0", false},
		{">1.0", "1.0.post1", true},
		{"<2.0", "2.0.dev1", true},
		{"<2.0", "2.0", false},
		{"<=2.0", "2.0", true},
		{"==1.2.*", "1.2.9", true},
		{"==1.2.*", "1.3.0", false},
		{"!=1.2.*", "1.3.0", true},
		{"~=2.4", "2.5", true},
		{"~=2.4", "2.4", true},
		{"~=2.4", "3.0", false},
		{"~=1.4.5", "1.4.9", true},
		{"~=1.4.5", "1.5.0", false},
		{"===1.0", "1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec+" vs "+tt.candidate, func(t *testing.T) {
			spec, err := domain.ParseSpecifier(tt.spec)
			require.NoError(t, err)
			got := spec.Match(domain.MustParseVersion(tt.candidate))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecifierSet_RoundTrip(t *testing.T) {
	set, err := domain.ParseSpecifierSet(">=1.0, <2.0, !=1.5")
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, ">=1.0,<2.0,!=1.5", set.String())

	assert.True(t, set.Match(domain.MustParseVersion("1.4")))
	assert.False(t, set.Match(domain.MustParseVersion("1.5")))
	assert.False(t, set.Match(domain.MustParseVersion("2.0")))
}

func TestSpecifierSet_Empty(t *testing.T) {
	set, err := domain.ParseSpecifierSet("  ")
	require.NoError(t, err)
	assert.Nil(t, set)
	assert.True(t, set.Match(domain.MustParseVersion("1.0")))
	assert.False(t, set.Pinned())
}

func TestSpecifierSet_Pinned(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"==2.1.0", true},
		{"===2.1.0", true},
		{">=2.1.0", false},
		{"==1.2.*", false},
		{">=1.0,==1.4", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set, err := domain.ParseSpecifierSet(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Pinned())
		})
	}
}

func TestSpecifierSet_Contradictory(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"==1.0,==2.0", true},
		{"==1.0,>=2.0", true},
		{"==1.0,!=1.0", true},
		{">2,<1", true},
		{">=2,<2", true},
		{">2,<=2", true},
		{">=2,<=2", false},
		{">=1.0,<2.0", false},
		{"==1.5,>=1.0,<2.0", false},
		{"==1.0", false},
		{">=1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set, err := domain.ParseSpecifierSet(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Contradictory())
		})
	}
}
