package domain_test

import (
	"testing"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternedString_Identity(t *testing.T) {
	a := domain.NewInternedString("requirements.txt")
	b := domain.NewInternedString("requirements.txt")
	c := domain.NewInternedString("dev.txt")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "requirements.txt", a.String())
}

func TestInternedString_ZeroValue(t *testing.T) {
	var zero domain.InternedString
	assert.Equal(t, "", zero.String())
}

func TestInternedString_TextRoundTrip(t *testing.T) {
	orig := domain.NewInternedString("flask")

	text, err := orig.MarshalText()
	require.NoError(t, err)

	var decoded domain.InternedString
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, orig, decoded)
}
