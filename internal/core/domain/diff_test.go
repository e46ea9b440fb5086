package domain_test

import (
	"testing"

	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	oldManifest := domain.NewManifest("old.txt")
	require.NoError(t, oldManifest.Add(requirementWithSpec(t, "elasticsearch", "==2.1.0")))
	require.NoError(t, oldManifest.Add(requirementWithSpec(t, "cairosvg", "==1.0.22")))
	require.NoError(t, oldManifest.Add(requirementWithSpec(t, "nose", ">=1.3")))

	newManifest := domain.NewManifest("new.txt")
	require.NoError(t, newManifest.Add(requirementWithSpec(t, "elasticsearch", "==2.4.0")))
	require.NoError(t, newManifest.Add(requirementWithSpec(t, "cairosvg", "==1.0.22")))
	require.NoError(t, newManifest.Add(requirementWithSpec(t, "pytest", ">=7")))

	changes := domain.Diff(oldManifest, newManifest)

	require.Len(t, changes.Added, 1)
	assert.Equal(t, "pytest", changes.Added[0].Name.String())

	require.Len(t, changes.Removed, 1)
	assert.Equal(t, "nose", changes.Removed[0].Name.String())

	require.Len(t, changes.Changed, 1)
	assert.Equal(t, domain.Change{
		Name: "elasticsearch",
		Old:  "==2.1.0",
		New:  "==2.4.0",
	}, changes.Changed[0])

	assert.False(t, changes.Empty())
}

func TestDiff_SpellingInsensitive(t *testing.T) {
	oldManifest := domain.NewManifest("old.txt")
	require.NoError(t, oldManifest.Add(requirementWithSpec(t, "Pillow_SIMD", "==9.0.0")))

	newManifest := domain.NewManifest("new.txt")
	require.NoError(t, newManifest.Add(requirementWithSpec(t, "pillow-simd", "==9.0.0")))

	changes := domain.Diff(oldManifest, newManifest)
	assert.True(t, changes.Empty())
}

func TestDiff_Empty(t *testing.T) {
	m := domain.NewManifest("requirements.txt")
	require.NoError(t, m.Add(requirementWithSpec(t, "flask", "==2.0.1")))

	changes := domain.Diff(m, m)
	assert.True(t, changes.Empty())
}
