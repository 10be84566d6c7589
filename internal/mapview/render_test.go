package mapview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnav/internal/geo"
	"wellnav/internal/places"
)

func TestRenderWritesSingleArtifact(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	center := geo.Coordinates{Latitude: 52.53, Longitude: 13.38}
	facilities := []places.Facility{
		{Name: "Charite", Latitude: 52.54, Longitude: 13.39},
		{Name: "St. Mary", Latitude: 52.55, Longitude: 13.40},
	}

	path, err := r.Render(center, facilities, "10115, Germany")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ArtifactName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Charite")
	assert.Contains(t, string(content), "St. Mary")
	assert.Contains(t, string(content), "10115, Germany")
	assert.Contains(t, string(content), "leaflet")
}

func TestRenderIsIdempotentOnRepeatedInput(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	center := geo.Coordinates{Latitude: 1, Longitude: 2}
	facilities := []places.Facility{{Name: "Clinic", Latitude: 1.1, Longitude: 2.1}}

	_, err := r.Render(center, facilities, "somewhere")
	require.NoError(t, err)
	_, err = r.Render(center, facilities, "somewhere")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ArtifactName, entries[0].Name())
}

func TestRenderCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static")
	r := NewRenderer(dir)

	_, err := r.Render(geo.Coordinates{}, nil, "origin")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ArtifactName))
	assert.NoError(t, err)
}
