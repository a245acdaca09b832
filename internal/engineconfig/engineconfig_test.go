package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "engine.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "focal_length": 8}`), 0644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, float32(8), p.FocalLength)
	assert.Equal(t, Default().PixelsPerUnit, p.PixelsPerUnit)

	cam := p.Camera()
	assert.InDelta(t, 1, cam.Perspective(cam.Position+8), 1e-6)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))
	p, err := LoadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	want := Default()
	want.ShowLineCount = true
	want.LineColor = "#00ff00"
	require.NoError(t, SaveTo(path, want))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
