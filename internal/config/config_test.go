package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/state"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), configFile)
	data := "Width = 640\nDebug = false\nPointerKind = \"finger\"\nLogLevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(640, conf.Width)
	assert.Equal(768, conf.Height)
	assert.False(conf.Debug)
	assert.Equal(state.Finger, conf.Pointer())
	assert.Equal(state.Stylus, conf.Primary())
	assert.Equal(slog.LevelDebug, conf.Level())
}

func TestLoad_Rejects(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"syntax": "Width = [",
		"size":   "Width = -1",
		"kind":   "PrimaryKind = \"pen\"",
		"level":  "LogLevel = \"loud\"",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkboard", configFile)
	conf := Default()
	conf.Scale = 3
	conf.EstimateForce = true
	require.NoError(t, Save(path, conf))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf, got)
}

func TestPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/inkboard/config.toml", Path())
}
