package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `hwdb_dir: ./hwdb.d
file_glob: "*.hwdb"
keycodes: /tmp/input-event-codes.h
color: never
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "./hwdb.d", cfg.HwdbDir)
	assert.Equal(t, "*.hwdb", cfg.FileGlob)
	assert.Equal(t, "/tmp/input-event-codes.h", cfg.Keycodes)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hwdb_dir: ./hwdb.d\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "./hwdb.d", cfg.HwdbDir)
	assert.Equal(t, hwdbcheck.DefaultFileGlob, cfg.FileGlob)
	assert.Equal(t, hwdbcheck.DefaultKeycodesPath, cfg.Keycodes)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hwdb_dir: [\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hwdbcheck.ErrInvalidConfig))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HWDBCHECK_HWDB_DIR", "/srv/hwdb.d")
	t.Setenv("HWDBCHECK_KEYCODES", "/srv/keys.list")
	t.Setenv("HWDBCHECK_COLOR", "always")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/srv/hwdb.d", cfg.HwdbDir)
	assert.Equal(t, "/srv/keys.list", cfg.Keycodes)
	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, hwdbcheck.DefaultFileGlob, cfg.FileGlob, "unset vars leave fields alone")
}

func TestValidate_Color(t *testing.T) {
	for _, ok := range []string{"", "auto", "always", "never"} {
		cfg := Default()
		cfg.Color = ok
		assert.NoError(t, cfg.Validate(), ok)
	}

	cfg := Default()
	cfg.Color = "rainbow"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hwdbcheck.ErrInvalidConfig))
}
