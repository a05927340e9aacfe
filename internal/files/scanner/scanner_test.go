package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
}

func TestDiscover_ExplicitArgs(t *testing.T) {
	// Arguments pass through untouched, existing or not; readability is
	// checked per file later.
	files, err := Discover([]string{"b.hwdb", "a.hwdb"}, "/unused", "*.hwdb")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.hwdb", "a.hwdb"}, files)
}

func TestDiscover_DefaultGlob(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "70-mouse.hwdb")
	touch(t, dir, "60-sensor.hwdb")
	touch(t, dir, "70-touchpad.hwdb")
	touch(t, dir, "99-local.hwdb") // outside the [67] priority range
	touch(t, dir, "README")

	files, err := Discover(nil, dir, hwdbcheck.DefaultFileGlob)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "60-sensor.hwdb"),
		filepath.Join(dir, "70-mouse.hwdb"),
		filepath.Join(dir, "70-touchpad.hwdb"),
	}
	assert.Equal(t, want, files, "sorted, glob-filtered")
}

func TestDiscover_NothingMatches(t *testing.T) {
	_, err := Discover(nil, t.TempDir(), hwdbcheck.DefaultFileGlob)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hwdbcheck.ErrNoInputFiles))
}

func TestDiscover_BadGlob(t *testing.T) {
	_, err := Discover(nil, t.TempDir(), "[")
	require.Error(t, err)
	assert.True(t, errors.Is(err, hwdbcheck.ErrInvalidConfig))
}
