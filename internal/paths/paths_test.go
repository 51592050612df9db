package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
}

func TestAppDataDir_Override(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("NLINK_HOME", dir)

	require.Equal(t, dir, AppDataDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestAppDataDir_ContainsAppName(t *testing.T) {
	t.Setenv("NLINK_HOME", "")
	dir := AppDataDir()
	if dir == "." {
		t.Skip("no user config dir available")
	}
	require.True(t, strings.HasSuffix(dir, "nlink"), "AppDataDir should end with 'nlink': %s", dir)
}

func TestFilePaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NLINK_HOME", dir)

	require.Equal(t, filepath.Join(dir, "nlink.log"), LogFilePath())
	require.Equal(t, filepath.Join(dir, "nlink.db"), DBPath())
}

func TestConfigFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".nlinkrc"), path)
}
