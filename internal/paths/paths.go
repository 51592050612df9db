package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "nlink"

// AppDataDir returns the directory holding the database and log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// NLINK_HOME overrides the location.
func AppDataDir() string {
	if dir := os.Getenv("NLINK_HOME"); dir != "" {
		_ = os.MkdirAll(dir, 0700)
		return dir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns ~/.nlinkrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".nlinkrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "nlink.log")
}

// DBPath returns the path to the SQLite database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "nlink.db")
}
