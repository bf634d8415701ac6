package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "wring"
	databaseName = "wring.db"

	dirPerm  = 0755
	filePerm = 0644
)

// appDirs resolves the application's config and data directories under
// the XDG base directories. ENV=dev redirects both into a .dev
// directory under the working tree so development builds never touch
// the real ones.
func appDirs() (configDir, dataDir string, err error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return dev, dev, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	configDir = appDir("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir = appDir("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	return configDir, dataDir, nil
}

// appDir reads one XDG base directory variable, falls back when it is
// unset, and appends the app name.
func appDir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		base = fallback
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the directory config.toml lives in, normally
// ~/.config/wring.
func GetConfigDir() (string, error) {
	dir, _, err := appDirs()
	return dir, err
}

// GetConfigFile returns the full path of the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetDatabaseFile returns the full path of the snapshot database.
// Snapshots are user data, so they live under XDG_DATA_HOME rather
// than state or cache.
func GetDatabaseFile() (string, error) {
	_, dir, err := appDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}

// EnsureDirectories creates the application directories on first run.
func EnsureDirectories() error {
	configDir, dataDir, err := appDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{configDir, dataDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
