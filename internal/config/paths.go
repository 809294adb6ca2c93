package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for catalogd.
type Paths struct {
	// ConfigFile is the path to the config file (~/.catalogd/config.yaml).
	ConfigFile string

	// HomeDir is the catalogd home directory (~/.catalogd).
	HomeDir string
}

// DefaultPaths returns the default paths for catalogd.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	catalogdHome := filepath.Join(homeDir, ".catalogd")

	return &Paths{
		ConfigFile: filepath.Join(catalogdHome, "config.yaml"),
		HomeDir:    catalogdHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If CATALOGD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("CATALOGD_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetHomeDir returns the catalogd home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// EnsureHomeDir creates the catalogd home directory if it doesn't exist.
func EnsureHomeDir() error {
	homeDir, err := GetHomeDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(homeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
