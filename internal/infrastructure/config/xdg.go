package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "flashmark"
	databaseName = "flashmark.sqlite"
	configName   = "config.toml"
	lockName     = "flashmark.lock"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for flashmark:
// - $XDG_CONFIG_HOME/flashmark (default: ~/.config/flashmark)
// - $XDG_DATA_HOME/flashmark (default: ~/.local/share/flashmark)
// - $XDG_STATE_HOME/flashmark (default: ~/.local/state/flashmark)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the XDG config directory for flashmark.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for flashmark.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for flashmark.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. Logs live under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetLockFile returns the path of the daemon lock file.
func GetLockFile() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, lockName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configName), nil
}

// GetDatabaseFile returns the path to the database file in the data directory.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// GetManDir returns the user man page directory for section 1.
func GetManDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), "man", "man1"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
