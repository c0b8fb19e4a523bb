// Package paths resolves the configuration directory and the layout file
// the CLI reads.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default names, relative to the platform config directory and the CWD.
const (
	AppDirName        = "zoo"
	DefaultLayoutName = "zoo.yaml"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "ZOO_CONFIG_DIR"
	EnvLayout    = "ZOO_LAYOUT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/zoo (fallback ~/.config/zoo)
// macOS:   ~/Library/Application Support/zoo
// Windows: %APPDATA%/zoo
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ZOO_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveLayoutPath returns the layout file following the precedence chain:
// flag > ZOO_LAYOUT env > config.yaml layout value > $(CWD)/zoo.yaml.
//
// A relative config value is taken relative to configDir, so a config
// directory can ship with its layout next to it.
func ResolveLayoutPath(flag, configValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvLayout); env != "" {
		return filepath.Abs(env)
	}
	if configValue != "" {
		if filepath.IsAbs(configValue) || configDir == "" {
			return filepath.Abs(configValue)
		}
		return filepath.Join(configDir, configValue), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultLayoutName), nil
}
