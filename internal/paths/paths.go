// Package paths resolves configuration and data directory locations and
// turns host storage directories into canonical storage roots.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// configDirName is the directory under the platform config home that holds
// config.yaml and the generated identity config.
const configDirName = "realmbind"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "REALMBIND_CONFIG_DIR"
	EnvDataDir   = "REALMBIND_DATA_DIR"
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
// Linux:   $XDG_CONFIG_HOME/realmbind (fallback ~/.config/realmbind)
// macOS:   ~/Library/Application Support/realmbind
// Windows: %APPDATA%/realmbind
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, configDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", configDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, configDirName), nil
	}
}

// DefaultDataDir returns the platform application data directory for
// appDirName. An empty appDirName selects types.DefaultAppDirName.
//
// Linux:   $XDG_DATA_HOME/<app> (fallback ~/.local/share/<app>)
// macOS:   ~/Library/Application Support/<app>
// Windows: %APPDATA%/<app> (the roaming app data folder)
func DefaultDataDir(appDirName string) (string, error) {
	if appDirName == "" {
		appDirName = types.DefaultAppDirName
	}
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > REALMBIND_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > REALMBIND_DATA_DIR env > DefaultDataDir(appDirName).
//
// The result is absolute but not canonical; the directory may not exist yet.
// Canonicalize runs once the host has created it.
func ResolveDataDir(flag, configYAMLValue, appDirName string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir(appDirName)
}
