package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyLibrary      = "library"
	cfgKeyDataDir      = "data_dir"
	cfgKeyAppDirName   = "app_dir_name"
	cfgKeyBundleID     = "bundle_id"
	cfgKeyManufacturer = "manufacturer"
	cfgKeyModel        = "model"
	cfgKeyLogLevel     = "log_level"

	// Flags bound to config keys.
	flagLibrary  = "library"
	flagLogLevel = "log-level"

	envLogLevel     = "REALMBIND_LOG_LEVEL"
	defaultLogLevel = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# realmbind configuration

# Engine library to load
library: realm_dart

# App files directory (optional; overridable by --data-dir flag)
# data_dir:

# Identity overrides (optional; default to generated config and platform)
# app_dir_name:
# bundle_id:
# manufacturer:
# model:

# Log level: debug, info, warn, error
log_level: warn
`

// loadConfig reads config.yaml from configDir using Viper and binds the
// flags in fs that map to config keys. It creates the config directory and a
// default config.yaml on first run. A missing config.yaml is not an error.
func loadConfig(configDir string, fs *pflag.FlagSet) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLibrary, types.DefaultLibrary)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyLogLevel, envLogLevel); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if fs != nil {
		for key, name := range map[string]string{cfgKeyLibrary: flagLibrary, cfgKeyLogLevel: flagLogLevel} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// configFromViper extracts the plugin Config and validates it.
func configFromViper(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Library:      v.GetString(cfgKeyLibrary),
		DataDir:      v.GetString(cfgKeyDataDir),
		AppDirName:   v.GetString(cfgKeyAppDirName),
		BundleID:     v.GetString(cfgKeyBundleID),
		Manufacturer: v.GetString(cfgKeyManufacturer),
		Model:        v.GetString(cfgKeyModel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
