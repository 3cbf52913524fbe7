package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// Location of the generated identity config under the config directory.
const (
	GeneratedDirName  = "realm-generated"
	GeneratedFileName = "realm_config.yaml"
)

const generatedHeader = "# Code generated by realmbind generate. DO NOT EDIT.\n"

// Generated is the build-time identity configuration of an application.
type Generated struct {
	BundleID   string `yaml:"bundle_id"`
	AppDirName string `yaml:"app_dir_name"`
}

// DefaultGenerated returns the values used when no config was generated.
func DefaultGenerated() Generated {
	return Generated{
		BundleID:   types.DefaultBundleID,
		AppDirName: types.DefaultAppDirName,
	}
}

// GeneratedPath returns the generated config path for configDir.
func GeneratedPath(configDir string) string {
	return filepath.Join(configDir, GeneratedDirName, GeneratedFileName)
}

// LoadGenerated reads the generated config at path. A missing file yields
// DefaultGenerated. Empty fields in the file keep their defaults.
func LoadGenerated(path string) (Generated, error) {
	gen := DefaultGenerated()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return gen, nil
	}
	if err != nil {
		return Generated{}, fmt.Errorf("read generated config: %w", err)
	}

	var file Generated
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Generated{}, fmt.Errorf("parse generated config: %w", err)
	}
	if file.BundleID != "" {
		gen.BundleID = file.BundleID
	}
	if file.AppDirName != "" {
		gen.AppDirName = file.AppDirName
	}
	return gen, nil
}

// MarshalGenerated renders gen as the generated config file content.
func MarshalGenerated(gen Generated) ([]byte, error) {
	data, err := yaml.Marshal(&gen)
	if err != nil {
		return nil, fmt.Errorf("marshal generated config: %w", err)
	}
	return append([]byte(generatedHeader), data...), nil
}

// WriteGenerated writes gen to path, creating parent directories.
func WriteGenerated(path string, gen Generated) error {
	data, err := MarshalGenerated(gen)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create generated config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
