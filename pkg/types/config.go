package types

import "errors"

// Config holds the library selection and identity overrides used when a host
// attaches the realm plugin.
type Config struct {
	Library      string `json:"library" yaml:"library"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	AppDirName   string `json:"app_dir_name" yaml:"app_dir_name"`
	BundleID     string `json:"bundle_id" yaml:"bundle_id"`
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
}

// Defaults matching the values baked into the platform plugins.
const (
	DefaultLibrary    = "realm_dart"
	DefaultAppDirName = "realm_app"
	DefaultBundleID   = "realm_bundle_id"

	// ChannelName is the plugin message channel registered on attach.
	ChannelName = "realm"
)

// Config validation errors.
var (
	ErrLibraryEmpty      = errors.New("library must not be empty")
	ErrAppDirNameInvalid = errors.New("app dir name must be a single path element")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Empty identity fields are valid; they fall
// back to generated or platform values.
func (c Config) Validate() error {
	if c.Library == "" {
		return ErrLibraryEmpty
	}
	if c.AppDirName != "" && !isSingleElement(c.AppDirName) {
		return ErrAppDirNameInvalid
	}
	return nil
}

func isSingleElement(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		if r == '/' || r == '\\' {
			return false
		}
	}
	return true
}
