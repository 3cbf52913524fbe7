package types

// DeviceIdentity is the static device description handed to the engine.
// It is fixed for the lifetime of the process.
type DeviceIdentity struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
	BundleID     string `json:"bundle_id" yaml:"bundle_id"`
}

// InitParams is the full argument set of the engine initialization entry
// point: the canonical files directory plus the device identity.
type InitParams struct {
	FilesDir string `json:"files_dir"`
	DeviceIdentity
}

// StorageContext is the host application's sandboxed storage. FilesDir
// returns the base directory the host grants to this process.
type StorageContext interface {
	FilesDir() (string, error)
}
