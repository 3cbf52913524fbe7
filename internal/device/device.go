// Package device sources the static device identity handed to the engine:
// manufacturer and model from the host platform, bundle id from the
// build-time generated config, each overridable from configuration.
package device

import "github.com/mesh-intelligence/realmbind/pkg/types"

// Resolve merges the identity sources. For each field the first non-empty
// value wins: cfg, then gen (bundle id only), then platform. The bundle id
// falls back to types.DefaultBundleID.
func Resolve(cfg types.Config, gen Generated, platform types.DeviceIdentity) types.DeviceIdentity {
	return types.DeviceIdentity{
		Manufacturer: firstNonEmpty(cfg.Manufacturer, platform.Manufacturer),
		Model:        firstNonEmpty(cfg.Model, platform.Model),
		BundleID:     firstNonEmpty(cfg.BundleID, gen.BundleID, types.DefaultBundleID),
	}
}

// AppDirName picks the application directory name: cfg, then gen, then
// types.DefaultAppDirName.
func AppDirName(cfg types.Config, gen Generated) string {
	return firstNonEmpty(cfg.AppDirName, gen.AppDirName, types.DefaultAppDirName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
