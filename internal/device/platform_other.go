//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package device

import (
	"runtime"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// FromPlatform reports GOOS as manufacturer and GOARCH as model.
func FromPlatform() (types.DeviceIdentity, error) {
	return types.DeviceIdentity{
		Manufacturer: runtime.GOOS,
		Model:        runtime.GOARCH,
	}, nil
}
