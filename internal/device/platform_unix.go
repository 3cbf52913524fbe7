//go:build linux || darwin || freebsd || netbsd || openbsd

package device

import (
	"golang.org/x/sys/unix"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// FromPlatform reports the operating system name as manufacturer and the
// hardware name as model, as uname(2) returns them.
func FromPlatform() (types.DeviceIdentity, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return types.DeviceIdentity{}, err
	}
	return types.DeviceIdentity{
		Manufacturer: unix.ByteSliceToString(u.Sysname[:]),
		Model:        unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
