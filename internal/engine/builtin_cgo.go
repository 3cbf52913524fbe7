//go:build cgo

package engine

import (
	"github.com/mesh-intelligence/realmbind/internal/sqlite"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// LibraryCgo is the engine built on the SQLite C library. It is only present
// in cgo builds.
const LibraryCgo = "realm_dart_cgo"

func init() {
	RegisterLibrary(LibraryCgo, func() (types.Engine, error) {
		return sqlite.NewEngine(sqlite.DriverCgo, LibraryCgo), nil
	})
}
