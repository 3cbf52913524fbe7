// Package sqlite provides the public API for the SQLite engine.
// This package exposes the factory function for creating engine handles
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/realmbind/internal/sqlite"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// NewEngine creates a new SQLite engine handle on the pure Go driver.
// The engine is not initialized; call Initialize with the files directory.
//
// Example:
//
//	eng := sqlite.NewEngine()
//	err := eng.Initialize(types.InitParams{
//	    FilesDir: "/data/app/sandbox",
//	    DeviceIdentity: types.DeviceIdentity{
//	        Manufacturer: "Acme",
//	        Model:        "Z1",
//	        BundleID:     "com.acme.app",
//	    },
//	})
//	defer eng.Close()
func NewEngine() types.Engine {
	return sqlite.NewEngine(sqlite.DriverPure, types.DefaultLibrary)
}
