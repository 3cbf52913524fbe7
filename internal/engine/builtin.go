package engine

import (
	"github.com/mesh-intelligence/realmbind/internal/sqlite"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

func init() {
	RegisterLibrary(types.DefaultLibrary, func() (types.Engine, error) {
		return sqlite.NewEngine(sqlite.DriverPure, types.DefaultLibrary), nil
	})
}
