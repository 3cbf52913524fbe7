package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// OpenFunc produces a fresh engine handle for a library. It is the analog of
// mapping a shared library image into the process.
type OpenFunc func() (types.Engine, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]OpenFunc)
)

// RegisterLibrary makes a library available to every Loader created after the
// call. It panics if open is nil or name is already registered.
func RegisterLibrary(name string, open OpenFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if open == nil {
		panic("engine: RegisterLibrary open is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("engine: RegisterLibrary called twice for %q", name))
	}
	registry[name] = open
}

// Libraries returns the sorted names of all registered libraries.
func Libraries() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registered() map[string]OpenFunc {
	registryMu.RLock()
	defer registryMu.RUnlock()

	libs := make(map[string]OpenFunc, len(registry))
	for name, open := range registry {
		libs[name] = open
	}
	return libs
}
