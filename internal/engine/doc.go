// Package engine binds native engine libraries by name and performs the
// one-time engine initialization handshake.
//
// A Loader turns a library name into an explicit types.Engine handle. Loads
// are cached per name; a failed load is remembered and never retried,
// because a missing or corrupt library does not fix itself.
//
//	loader := engine.NewLoader()
//	eng, err := loader.Load(types.DefaultLibrary)
//	if err != nil {
//	    return err // *types.NativeLoadError
//	}
//
// An Initializer guards the engine's initialization entry point so that it
// runs at most once, however many hosts trigger startup:
//
//	var init engine.Initializer
//	err = init.Initialize(eng, types.InitParams{FilesDir: dir, DeviceIdentity: id})
//
// Concurrent callers block until the first call finishes and all observe its
// result.
package engine
