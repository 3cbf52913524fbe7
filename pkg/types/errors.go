package types

import (
	"errors"
	"fmt"
)

// Plugin lifecycle errors.
var (
	ErrAlreadyAttached = errors.New("plugin is already attached")
	ErrDetached        = errors.New("plugin is detached")
)

// Engine errors.
var (
	ErrPathResolution       = errors.New("path resolution failed")
	ErrNativeLoad           = errors.New("native library load failed")
	ErrEngineInitialized    = errors.New("engine is already initialized")
	ErrEngineNotInitialized = errors.New("engine is not initialized")
	ErrEngineClosed         = errors.New("engine is closed")
	ErrLibraryMismatch      = errors.New("process engine was initialized from another library")
)

// Channel errors.
var (
	ErrUnimplemented = errors.New("method not implemented")
	ErrNoHandler     = errors.New("no handler registered for channel")
	ErrChannelEmpty  = errors.New("channel name must not be empty")
	ErrMalformed     = errors.New("malformed channel message")
)

// PathResolutionError reports that a storage directory could not be turned
// into a canonical path. It matches ErrPathResolution.
type PathResolutionError struct {
	Dir string
	Err error
}

func (e *PathResolutionError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("resolve files dir: %v", e.Err)
	}
	return fmt.Sprintf("resolve files dir %q: %v", e.Dir, e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

func (e *PathResolutionError) Is(target error) bool { return target == ErrPathResolution }

// NativeLoadError reports that a native library could not be loaded or that
// its initialization entry point failed. It matches ErrNativeLoad.
type NativeLoadError struct {
	Library string
	Op      string
	Err     error
}

func (e *NativeLoadError) Error() string {
	if e.Library == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Library, e.Err)
}

func (e *NativeLoadError) Unwrap() error { return e.Err }

func (e *NativeLoadError) Is(target error) bool { return target == ErrNativeLoad }
