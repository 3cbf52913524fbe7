package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathResolutionError(t *testing.T) {
	err := fmt.Errorf("attach: %w", &PathResolutionError{Dir: "/data/app/sandbox", Err: fs.ErrNotExist})

	assert.ErrorIs(t, err, ErrPathResolution)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrNativeLoad)
	assert.Contains(t, err.Error(), `"/data/app/sandbox"`)

	var pre *PathResolutionError
	assert.True(t, errors.As(err, &pre))
	assert.Equal(t, "/data/app/sandbox", pre.Dir)
}

func TestNativeLoadError(t *testing.T) {
	cause := errors.New("no such library")
	err := &NativeLoadError{Library: "realm_dart", Op: "load", Err: cause}

	assert.ErrorIs(t, err, ErrNativeLoad)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPathResolution)
	assert.Equal(t, "load realm_dart: no such library", err.Error())
}

func TestCallError(t *testing.T) {
	assert.Equal(t, "method call failed: bad_args", (&CallError{Code: "bad_args"}).Error())
	assert.Equal(t, "method call failed: bad_args: want object",
		(&CallError{Code: "bad_args", Message: "want object"}).Error())
}

func TestInitStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", InitState(42).String())
}

func TestNativeLoadError_NoLibrary(t *testing.T) {
	err := &NativeLoadError{Op: "initialize", Err: errors.New("bad path")}
	assert.Equal(t, "initialize: bad path", err.Error())
}
