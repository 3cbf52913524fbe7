package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

var errNilEngine = errors.New("no engine handle")

// Initializer runs the engine initialization entry point at most once.
// The zero value is ready to use. An Initializer must not be copied after
// first use.
type Initializer struct {
	once   sync.Once
	state  atomic.Int32
	err    error
	params types.InitParams
}

// Initialize invokes eng.Initialize(params) on the first call and returns its
// result. Every later call returns that same result without touching any
// engine. A failure from the entry point is wrapped in *types.NativeLoadError
// and is not retried.
func (i *Initializer) Initialize(eng types.Engine, params types.InitParams) error {
	first := false
	i.once.Do(func() {
		first = true
		i.params = params
		i.err = run(eng, params)
		if i.err != nil {
			i.state.Store(int32(types.StateFailed))
			return
		}
		i.state.Store(int32(types.StateInitialized))
	})

	if !first {
		if params != i.params {
			Logger().Warn("engine initialization repeated with different parameters; keeping the first",
				zap.String("files_dir", i.params.FilesDir),
				zap.String("ignored_files_dir", params.FilesDir))
		} else {
			Logger().Debug("engine already initialized", zap.String("files_dir", i.params.FilesDir))
		}
	}
	return i.err
}

func run(eng types.Engine, params types.InitParams) (err error) {
	if eng == nil {
		return &types.NativeLoadError{Op: "initialize", Err: errNilEngine}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &types.NativeLoadError{Op: "initialize", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := eng.Initialize(params); err != nil {
		return &types.NativeLoadError{Op: "initialize", Err: err}
	}

	Logger().Info("engine initialized",
		zap.String("files_dir", params.FilesDir),
		zap.String("manufacturer", params.Manufacturer),
		zap.String("model", params.Model),
		zap.String("bundle_id", params.BundleID))
	return nil
}

// State reports the initialization state.
func (i *Initializer) State() types.InitState {
	return types.InitState(i.state.Load())
}

// Params returns the parameters the engine was initialized with. ok is false
// until initialization has succeeded.
func (i *Initializer) Params() (params types.InitParams, ok bool) {
	if i.State() != types.StateInitialized {
		return types.InitParams{}, false
	}
	return i.params, true
}
