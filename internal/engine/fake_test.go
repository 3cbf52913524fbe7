package engine

import (
	"errors"
	"sync"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// recordingEngine counts entry point calls and records their arguments.
type recordingEngine struct {
	mu      sync.Mutex
	calls   []types.InitParams
	initErr error
	panicV  any
	closed  int
}

func (e *recordingEngine) Initialize(params types.InitParams) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, params)
	if e.panicV != nil {
		panic(e.panicV)
	}
	return e.initErr
}

func (e *recordingEngine) Info() (types.EngineInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.calls) == 0 {
		return types.EngineInfo{}, types.ErrEngineNotInitialized
	}
	return types.EngineInfo{FilesPath: e.calls[0].FilesDir, Identity: e.calls[0].DeviceIdentity}, nil
}

func (e *recordingEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed++
	return nil
}

func (e *recordingEngine) Calls() []types.InitParams {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]types.InitParams(nil), e.calls...)
}

var errBoom = errors.New("boom")
