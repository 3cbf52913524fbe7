// Package plugin implements the realm host plugin: the attach and detach
// lifecycle a host runtime drives, and the process-level state that keeps
// engine initialization to one call per process.
package plugin

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/internal/engine"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// Process is the per-process plugin state. Every plugin attached within a
// process shares one Process, so however many hosts attach, the engine is
// loaded once per library and initialized once.
type Process struct {
	loader *engine.Loader
	init   engine.Initializer
	logger *zap.Logger

	mu      sync.Mutex
	library string // library that owns initialization; set by the first attempt
}

// Option configures a Process.
type Option func(*Process)

// WithLogger sets the logger used by the process and its plugins.
func WithLogger(l *zap.Logger) Option {
	return func(p *Process) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithLoader replaces the library loader.
func WithLoader(l *engine.Loader) Option {
	return func(p *Process) {
		if l != nil {
			p.loader = l
		}
	}
}

// NewProcess creates the process state with the built-in libraries.
func NewProcess(opts ...Option) *Process {
	p := &Process{
		loader: engine.NewLoader(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State reports the engine initialization state.
func (p *Process) State() types.InitState {
	return p.init.State()
}

// FilesPath returns the files directory the engine was initialized with, or
// "" before initialization succeeds.
func (p *Process) FilesPath() string {
	params, ok := p.init.Params()
	if !ok {
		return ""
	}
	return params.FilesDir
}

// Library returns the library the process engine is initialized from, or ""
// before any plugin attempted initialization.
func (p *Process) Library() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.library
}

// initialize runs the one-shot engine initialization for library. The first
// library to get here owns the process engine; any other library fails with
// a *types.NativeLoadError matching types.ErrLibraryMismatch, since its
// handle would never be initialized.
func (p *Process) initialize(library string, eng types.Engine, params types.InitParams) error {
	p.mu.Lock()
	if p.library == "" {
		p.library = library
	}
	owner := p.library
	p.mu.Unlock()

	if owner != library {
		return &types.NativeLoadError{
			Library: library,
			Op:      "initialize",
			Err:     fmt.Errorf("%w: %s", types.ErrLibraryMismatch, owner),
		}
	}
	return p.init.Initialize(eng, params)
}

// Engine returns the loaded engine handle for library.
func (p *Process) Engine(library string) (types.Engine, error) {
	return p.loader.Load(library)
}

// Close tears the process down, closing every loaded engine.
func (p *Process) Close() error {
	return p.loader.Close()
}
