package engine

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

var (
	errLibraryEmpty    = errors.New("library name must not be empty")
	errLibraryNotFound = errors.New("library not found")
)

// image is the cached outcome of loading one library.
type image struct {
	engine types.Engine
	err    error
}

// Loader binds libraries by name. It is safe for concurrent use.
type Loader struct {
	mu     sync.Mutex
	libs   map[string]OpenFunc
	loaded map[string]*image
}

// NewLoader creates a Loader that knows every library registered so far.
func NewLoader() *Loader {
	return &Loader{
		libs:   registered(),
		loaded: make(map[string]*image),
	}
}

// Register adds or replaces a library known to this loader only. It has no
// effect on a name that has already been loaded.
func (l *Loader) Register(name string, open OpenFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.libs[name] = open
}

// Load returns the engine handle for the named library, opening it on first
// use. Later loads of the same name return the same handle, or the same
// *types.NativeLoadError if the first load failed.
func (l *Loader) Load(name string) (types.Engine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.loaded[name]; ok {
		return img.engine, img.err
	}

	img := l.open(name)
	l.loaded[name] = img
	if img.err != nil {
		Logger().Error("native library load failed", zap.String("library", name), zap.Error(img.err))
	} else {
		Logger().Info("native library loaded", zap.String("library", name))
	}
	return img.engine, img.err
}

func (l *Loader) open(name string) (img *image) {
	if name == "" {
		return &image{err: &types.NativeLoadError{Library: name, Op: "load", Err: errLibraryEmpty}}
	}
	open, ok := l.libs[name]
	if !ok || open == nil {
		return &image{err: &types.NativeLoadError{Library: name, Op: "load", Err: errLibraryNotFound}}
	}

	defer func() {
		if r := recover(); r != nil {
			img = &image{err: &types.NativeLoadError{Library: name, Op: "load", Err: fmt.Errorf("panic: %v", r)}}
		}
	}()

	eng, err := open()
	if err != nil {
		return &image{err: &types.NativeLoadError{Library: name, Op: "load", Err: err}}
	}
	if eng == nil {
		return &image{err: &types.NativeLoadError{Library: name, Op: "load", Err: errors.New("library returned no engine")}}
	}
	return &image{engine: eng}
}

// Close closes every engine this loader has loaded. Failed loads are
// skipped. Close is process teardown; the loader keeps its cache so a later
// Load returns the closed handle rather than reopening the library.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	for name, img := range l.loaded {
		if img.engine == nil {
			continue
		}
		if err := img.engine.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
