package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

var (
	errEmptyDir = errors.New("storage context returned an empty directory")
	errNotDir   = errors.New("not a directory")
	errNoCtx    = errors.New("no storage context")
)

// ResolveFilesDir asks sc for its base directory and returns the canonical
// form of it. Every failure, including one reported by sc itself, is a
// *types.PathResolutionError.
func ResolveFilesDir(sc types.StorageContext) (string, error) {
	if sc == nil {
		return "", &types.PathResolutionError{Err: errNoCtx}
	}
	dir, err := sc.FilesDir()
	if err != nil {
		return "", &types.PathResolutionError{Err: err}
	}
	return Canonicalize(dir)
}

// Canonicalize returns the absolute path of dir with symlinks and relative
// segments resolved. dir must exist and be a directory. Canonicalize only
// reads the filesystem, and applying it to its own result returns the same
// string.
func Canonicalize(dir string) (string, error) {
	if dir == "" {
		return "", &types.PathResolutionError{Err: errEmptyDir}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &types.PathResolutionError{Dir: dir, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &types.PathResolutionError{Dir: dir, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &types.PathResolutionError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &types.PathResolutionError{Dir: dir, Err: fmt.Errorf("%s: %w", resolved, errNotDir)}
	}

	return resolved, nil
}
