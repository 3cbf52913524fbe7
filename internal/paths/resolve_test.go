package paths

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// realTempDir returns t.TempDir with symlinks resolved (macOS /var is a link).
func realTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

type failingContext struct{ err error }

func (c failingContext) FilesDir() (string, error) { return "", c.err }

func TestCanonicalize(t *testing.T) {
	root := realTempDir(t)
	sandbox := filepath.Join(root, "data", "app", "sandbox")
	require.NoError(t, os.MkdirAll(sandbox, 0o755))

	t.Run("relative segments are removed", func(t *testing.T) {
		got, err := Canonicalize(filepath.Join(root, "data", "app", "..", "app", ".", "sandbox"))
		require.NoError(t, err)
		assert.Equal(t, sandbox, got)
		assert.True(t, filepath.IsAbs(got))
		assert.NotContains(t, got, "..")
	})

	t.Run("symlinks are resolved", func(t *testing.T) {
		link := filepath.Join(root, "link")
		require.NoError(t, os.Symlink(sandbox, link))

		got, err := Canonicalize(link)
		require.NoError(t, err)
		assert.Equal(t, sandbox, got)
	})

	t.Run("relative input becomes absolute", func(t *testing.T) {
		t.Chdir(filepath.Join(root, "data"))
		got, err := Canonicalize("app/sandbox")
		require.NoError(t, err)
		assert.Equal(t, sandbox, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := Canonicalize(filepath.Join(sandbox, "..", "sandbox"))
		require.NoError(t, err)
		twice, err := Canonicalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}

func TestCanonicalize_Errors(t *testing.T) {
	root := realTempDir(t)

	t.Run("missing directory", func(t *testing.T) {
		_, err := Canonicalize(filepath.Join(root, "missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrPathResolution)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("deleted before resolution", func(t *testing.T) {
		dir := filepath.Join(root, "gone")
		require.NoError(t, os.Mkdir(dir, 0o755))
		require.NoError(t, os.Remove(dir))

		_, err := Canonicalize(dir)
		assert.ErrorIs(t, err, types.ErrPathResolution)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := Canonicalize(file)
		assert.ErrorIs(t, err, types.ErrPathResolution)
		assert.ErrorIs(t, err, errNotDir)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Canonicalize("")
		assert.ErrorIs(t, err, types.ErrPathResolution)
	})
}

func TestResolveFilesDir(t *testing.T) {
	root := realTempDir(t)

	t.Run("existing directory", func(t *testing.T) {
		got, err := ResolveFilesDir(DirContext{Dir: root})
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("context error is a path resolution error", func(t *testing.T) {
		cause := errors.New("sandbox unavailable")
		_, err := ResolveFilesDir(failingContext{err: cause})
		assert.ErrorIs(t, err, types.ErrPathResolution)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil context", func(t *testing.T) {
		_, err := ResolveFilesDir(nil)
		assert.ErrorIs(t, err, types.ErrPathResolution)
	})

	t.Run("resolver does not create the directory", func(t *testing.T) {
		dir := filepath.Join(root, "not-created")
		_, err := ResolveFilesDir(DirContext{Dir: dir})
		assert.ErrorIs(t, err, types.ErrPathResolution)
		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestDirContext(t *testing.T) {
	root := realTempDir(t)
	dir := filepath.Join(root, "a", "b")

	got, err := DirContext{Dir: dir, Create: true}.FilesDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	resolved, err := ResolveFilesDir(DirContext{Dir: dir})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(resolved, filepath.Join("a", "b")))
}
