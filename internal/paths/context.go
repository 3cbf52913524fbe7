package paths

import (
	"fmt"
	"os"
)

// DirContext is a StorageContext backed by a fixed directory. It plays the
// host side of the contract: when Create is set, FilesDir creates the sandbox
// directory the way a platform creates an app's files dir on first access.
type DirContext struct {
	Dir    string
	Create bool
}

// FilesDir returns the sandbox directory, creating it first if c.Create is set.
func (c DirContext) FilesDir() (string, error) {
	if c.Create && c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o750); err != nil {
			return "", fmt.Errorf("create files dir: %w", err)
		}
	}
	return c.Dir, nil
}
