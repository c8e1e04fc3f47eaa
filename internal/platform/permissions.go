package platform

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// Permission constants for generated files.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermSecure os.FileMode = 0600
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(fs afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fs.Chmod(path, mode)
}

// EnsureDir creates dir and its parents when missing. It reports whether
// anything was created.
func EnsureDir(fs afero.Fs, dir string) (bool, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return false, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if exists {
		return false, nil
	}
	if err := fs.MkdirAll(dir, DirPermNormal); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return true, nil
}
