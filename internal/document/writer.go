package document

import (
	"fmt"
	"path/filepath"

	"github.com/rafa3127/MCP-shared-Config/internal/platform"
	"github.com/spf13/afero"
)

// WriteResult describes what Write did.
type WriteResult struct {
	Path       string
	CreatedDir string // set when the parent directory had to be created
}

// Write stores data at path, replacing any previous file. The parent
// directory is created when missing. The file is readable by its owner
// only because fragments may carry tokens.
func Write(fs afero.Fs, path string, data []byte) (*WriteResult, error) {
	dir := filepath.Dir(path)
	created, err := platform.EnsureDir(fs, dir)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(fs, path, data, platform.FilePermSecure); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := platform.Chmod(fs, path, platform.FilePermSecure); err != nil {
		return nil, fmt.Errorf("securing %s: %w", path, err)
	}

	res := &WriteResult{Path: path}
	if created {
		res.CreatedDir = dir
	}
	return res, nil
}
