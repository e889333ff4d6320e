package buildsys

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// MkdirIfNotExists creates path unless it already exists. Unlike os.MkdirAll, it
// refuses to create missing parents.
func MkdirIfNotExists(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return eris.Wrapf(err, "Failed to resolve %s", path)
	}

	parent := filepath.Dir(absPath)
	info, err := os.Stat(parent)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return eris.Wrapf(ErrParentMissing, "Can't create %s because %s does not exist", path, parent)
		}
		return eris.Wrapf(err, "Failed to check %s", parent)
	}

	if !info.IsDir() {
		return eris.Errorf("%s is not a directory!", parent)
	}

	_, err = os.Stat(absPath)
	if err == nil {
		return nil
	}
	if !eris.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "Failed to check %s", absPath)
	}

	err = os.Mkdir(absPath, 0770)
	if err != nil && !eris.Is(err, os.ErrExist) {
		return eris.Wrapf(err, "Failed to create %s", absPath)
	}

	return nil
}
