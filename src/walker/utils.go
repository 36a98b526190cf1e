package walker

import (
	"fmt"
	"os"

	"github.com/illikainen/scaffold/src/utils"

	"github.com/illikainen/go-utils/src/errorx"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Mkdir creates a single directory level; missing parents are an error.
func Mkdir(fs afero.Fs, name string, mode os.FileMode) ([]string, error) {
	err := fs.Mkdir(name, mode)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return []string{fmt.Sprintf("%s: %s (%#o)", name, mode, mode)}, nil
}

// CreateFile opens name in append mode so that an existing file is never
// truncated, and writes data to it.  The returned diffs show the written
// content.
func CreateFile(fs afero.Fs, name string, data []byte, mode os.FileMode) (changes []string,
	diffs []string, err error) {
	f, err := fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, mode)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	defer errorx.Defer(f.Close, &err)

	if len(data) > 0 {
		n, err := f.Write(data)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		if n != len(data) {
			return nil, nil, errors.Errorf("%s: invalid write", name)
		}

		diffs, err = utils.DiffLines(nil, data)
		if err != nil {
			return nil, nil, err
		}
	}

	return []string{fmt.Sprintf("%s: wrote %d bytes", name, len(data))}, diffs, nil
}

func exists(fs afero.Fs, name string) (bool, error) {
	ok, err := afero.Exists(fs, name)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return ok, nil
}

// isEmptyDir reports whether the directory name has no entries.
func isEmptyDir(fs afero.Fs, name string) (bool, error) {
	stat, err := fs.Stat(name)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if !stat.IsDir() {
		return false, errors.Errorf("%s is not a directory", name)
	}

	empty, err := afero.IsEmpty(fs, name)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return empty, nil
}
