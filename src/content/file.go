package content

import (
	"context"
	"path/filepath"

	"github.com/illikainen/go-utils/src/iofs"
	"github.com/pkg/errors"
)

type FileFetcher struct {
	base string
}

// Relative paths are resolved against base.
func NewFileFetcher(base string) *FileFetcher {
	return &FileFetcher{base: base}
}

func (f *FileFetcher) Fetch(_ context.Context, value string) ([]byte, error) {
	path := value
	if !filepath.IsAbs(path) {
		var err error
		path, err = filepath.Abs(filepath.Join(f.base, value))
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return iofs.ReadFile(path)
}
