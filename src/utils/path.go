package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"
)

// JoinPath joins sub onto base and rejects results outside of base.  An HCL
// body is resolved relative to the directory of the file it was parsed from.
func JoinPath[T *hclsyntax.Body | string](base T, sub string) (string, error) {
	var basedir string

	switch b := any(base).(type) {
	case *hclsyntax.Body:
		basedir = filepath.Dir(b.SrcRange.Filename)
	case string:
		basedir = b
	default:
		return "", errors.Errorf("invalid type for %v", base)
	}

	basedir, err := filepath.Abs(basedir)
	if err != nil {
		return "", errors.WithStack(err)
	}

	path, err := filepath.Abs(filepath.Join(basedir, sub))
	if err != nil {
		return "", errors.WithStack(err)
	}

	if !strings.HasPrefix(path+string(os.PathSeparator), basedir+string(os.PathSeparator)) {
		return "", errors.Errorf("%s is outside of %s", sub, basedir)
	}

	return path, nil
}
