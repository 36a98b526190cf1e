package blueprint

import (
	"context"
	"path/filepath"

	"github.com/illikainen/scaffold/src/outputs"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Apply materializes the structure document below every root.  Roots are
// independent projects and are applied concurrently; the first failure
// cancels the remaining ones but already created entries are kept.
func Apply(ctx context.Context, opts *Options) (outputs.Outputs, error) {
	if len(opts.Roots) == 0 {
		return nil, errors.Errorf("no root to apply %s on", opts.Path)
	}

	roots := lo.Map(opts.Roots, func(root string, _ int) string {
		return filepath.Clean(root)
	})
	if dups := lo.FindDuplicates(roots); len(dups) > 0 {
		return nil, errors.Errorf("%s is specified more than once", dups[0])
	}

	bp := NewBlueprint(opts)
	if err := bp.Decode(); err != nil {
		return nil, err
	}

	output := make(outputs.Outputs, len(roots))

	group, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		idx := i
		root := root

		group.Go(func() error {
			log.Debugf("%s: applying %s", root, opts.Path)

			out, err := bp.Apply(ctx, root)
			if err != nil {
				return err
			}

			output[idx] = out
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return output, nil
}
