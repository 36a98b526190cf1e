package blueprint

import (
	"context"
	"strings"

	"github.com/illikainen/scaffold/src/configs"
	"github.com/illikainen/scaffold/src/content"
	"github.com/illikainen/scaffold/src/outputs"
	"github.com/illikainen/scaffold/src/structure"
	"github.com/illikainen/scaffold/src/walker"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Options struct {
	Path   string
	Roots  []string
	Config *configs.Config
	DryRun bool
	Strict bool
}

// Blueprint is a decoded structure document together with everything needed
// to materialize it below one or more roots.
type Blueprint struct {
	Document *structure.Document
	Config   *configs.Config
	resolver *content.Resolver
	fs       afero.Fs
	opts     *Options
}

func NewBlueprint(opts *Options) *Blueprint {
	return &Blueprint{
		Config: opts.Config,
		opts:   opts,
	}
}

func (b *Blueprint) Decode() error {
	doc, err := structure.Load(b.opts.Path)
	if err != nil {
		return err
	}
	b.Document = doc

	// Overrides apply to this blueprint only.
	config := *b.opts.Config
	config.DryRun = config.DryRun || b.opts.DryRun
	config.Strict = config.Strict || b.opts.Strict
	b.Config = &config

	b.resolver, err = content.NewResolver(&content.Options{
		Config:  b.Config,
		BaseDir: doc.Dir(),
	})
	if err != nil {
		return err
	}

	b.fs = afero.NewOsFs()
	if b.Config.DryRun {
		// Changes land in memory on top of a read-only view of the real
		// filesystem.
		b.fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	}

	return nil
}

func (b *Blueprint) Apply(ctx context.Context, root string) (*outputs.Output, error) {
	if b.Document == nil {
		return nil, errors.Errorf("%s has not been decoded", b.opts.Path)
	}

	w := walker.New(&walker.Options{
		Fs:       b.fs,
		Resolver: b.resolver,
		Config:   b.Config,
	})

	for _, item := range b.Document.Items {
		err := w.AddItem(ctx, item, root)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", root)
		}
	}

	output := w.Output(root)
	report(output, b.Config.DryRun)
	return output, nil
}

func report(output *outputs.Output, dryRun bool) {
	status := "up-to-date"
	if output.IsChanged() {
		status = "changed"
		if dryRun {
			status = "would change"
		}
	}
	log.Infof("%s: %s", output.Root, status)

	for _, typ := range output.Keys() {
		logf := log.Infof
		if typ == "content" {
			logf = log.Debugf
		}

		logf("    %s\n    %s\n", typ, strings.Repeat("-", len(typ)))
		for _, diff := range output.Differences()[typ] {
			logf("    %s", diff)
		}
	}
}
