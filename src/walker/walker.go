package walker

import (
	"context"
	"path/filepath"

	"github.com/illikainen/scaffold/src/configs"
	"github.com/illikainen/scaffold/src/content"
	"github.com/illikainen/scaffold/src/outputs"
	"github.com/illikainen/scaffold/src/structure"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Options struct {
	Fs       afero.Fs
	Resolver *content.Resolver
	Config   *configs.Config
}

// Walker materializes structure nodes on a filesystem.  Existing paths are
// never modified.  A walker is not safe for concurrent use; independent
// roots get their own walker.
type Walker struct {
	fs       afero.Fs
	resolver *content.Resolver
	config   *configs.Config
	diff     map[string][]string
}

func New(opts *Options) *Walker {
	return &Walker{
		fs:       opts.Fs,
		resolver: opts.Resolver,
		config:   opts.Config,
		diff: map[string][]string{
			"mkdir":   nil,
			"file":    nil,
			"content": nil,
		},
	}
}

// AddItem creates node below base and then descends into its children.
// The condition of the first child decides whether node itself is created
// and is evaluated against base, before node exists.  Children are visited
// whether or not node was created.
func (w *Walker) AddItem(ctx context.Context, node *structure.Node, base string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	path := filepath.Join(base, node.Name)

	if w.config.Strict {
		if err := structure.Check(node, path); err != nil {
			return err
		}
	}

	met := true
	if node.HasChildren() {
		var err error
		met, err = w.conditionMet(node.Children[0], base)
		if err != nil {
			return err
		}
	}

	err := w.create(ctx, node, path, met)
	if err != nil {
		return err
	}

	for _, child := range node.Children {
		err := w.AddItem(ctx, child, path)
		if err != nil {
			return err
		}
	}

	return nil
}

// when-parent-not-empty is met while dir is still empty, i.e. a populated
// directory suppresses creation.
func (w *Walker) conditionMet(node *structure.Node, dir string) (bool, error) {
	switch node.Condition {
	case structure.ConditionNone:
		return true, nil
	case structure.ConditionParentNotEmpty:
		return isEmptyDir(w.fs, dir)
	}

	path := filepath.Join(dir, node.Name)
	if w.config.Strict {
		return false, &structure.ConfigurationError{Path: path, Reason: "unrecognized condition"}
	}
	log.Warnf("%s: unrecognized condition; treating it as met", path)
	return true, nil
}

func (w *Walker) create(ctx context.Context, node *structure.Node, path string, met bool) error {
	if !node.Recognized() {
		switch {
		case node.Kind == structure.KindUnknown:
			log.Warnf("%s: unrecognized type; nothing created", path)
		case !node.HasChildren():
			log.Warnf("%s: missing type; nothing created", path)
		}
		return nil
	}

	ok, err := exists(w.fs, path)
	if err != nil {
		return err
	}
	if ok {
		log.Debugf("%s: exists", path)
		return nil
	}

	if !met {
		log.Debugf("%s: parent is not empty; skipped", path)
		return nil
	}

	switch node.Kind {
	case structure.KindDirectory:
		if node.DefaultContent != nil {
			log.Warnf("%s: default_content is ignored for directories", path)
		}

		changes, err := Mkdir(w.fs, path, w.config.DefaultDirMode)
		if err != nil {
			return err
		}
		w.diff["mkdir"] = append(w.diff["mkdir"], changes...)
	case structure.KindFile:
		// Content is resolved before the file is opened so that a failed
		// fetch doesn't leave behind an empty file that later runs skip.
		data, ok, err := w.resolver.Resolve(ctx, node.DefaultContent)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}

		changes, diffs, err := CreateFile(w.fs, path, data, w.config.DefaultFileMode)
		if err != nil {
			return err
		}
		w.diff["file"] = append(w.diff["file"], changes...)
		if ok {
			w.diff["content"] = append(w.diff["content"], diffs...)
		}
	}

	return nil
}

func (w *Walker) Output(root string) *outputs.Output {
	return &outputs.Output{
		Root:    root,
		Changed: w.diff["mkdir"] != nil || w.diff["file"] != nil,
		Diff:    w.diff,
	}
}
