package applycmd

import (
	"github.com/illikainen/scaffold/src/blueprint"
	rootcmd "github.com/illikainen/scaffold/src/cmd/root"

	"github.com/illikainen/go-utils/src/fn"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var command = &cobra.Command{
	Use:   "apply",
	Short: "Create the structure of a document below one or more roots",
	RunE:  run,
}

var options struct {
	*rootcmd.Options
	file   string
	roots  []string
	dryRun bool
	strict bool
}

func Command(opts *rootcmd.Options) *cobra.Command {
	options.Options = opts
	return command
}

func init() {
	flags := command.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.file, "file", "f", "",
		"Structure document to apply (default: structure from the configuration)")

	flags.StringSliceVarP(&options.roots, "root", "r", nil,
		"Directory to create the structure in.  May be provided multiple times")
	fn.Must(command.MarkFlagRequired("root"))

	flags.BoolVarP(&options.dryRun, "dry-run", "d", false, "Show changes without applying them")
	flags.BoolVarP(&options.strict, "strict", "s", false, "Fail on unrecognized types, sources and conditions")
}

func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	file := lo.Ternary(options.file != "", options.file, options.Config.Structure)
	if file == "" {
		return errors.Errorf("no structure document; use --file or set \"structure\" in %s",
			options.Config.Path)
	}

	_, err := blueprint.Apply(cmd.Context(), &blueprint.Options{
		Path:   file,
		Roots:  options.roots,
		Config: options.Config,
		DryRun: options.dryRun,
		Strict: options.strict,
	})
	return err
}
