package validatecmd

import (
	rootcmd "github.com/illikainen/scaffold/src/cmd/root"
	"github.com/illikainen/scaffold/src/structure"

	"github.com/illikainen/go-utils/src/fn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var command = &cobra.Command{
	Use:   "validate",
	Short: "Check a structure document without touching the filesystem",
	RunE:  run,
}

var options struct {
	*rootcmd.Options
	file   string
	strict bool
}

func Command(opts *rootcmd.Options) *cobra.Command {
	options.Options = opts
	return command
}

func init() {
	flags := command.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.file, "file", "f", "", "Structure document to validate")
	fn.Must(command.MarkFlagRequired("file"))

	flags.BoolVarP(&options.strict, "strict", "s", false, "Treat problems as errors")
}

func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	doc, err := structure.Load(options.file)
	if err != nil {
		return err
	}

	problems := doc.Problems()
	for _, problem := range problems {
		log.Warnf("%s", problem)
	}

	strict := options.strict || options.Config.Strict
	if strict && len(problems) > 0 {
		return errors.Errorf("%s: %d problem(s)", options.file, len(problems))
	}

	log.Infof("%s: %d item(s), %d problem(s)", options.file, len(doc.Items), len(problems))
	return nil
}
