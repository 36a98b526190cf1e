package cmd

import (
	applycmd "github.com/illikainen/scaffold/src/cmd/apply"
	rootcmd "github.com/illikainen/scaffold/src/cmd/root"
	validatecmd "github.com/illikainen/scaffold/src/cmd/validate"

	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	c, opts := rootcmd.Command()
	c.AddCommand(applycmd.Command(opts))
	c.AddCommand(validatecmd.Command(opts))
	return c
}
