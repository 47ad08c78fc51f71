package record

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Query and upsert records"
}

func (c *Command) Help() string {
	return `Usage: qb record <subcommand> [options]

  This command groups subcommands for reading and writing table records.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
