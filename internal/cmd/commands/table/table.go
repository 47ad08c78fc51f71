package table

import (
	"flag"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read and change tables"
}

func (c *Command) Help() string {
	return `Usage: qb table <subcommand> [options]

  This command groups subcommands for working with table properties.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// tableFlags are shared by create and update.
type tableFlags struct {
	fields quickbase.TableFields
}

func (t *tableFlags) register(f *base.FlagSet) {
	f.StringVar(&t.fields.Name, "name", "", "Table name")
	f.StringVar(&t.fields.Description, "description", "", "Table description")
	f.StringVar(&t.fields.SingleRecordName, "single-record-name", "", "Singular noun for a record")
	f.StringVar(&t.fields.PluralRecordName, "plural-record-name", "", "Plural noun for records")
}

func newFlagSet(name string) *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet(name, flag.ContinueOnError))
}
