package table

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

type UpdateCommand struct {
	*base.Command

	client    base.ClientFlags
	table     tableFlags
	flagTable string
	flagApp   string
}

func (c *UpdateCommand) Synopsis() string {
	return "Change a table's properties"
}

func (c *UpdateCommand) Help() string {
	return `Usage: qb table update -table-id <id> -app-id <id> [options]

  Updates the given properties of a table
  (POST /tables/{tableId}?appId={appId}). Unset properties are left alone.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := newFlagSet("table update")

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID")
	f.StringVar(&c.flagApp, "app-id", "", "(Required) Application ID")
	c.table.register(f)

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	resp, err := client.UpdateTable(context.Background(), c.flagTable, c.flagApp, c.table.fields)
	return c.Respond(resp, err, c.client.Format)
}
