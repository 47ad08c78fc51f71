package table

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	client    base.ClientFlags
	flagTable string
	flagApp   string
}

func (c *GetCommand) Synopsis() string {
	return "Show a table's properties"
}

func (c *GetCommand) Help() string {
	return `Usage: qb table get -table-id <id> -app-id <id> [options]

  Fetches a table (GET /tables/{tableId}?appId={appId}).` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := newFlagSet("table get")

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID")
	f.StringVar(&c.flagApp, "app-id", "", "(Required) Application ID")

	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	resp, err := client.GetTable(context.Background(), c.flagTable, c.flagApp)
	return c.Respond(resp, err, c.client.Format)
}
