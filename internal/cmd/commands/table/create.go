package table

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	client  base.ClientFlags
	table   tableFlags
	flagApp string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a table in an application"
}

func (c *CreateCommand) Help() string {
	return `Usage: qb table create -app-id <id> -name <name> [options]

  Creates a table (POST /tables?appId={appId}).` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := newFlagSet("table create")

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagApp, "app-id", "", "(Required) Application ID")
	c.table.register(f)

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	resp, err := client.CreateTable(context.Background(), c.flagApp, c.table.fields)
	return c.Respond(resp, err, c.client.Format)
}
