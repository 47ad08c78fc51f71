package report

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect reports"
}

func (c *Command) Help() string {
	return `Usage: qb report <subcommand> [options]

  This command groups subcommands for reading report definitions.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	client    base.ClientFlags
	flagTable string
}

func (c *ListCommand) Synopsis() string {
	return "List the reports of a table"
}

func (c *ListCommand) Help() string {
	return `Usage: qb report list -table-id <id> [options]

  Lists every report defined on a table (GET /reports?tableId={tableId}).` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("report list", flag.ContinueOnError))

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	resp, err := client.ListReports(context.Background(), c.flagTable)
	return c.Respond(resp, err, c.client.Format)
}

type GetCommand struct {
	*base.Command

	client     base.ClientFlags
	flagReport string
	flagTable  string
}

func (c *GetCommand) Synopsis() string {
	return "Show a report definition"
}

func (c *GetCommand) Help() string {
	return `Usage: qb report get -report-id <id> -table-id <id> [options]

  Fetches one report (GET /reports/{reportId}?tableId={tableId}).` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("report get", flag.ContinueOnError))

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagReport, "report-id", "", "(Required) Report ID")
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID")

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

	resp, err := client.GetReport(context.Background(), c.flagReport, c.flagTable)
	return c.Respond(resp, err, c.client.Format)
}
