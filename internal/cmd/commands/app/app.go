package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

type Command struct {
	*base.Command

	client   base.ClientFlags
	flagApp  string
	flagOpen bool
}

func (c *Command) Synopsis() string {
	return "Show an application's metadata"
}

func (c *Command) Help() string {
	return `Usage: qb app -app-id <id> [options]

  Fetches the properties of a Quickbase application (GET /apps/{appId}).` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("app", flag.ContinueOnError))

	c.AddClientFlags(f, &c.client)
	f.StringVar(
		&c.flagApp, "app-id", "",
		"(Required) Application ID",
	)
	f.BoolVar(
		&c.flagOpen, "open", false,
		"Open the application in a web browser instead of printing it.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	if c.flagOpen {
		if c.flagApp == "" {
			c.UI.Error("app-id flag is required")
			return base.ExitError
		}
		u := client.AppURL(c.flagApp)
		c.UI.Info(fmt.Sprintf("Opening %s", u))
		if err := openURL(u); err != nil {
			c.UI.Error(fmt.Sprintf("error opening browser: %v", err))
			return base.ExitError
		}
		return base.ExitOK
	}

	resp, err := client.GetApp(context.Background(), c.flagApp)
	return c.Respond(resp, err, c.client.Format)
}
