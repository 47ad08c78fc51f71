package version

import (
	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
	"github.com/hashicorp-forge/quickbase/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the qb version"
}

func (c *Command) Help() string {
	return "Usage: qb version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("qb v" + version.Version)
	return 0
}
