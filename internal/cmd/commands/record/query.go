package record

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

type QueryCommand struct {
	*base.Command

	client           base.ClientFlags
	flagTable        string
	flagSelect       string
	flagWhere        string
	flagSort         string
	flagGroup        string
	flagSkip         int
	flagTop          int
	flagCompareLocal bool
}

func (c *QueryCommand) Synopsis() string {
	return "Run a record query"
}

func (c *QueryCommand) Help() string {
	return `Usage: qb record query -table-id <id> -select <fields> [options]

  Runs a query against a table (POST /records/query).

  Example:

      $ qb record query -table-id bqz9 -select 3,6 -where "{3.EX.'abc'}" \
          -sort 6:ASC -top 10` +
		c.Flags().Help()
}

func (c *QueryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("record query", flag.ContinueOnError))

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID to query")
	f.StringVar(&c.flagSelect, "select", "", "(Required) Comma separated field IDs to return")
	f.StringVar(&c.flagWhere, "where", "", "Filter in the Quickbase query language, e.g. {3.EX.'abc'}")
	f.StringVar(&c.flagSort, "sort", "", "Comma separated <field>:<ASC|DESC> pairs")
	f.StringVar(&c.flagGroup, "group", "", "Comma separated <field>:<ASC|DESC|equal-values> pairs")
	f.IntVar(&c.flagSkip, "skip", 0, "Number of records to skip")
	f.IntVar(&c.flagTop, "top", 0, "Maximum number of records to return")
	f.BoolVar(&c.flagCompareLocal, "compare-local-time", false,
		"Compare dates using the application's local time")

	return f
}

func (c *QueryCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	spec, err := c.spec(f)
	if err != nil {
		c.UI.Error(err.Error())
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	resp, err := client.QueryRecords(context.Background(), spec)
	return c.Respond(resp, err, c.client.Format)
}

// spec builds the query. Options are only sent for flags given explicitly.
func (c *QueryCommand) spec(f *base.FlagSet) (quickbase.QuerySpec, error) {
	selectIDs, err := parseFieldIDs(c.flagSelect)
	if err != nil {
		return quickbase.QuerySpec{}, fmt.Errorf("invalid -select: %w", err)
	}
	sortBy, err := parseSort(c.flagSort)
	if err != nil {
		return quickbase.QuerySpec{}, err
	}
	groupBy, err := parseGroup(c.flagGroup)
	if err != nil {
		return quickbase.QuerySpec{}, err
	}

	spec := quickbase.QuerySpec{
		From:    c.flagTable,
		Select:  selectIDs,
		Where:   c.flagWhere,
		SortBy:  sortBy,
		GroupBy: groupBy,
	}

	var opts quickbase.QueryOptions
	set := false
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "skip":
			skip := c.flagSkip
			opts.Skip, set = &skip, true
		case "top":
			top := c.flagTop
			opts.Top, set = &top, true
		case "compare-local-time":
			compare := c.flagCompareLocal
			opts.CompareWithAppLocalTime, set = &compare, true
		}
	})
	if set {
		spec.Options = &opts
	}

	return spec, nil
}
