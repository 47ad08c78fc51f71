package record

import (
	"context"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
	"github.com/hashicorp-forge/quickbase/pkg/quickbase"
)

type UpsertCommand struct {
	*base.Command

	client         base.ClientFlags
	flagTable      string
	flagData       string
	flagFields     string
	flagDateFields string
}

func (c *UpsertCommand) Synopsis() string {
	return "Insert or update records"
}

func (c *UpsertCommand) Help() string {
	return `Usage: qb record upsert -table-id <id> -data <file> [options]

  Inserts or updates records (POST /records). The data file is a JSON array
  of objects keyed by field ID:

      [
        {"3": {"value": 42}, "6": {"value": "renamed"}},
        {"6": "new record", "8": "March 3, 2024"}
      ]

  Records carrying field 3 (Record ID#) update that record; the others are
  inserted.` +
		c.Flags().Help()
}

func (c *UpsertCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("record upsert", flag.ContinueOnError))

	c.AddClientFlags(f, &c.client)
	f.StringVar(&c.flagTable, "table-id", "", "(Required) Table ID to write to")
	f.StringVar(&c.flagData, "data", "", "(Required) Path to a JSON file of records")
	f.StringVar(&c.flagFields, "fields-to-return", "",
		"Comma separated field IDs to return (default: 3)")
	f.StringVar(&c.flagDateFields, "date-fields", "",
		"Comma separated field IDs whose values are normalized to YYYY-MM-DD")

	return f
}

func (c *UpsertCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitError
	}

	if c.flagData == "" {
		c.UI.Error("data flag is required")
		return base.ExitError
	}

	fields, err := parseFieldIDs(c.flagFields)
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid -fields-to-return: %v", err))
		return base.ExitError
	}
	dateFields, err := parseFieldIDs(c.flagDateFields)
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid -date-fields: %v", err))
		return base.ExitError
	}

	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	records, err := loadRecords(fs, c.flagData, dateFields)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading records: %v", err))
		return base.ExitError
	}

	client, err := c.NewClient(c.client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return base.ExitError
	}

	c.Log.Debug("upserting records", "table", c.flagTable, "records", len(records))

	resp, err := client.UpsertRecords(context.Background(), quickbase.UpsertSpec{
		To:             c.flagTable,
		Data:           records,
		FieldsToReturn: fields,
	})
	return c.Respond(resp, err, c.client.Format)
}
