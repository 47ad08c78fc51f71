package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/quickbase/internal/cmd/base"
	"github.com/hashicorp-forge/quickbase/internal/cmd/commands/app"
	"github.com/hashicorp-forge/quickbase/internal/cmd/commands/record"
	"github.com/hashicorp-forge/quickbase/internal/cmd/commands/report"
	"github.com/hashicorp-forge/quickbase/internal/cmd/commands/table"
	"github.com/hashicorp-forge/quickbase/internal/cmd/commands/version"
)

// Commands is the mapping of all available qb commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log:    log,
		UI:     ui,
		Fs:     afero.NewOsFs(),
		DotEnv: true,
	}
	Commands = NewCommands(b)
}

// NewCommands builds the command table around a shared base.Command.
func NewCommands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"app": func() (cli.Command, error) {
			return &app.Command{Command: b}, nil
		},
		"table": func() (cli.Command, error) {
			return &table.Command{Command: b}, nil
		},
		"table get": func() (cli.Command, error) {
			return &table.GetCommand{Command: b}, nil
		},
		"table create": func() (cli.Command, error) {
			return &table.CreateCommand{Command: b}, nil
		},
		"table update": func() (cli.Command, error) {
			return &table.UpdateCommand{Command: b}, nil
		},
		"report": func() (cli.Command, error) {
			return &report.Command{Command: b}, nil
		},
		"report list": func() (cli.Command, error) {
			return &report.ListCommand{Command: b}, nil
		},
		"report get": func() (cli.Command, error) {
			return &report.GetCommand{Command: b}, nil
		},
		"record": func() (cli.Command, error) {
			return &record.Command{Command: b}, nil
		},
		"record query": func() (cli.Command, error) {
			return &record.QueryCommand{Command: b}, nil
		},
		"record upsert": func() (cli.Command, error) {
			return &record.UpsertCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
