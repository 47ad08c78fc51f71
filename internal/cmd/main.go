package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/quickbase/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := "qb"

	level, args := extractLogLevel(args)
	if level == "" {
		level = os.Getenv("QB_LOG_LEVEL")
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:       cliName,
		Level:      hclog.LevelFromString(level),
		Output:     os.Stderr,
		JSONFormat: os.Getenv("QB_LOG_JSON") != "",
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	initCommands(log, ui)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}

// extractLogLevel removes a leading -log-level=<level> from args.
func extractLogLevel(args []string) (string, []string) {
	if len(args) < 2 {
		return "", args
	}
	for _, prefix := range []string{"-log-level=", "--log-level="} {
		if level, ok := strings.CutPrefix(args[1], prefix); ok {
			rest := append([]string{args[0]}, args[2:]...)
			return level, rest
		}
	}
	return "", args
}
