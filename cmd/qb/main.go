package main

import (
	"os"

	"github.com/hashicorp-forge/quickbase/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
