package main

import (
	"os"

	"github.com/mcastrillon/labelscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
