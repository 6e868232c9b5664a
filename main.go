package main

import (
	"os"

	"sqlcanon/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
