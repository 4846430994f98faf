package main

import (
	"os"

	"github.com/cwray/audex/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
