// Command paneui runs the PaneUI demo and diagnostics tools.
package main

import (
	"os"

	"github.com/go-drift/paneui/cmd/paneui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
