// Command gaugectl renders bar gauge groups described by YAML files.
package main

import (
	"os"

	"github.com/gogpu/gauge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
