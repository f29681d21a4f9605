// main is the entrypoint for the gamesgap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gamesgap/gamesgap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
