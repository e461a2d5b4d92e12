// Command mdiff is a demo CLI over the structural markdown diff engine.
package main

import (
	"os"

	"github.com/basisdocs/mdiff/cmd/mdiff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
