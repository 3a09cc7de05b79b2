// Command carlos drives the semantic analyzer, IR optimizer, and code
// generator over the canned parse trees in internal/demo, standing in
// for a real parser.
package main

import (
	"os"

	"github.com/rtoal/carlos/cmd/carlos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
