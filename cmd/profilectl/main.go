// Command profilectl inspects partner profiles: it fetches them from the
// task service and computes diffs and update payloads from wire JSON files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
