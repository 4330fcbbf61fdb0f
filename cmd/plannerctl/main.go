// Command plannerctl inspects and maintains the content planner from the
// terminal: calendar grids, scheduling windows, month buckets, note purges
// and development tokens.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
