// main is the entry point for the clipscout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/clipscout/clipscout/cmd"
	"github.com/clipscout/clipscout/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run wraps the command execution so store cleanup happens before exit.
func run() int {
	defer iocache.CloseStores()

	cmd.SetCacheManager(iocache.Manager)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
