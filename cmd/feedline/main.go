// ABOUTME: Entry point for feedline CLI
// ABOUTME: Initializes and executes root command

package main

import (
	"fmt"
	"os"

	"github.com/harper/feedline/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
