// os-cli inspects a running OpenSearch cluster from the terminal.
//
// Usage:
//
//	os-cli --list
//	os-cli <index> --limit 20
//	os-cli <index> --limit 20 --show-embedding
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/oscli/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
