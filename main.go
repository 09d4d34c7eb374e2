// Command nospace rebuilds a directory tree from a shell transcript and
// reports aggregate directory sizes.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/nospace/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
