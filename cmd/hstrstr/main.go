// Command hstrstr prints HAYSTACK from the first occurrence of NEEDLE to its
// end, or NOT FOUND. It exits with status 1 when arguments are missing.
package main

import (
	"os"

	"github.com/mhr3/rollsearch/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args, os.Stdout, os.Stderr))
}
