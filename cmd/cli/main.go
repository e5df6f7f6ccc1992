// littlegrep - line search tool
//
// littlegrep prints every line of a file that contains a query string,
// optionally ignoring case.
package main

import (
	"os"

	"github.com/ccollicutt/littlegrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
