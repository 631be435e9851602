// numsum prints the total of the numbers found in its input text.
package main

import (
	"os"

	"github.com/ccollicutt/logtally/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteNumsum())
}
