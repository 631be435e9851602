// contactbot is an interactive assistant that keeps a contact book for one
// session.
package main

import (
	"os"

	"github.com/ccollicutt/logtally/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteContactbot())
}
