// logtally counts the records of a plain-text log file by level.
//
// Each line is read as "<date> <time> <LEVEL> <message...>". logtally prints
// a count per level and, given a level, the records of that level.
package main

import (
	"os"

	"github.com/ccollicutt/logtally/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
