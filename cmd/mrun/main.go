// Command mrun is the CLI front-end for the computation engine, a
// thin external collaborator over the machine/search/model/parse
// packages. It is intentionally small: one subcommand, dispatched
// with a hand-rolled switch on os.Args[1].
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(3)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		os.Exit(runCommand(args))
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "mrun: unknown command %q\n", command)
		printUsage()
		os.Exit(3)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: mrun run <model-file> <input> [flags]

flags:
  --max-depth N     cap on search depth (default 10000)
  --max-visited N   cap on distinct configurations explored (default 100000)
  --trace           record and print the witness path on a terminal verdict
  --json            print the result as JSON instead of plain text

exit codes: 0 accepted/halted, 1 rejected, 2 diverged, 3 malformed input`)
}
