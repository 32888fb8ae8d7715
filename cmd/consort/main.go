// Command consort sorts a list of integers with a recursive bubble sort over
// a persistent list, printing the list before and after sorting.
package main

import (
	"os"

	"github.com/elves/consort/pkg/prog"
	"github.com/elves/consort/pkg/sortprog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, sortprog.Program{}))
}
