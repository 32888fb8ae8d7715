// Package sortprog implements the consort program, which prints a list of
// integers, sorts it with bubble sort and prints the result.
package sortprog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/elves/consort/pkg/bubblesort"
	"github.com/elves/consort/pkg/logutil"
	"github.com/elves/consort/pkg/persistent/list"
	"github.com/elves/consort/pkg/prog"
	"github.com/elves/consort/pkg/sys"
)

var logger = logutil.GetLogger("[sortprog] ")

// Example is the list sorted when no integers are given.
var Example = []int{3, 7, 1, 0, 0, 45, 1001, 2, -100}

// TerminalHint is written to stderr when integers are read from a terminal.
const TerminalHint = "reading integers from terminal; end with Ctrl-D\n"

// Program is the consort program.
type Program struct{}

// Run reads the input, and writes the input and the sorted list to stdout in
// the format given by f.Format.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	values, source, err := readInput(fds, args)
	if err != nil {
		return err
	}
	logger.Printf("sorting %d values from %s", len(values), source)

	xs := list.FromSlice(values)
	sorted := bubblesort.Sort(xs)
	logger.Printf("result is sorted: %v", bubblesort.IsSorted(sorted))

	err = write(fds[1], f.Format, xs, sorted)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readInput(fds [3]*os.File, args []string) ([]int, string, error) {
	switch {
	case len(args) == 0:
		return Example, "built-in example", nil
	case len(args) == 1 && args[0] == "-":
		if sys.IsTerminal(fds[0]) {
			fds[2].WriteString(TerminalHint)
		}
		data, err := io.ReadAll(fds[0])
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		values, err := parseInts(splitFields(string(data)))
		return values, "stdin", err
	default:
		for _, arg := range args {
			if arg == "-" {
				return nil, "", prog.BadUsage("- must be the only argument")
			}
		}
		values, err := parseInts(args)
		return values, "arguments", err
	}
}

// Splits s on whitespace and commas.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, prog.BadUsage(fmt.Sprintf("bad integer %q", field))
		}
		values[i] = value
	}
	return values, nil
}

type result struct {
	Input  []int `json:"input" yaml:"input"`
	Sorted []int `json:"sorted" yaml:"sorted"`
}

func write(w io.Writer, format string, xs, sorted *list.List[int]) error {
	switch format {
	case prog.FormatJSON:
		return json.NewEncoder(w).Encode(result{xs.Slice(), sorted.Slice()})
	case prog.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(result{xs.Slice(), sorted.Slice()})
		if err != nil {
			return err
		}
		return enc.Close()
	default:
		err := xs.Print(w)
		if err != nil {
			return err
		}
		return sorted.Print(w)
	}
}
