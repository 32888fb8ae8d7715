// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/elves/consort/pkg/must"
	"github.com/elves/consort/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	tty   *os.File
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

// ThatConsort returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "consort -bad-flag" exits with 2 is
// written as:
//
//	ThatConsort("-bad-flag").ExitsWith(2)
func ThatConsort(args ...string) Case {
	return Case{args: append([]string{"consort"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// WithStdinTTY returns an altered Case that uses the given file, which should
// be a terminal, as stdin of the program.
func (c Case) WithStdinTTY(f *os.File) Case {
	c.tty = f
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatConsort("-log", "log").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that expects the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that expects the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that expects the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that expects the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that expects the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(p, c)
			r := c.want
			if exit != r.exitCode {
				t.Errorf("got exit code %v, want %v", exit, r.exitCode)
			}
			if !matchOutput(stdout, r.stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), r.stdout)
			}
			if !matchOutput(stderr, r.stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), r.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments. It returns the exit code of
// the program, and what it wrote to stdout and stderr.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	return run(p, ThatConsort(args...))
}

func run(p prog.Program, c Case) (exit int, stdout, stderr string) {
	stdin := c.tty
	if stdin == nil {
		r0, w0 := must.Pipe()
		// Write stdin concurrently so that large inputs don't block.
		go func() {
			io.WriteString(w0, c.stdin)
			w0.Close()
		}()
		defer r0.Close()
		stdin = r0
	}
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain stdout and stderr concurrently so that large outputs don't block.
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{stdin, w1, w2}, c.args, p)
	w1.Close()
	w2.Close()
	return exit, <-stdoutCh, <-stderrCh
}

func readAllAsync(r io.ReadCloser) <-chan string {
	ch := make(chan string, 1)
	go func() { ch <- string(must.ReadAllAndClose(r)) }()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func quote(s string) string {
	if len(s) == 0 {
		return "empty"
	}
	return "\"" + strings.ReplaceAll(s, "\n", `\n`) + "\""
}
