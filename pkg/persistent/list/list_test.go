package list

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elves/consort/pkg/tt"
)

var (
	Args = tt.Args
	Fn   = tt.Fn
)

func TestFromSlice(t *testing.T) {
	tt.Test(t, Fn("FromSlice(...).Slice", func(s []int) []int {
		return FromSlice(s).Slice()
	}), tt.Table{
		Args([]int(nil)).Rets([]int{}),
		Args([]int{}).Rets([]int{}),
		Args([]int{1}).Rets([]int{1}),
		Args([]int{3, 7, 1, 0, 0}).Rets([]int{3, 7, 1, 0, 0}),
	})
}

func TestEmpty(t *testing.T) {
	var l *List[string]
	if !l.IsEmpty() {
		t.Errorf("nil list is not empty")
	}
	if n := l.Len(); n != 0 {
		t.Errorf("Len() -> %d, want 0", n)
	}
	if v := l.First(); v != "" {
		t.Errorf("First() -> %q, want zero value", v)
	}
	if r := l.Rest(); r != nil {
		t.Errorf("Rest() -> %v, want nil", r)
	}
	if FromSlice([]string{}) != nil {
		t.Errorf("FromSlice of empty slice is not the empty list")
	}
}

func TestCons_SharesTail(t *testing.T) {
	base := FromSlice([]int{2, 3})
	a := base.Cons(1)
	b := base.Cons(10)

	if a.Rest() != base || b.Rest() != base {
		t.Errorf("Cons does not share the tail")
	}
	if diff := cmp.Diff([]int{2, 3}, base.Slice()); diff != "" {
		t.Errorf("base changed after Cons (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, a.Slice()); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 2, 3}, b.Slice()); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestLen_MatchesReachableNodes(t *testing.T) {
	for n := 0; n < 20; n++ {
		l := FromSlice(make([]int, n))
		nodes := 0
		for p := l; !p.IsEmpty(); p = p.Rest() {
			nodes++
		}
		if l.Len() != n || nodes != n {
			t.Errorf("n = %d: Len() -> %d, reachable nodes %d", n, l.Len(), nodes)
		}
	}
}

func TestString(t *testing.T) {
	tt.Test(t, Fn("FromSlice(...).String", func(s []int) string {
		return FromSlice(s).String()
	}), tt.Table{
		Args([]int{}).Rets(""),
		Args([]int{42}).Rets("42"),
		Args([]int{3, 7, 1, 0, 0, 45, 1001, 2, -100}).
			Rets("3,7,1,0,0,45,1001,2,-100"),
	})
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := FromSlice([]string{"a", "b"}).Print(&buf)
	if err != nil {
		t.Errorf("Print returned error %v", err)
	}
	if got := buf.String(); got != "a,b\n" {
		t.Errorf("Print wrote %q, want %q", got, "a,b\n")
	}

	buf.Reset()
	var empty *List[int]
	empty.Print(&buf)
	if got := buf.String(); got != "\n" {
		t.Errorf("Print of empty list wrote %q, want %q", got, "\n")
	}
}

var errWrite = errors.New("write error")

type badWriter struct{}

func (badWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrint_WriteError(t *testing.T) {
	err := FromSlice([]int{1}).Print(badWriter{})
	if err != errWrite {
		t.Errorf("Print -> %v, want %v", err, errWrite)
	}
}
