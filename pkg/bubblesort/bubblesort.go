// Package bubblesort implements bubble sort over persistent lists, using only
// recursion and without modifying the input.
//
// The sort is built from two mutually recursive functions. The inner function
// makes one bubble pass, carrying the larger of each adjacent pair towards the
// end of the list. The outer function sorts the tail of the list first and
// then makes a single inner pass over the tail with the head prepended.
//
// Each recursive call allocates new nodes, so sorting a list of n values makes
// O(n²) comparisons and O(n²) allocations. The recursion depth grows linearly
// with the length of the list; sorting a very long list can exhaust the stack.
package bubblesort

import (
	"cmp"

	"github.com/elves/consort/pkg/persistent/list"
)

// Sort returns a new list with the values of xs in non-decreasing order. The
// input list is left intact.
func Sort[T cmp.Ordered](xs *list.List[T]) *list.List[T] {
	return outer(xs)
}

// IsSorted reports whether every value of xs is no greater than the value
// after it.
func IsSorted[T cmp.Ordered](xs *list.List[T]) bool {
	for ; xs.Len() >= 2; xs = xs.Rest() {
		if xs.Rest().First() < xs.First() {
			return false
		}
	}
	return true
}

func outer[T cmp.Ordered](xs *list.List[T]) *list.List[T] {
	if xs.IsEmpty() {
		return xs
	}
	return inner(outer(xs.Rest()).Cons(xs.First()))
}

func inner[T cmp.Ordered](xs *list.List[T]) *list.List[T] {
	if xs.Len() < 2 {
		return xs
	}
	a, b, rest := xs.First(), xs.Rest().First(), xs.Rest().Rest()
	if a < b {
		return inner(rest.Cons(b)).Cons(a)
	}
	// When a == b, b stays in front.
	return inner(rest.Cons(a)).Cons(b)
}
