// Package list implements a generic persistent list.
package list

import (
	"fmt"
	"io"
	"strings"
)

// List is a persistent singly-linked list. A nil *List is a valid empty list.
//
// A List is never modified after it is created. Cons returns a new list that
// shares all of its nodes except the head with the receiver, so any number of
// lists may share a common tail.
type List[T any] struct {
	first T
	rest  *List[T]
	count int
}

// FromSlice builds a list with the same elements as s, in the same order.
func FromSlice[T any](s []T) *List[T] {
	var l *List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Cons(s[i])
	}
	return l
}

// Cons returns a new list with an additional value in the front.
func (l *List[T]) Cons(v T) *List[T] {
	return &List[T]{v, l, l.Len() + 1}
}

// First returns the first value in the list, or the zero value of T if the
// list is empty.
func (l *List[T]) First() T {
	if l == nil {
		var zero T
		return zero
	}
	return l.first
}

// Rest returns the list after the first value. The rest of an empty list is
// empty.
func (l *List[T]) Rest() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list has no values.
func (l *List[T]) IsEmpty() bool { return l == nil }

// Slice returns the values of the list in a new slice. The result is never nil.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for ; l != nil; l = l.rest {
		s = append(s, l.first)
	}
	return s
}

// String returns the values of the list, separated by commas.
func (l *List[T]) String() string {
	var sb strings.Builder
	for p := l; p != nil; p = p.rest {
		if p != l {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, p.first)
	}
	return sb.String()
}

// Print writes the values of the list to w, separated by commas and followed
// by a newline.
func (l *List[T]) Print(w io.Writer) error {
	_, err := io.WriteString(w, l.String()+"\n")
	return err
}
