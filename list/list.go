// Package list implements the singly linked list operations.
package list

import (
	"errors"
	"fmt"
)

// Sentinel errors for list operations.
var (
	// ErrIndexOutOfRange indicates a positional index past the list length.
	ErrIndexOutOfRange = errors.New("list: index out of range")

	// ErrEmptyList indicates a removal from an empty list.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrNilLess indicates Sort or Merge was called on a list constructed
	// without an ordering function.
	ErrNilLess = errors.New("list: no ordering function provided")
)

// node is a single list cell.
type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked list. The zero value is not usable; construct
// with New.
type List[T any] struct {
	head *node[T]
	size int
	less func(a, b T) bool
}

// New returns an empty list. less defines the ordering used by Sort and
// Merge; pass nil for lists that never sort.
func New[T any](less func(a, b T) bool) *List[T] {
	return &List[T]{less: less}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// PushFront inserts v at the head.
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{val: v, next: l.head}
	l.size++
}

// PushBack appends v at the tail.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.size++
}

// InsertAt places v at position i (0 = head, Len() = append).
// Returns ErrIndexOutOfRange for i < 0 or i > Len().
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	if i == 0 {
		l.PushFront(v)
		return nil
	}

	cur := l.head
	for k := 0; k < i-1; k++ {
		cur = cur.next
	}
	cur.next = &node[T]{val: v, next: cur.next}
	l.size++

	return nil
}

// PopFront removes and returns the head element.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	v := l.head.val
	l.head = l.head.next
	l.size--

	return v, nil
}

// RemoveAt removes and returns the element at position i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	if i == 0 {
		return l.PopFront()
	}

	cur := l.head
	for k := 0; k < i-1; k++ {
		cur = cur.next
	}
	v := cur.next.val
	cur.next = cur.next.next
	l.size--

	return v, nil
}

// Remove deletes the first element for which match returns true and
// reports whether one was found.
func (l *List[T]) Remove(match func(T) bool) bool {
	if l.head == nil {
		return false
	}
	if match(l.head.val) {
		l.head = l.head.next
		l.size--
		return true
	}

	for cur := l.head; cur.next != nil; cur = cur.next {
		if match(cur.next.val) {
			cur.next = cur.next.next
			l.size--
			return true
		}
	}

	return false
}

// Find returns the first element for which match returns true.
func (l *List[T]) Find(match func(T) bool) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if match(cur.val) {
			return cur.val, true
		}
	}
	var zero T

	return zero, false
}

// Values returns the elements head-to-tail as a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}

	return out
}

// Reverse relinks the nodes in place so the tail becomes the head.
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Sort orders the list with a stable merge sort on the nodes.
// Returns ErrNilLess if no ordering was provided at construction.
func (l *List[T]) Sort() error {
	if l.less == nil {
		return ErrNilLess
	}
	l.head = mergeSort(l.head, l.less)

	return nil
}

// Merge splices other into l, preserving sorted order, and leaves other
// empty. Both lists must already be sorted under l's ordering.
func (l *List[T]) Merge(other *List[T]) error {
	if l.less == nil {
		return ErrNilLess
	}
	if other == nil || other.head == nil {
		return nil
	}

	l.head = mergeRuns(l.head, other.head, l.less)
	l.size += other.size
	other.head = nil
	other.size = 0

	return nil
}

// mergeSort splits the chain at its midpoint and merges the sorted halves.
func mergeSort[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// slow/fast split; slow ends just before the midpoint
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil

	return mergeRuns(mergeSort(head, less), mergeSort(mid, less), less)
}

// mergeRuns interleaves two sorted chains into one. Ties take from a, which
// keeps the sort stable.
func mergeRuns[T any](a, b *node[T], less func(x, y T) bool) *node[T] {
	var head, tail *node[T]
	appendNode := func(n *node[T]) {
		if tail == nil {
			head, tail = n, n
		} else {
			tail.next = n
			tail = n
		}
	}

	for a != nil && b != nil {
		if less(b.val, a.val) {
			next := b.next
			appendNode(b)
			b = next
		} else {
			next := a.next
			appendNode(a)
			a = next
		}
	}
	for ; a != nil; a = a.next {
		appendNode(a)
	}
	for ; b != nil; b = b.next {
		appendNode(b)
	}
	if tail != nil {
		tail.next = nil
	}

	return head
}
