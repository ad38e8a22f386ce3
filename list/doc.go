// Package list provides a generic singly linked list with the classic
// operation set: push, positional insert/remove, search, reverse, stable
// merge sort, and sorted merge of two lists.
//
// What
//
//   - List[T] holds elements of any type behind a head pointer.
//   - New takes an optional ordering (less) used by Sort and Merge.
//   - PushFront / PushBack / InsertAt grow the list.
//   - PopFront / RemoveAt / Remove shrink it.
//   - Find, Len, Values inspect it.
//   - Reverse relinks nodes in place in O(n), no allocation.
//   - Sort is a stable bottom-less merge sort on the nodes themselves.
//   - Merge splices another sorted list into this one, leaving the
//     argument empty.
//
// Why
//
//   - O(1) front insertion and pointer-splice merging, which slices
//     cannot offer without copying.
//   - The node-level Sort and Reverse are the canonical linked-list
//     exercises, implemented without auxiliary arrays.
//
// Complexity (n = Len)
//
//   - PushFront/PopFront: O(1); PushBack/InsertAt/RemoveAt/Find: O(n)
//   - Reverse: O(n) time, O(1) extra memory
//   - Sort: O(n log n) time, O(log n) stack
//   - Merge: O(n + m)
//
// Usage
//
//	l := list.New[int](func(a, b int) bool { return a < b })
//	l.PushBack(3)
//	l.PushBack(1)
//	l.PushBack(2)
//	_ = l.Sort()
//	fmt.Println(l.Values()) // [1 2 3]
//
// Errors
//
//   - ErrIndexOutOfRange  positional access past the current length.
//   - ErrEmptyList        PopFront on an empty list.
//   - ErrNilLess          Sort or Merge on a list built without an ordering.
//
// A List is not safe for concurrent mutation; guard it externally if shared.
package list
