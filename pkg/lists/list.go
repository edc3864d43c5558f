// Package lists implements a generic doubly-linked list whose node and
// buffer memory comes from a caller-supplied allocation strategy.
//
// A List keeps no memory beyond what is reachable from its own node
// chain, and nothing is reclaimed automatically: call Destroy when done
// (deferring it is safe, Destroy on an empty or already-destroyed list
// is a no-op).
//
//	l := lists.New[int](nil)
//	defer l.Destroy()
//
// A list assumes exclusive access by a single owner; guard it externally
// if it must be shared across goroutines. Element and node references
// returned by accessors stay valid only until the next structural
// mutation of the list.
package lists

import "errors"

var (
	// ErrAllocationFailure reports a refusal by the allocation strategy.
	// Multi-step operations release everything they built before
	// surfacing it.
	ErrAllocationFailure = errors.New("lists: allocation failure")
	// ErrOutOfBounds reports an index with no corresponding position.
	ErrOutOfBounds = errors.New("lists: index out of bounds")
	// ErrInvalidRange reports iteration boundaries with Start beyond Stop.
	ErrInvalidRange = errors.New("lists: invalid iteration boundaries")
)

// Node is a single link-chain element. The head node has a nil Prev and
// the tail node has a nil Next; in a one-element list they are the same
// node.
type Node[T any] struct {
	Value      T
	next, prev *Node[T]
}

// Next returns the following node, or nil on the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil on the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly-linked list of T. The element type must be comparable
// so that value searches can use equality directly.
type List[T comparable] struct {
	alloc      Allocator[T]
	head, tail *Node[T]
}

// New returns an empty list drawing memory from alloc. A nil alloc
// selects the garbage-collected heap strategy.
func New[T comparable](alloc Allocator[T]) *List[T] {
	if alloc == nil {
		alloc = NewHeapAllocator[T]()
	}
	return &List[T]{alloc: alloc}
}

// FromSlice returns a list holding items in order. If any node
// allocation fails, every node built so far is released before the
// error is returned.
func FromSlice[T comparable](alloc Allocator[T], items []T) (*List[T], error) {
	l := New[T](alloc)
	for _, v := range items {
		if err := l.Append(v); err != nil {
			l.Destroy()
			return nil, err
		}
	}
	return l, nil
}

// Destroy removes every node, tail first, returning each to the
// allocation strategy. Calling it on an empty list is a no-op, so it is
// safe to call repeatedly or to defer alongside earlier manual teardown.
func (l *List[T]) Destroy() {
	for l.tail != nil {
		n := l.tail
		l.unlink(n)
		l.alloc.ReleaseNode(n)
	}
}

// Len counts the nodes by walking the chain. The length is not cached;
// callers that need it repeatedly should keep their own copy.
func (l *List[T]) Len() int {
	c := 0
	for n := l.head; n != nil; n = n.next {
		c++
	}
	return c
}

// Empty reports whether the list has no nodes.
func (l *List[T]) Empty() bool { return l.head == nil }

// Append inserts v after the tail.
func (l *List[T]) Append(v T) error {
	n, err := l.alloc.AllocateNode()
	if err != nil {
		return err
	}
	n.Value = v
	l.pushBack(n)
	return nil
}

// Prepend inserts v before the head.
func (l *List[T]) Prepend(v T) error {
	n, err := l.alloc.AllocateNode()
	if err != nil {
		return err
	}
	n.Value = v
	l.pushFront(n)
	return nil
}

// RemoveBack removes the tail node. Removing from an empty list is a
// no-op, not an error.
func (l *List[T]) RemoveBack() {
	if l.tail == nil {
		return
	}
	n := l.tail
	l.unlink(n)
	l.alloc.ReleaseNode(n)
}

// RemoveFront removes the head node. Removing from an empty list is a
// no-op, not an error.
func (l *List[T]) RemoveFront() {
	if l.head == nil {
		return
	}
	n := l.head
	l.unlink(n)
	l.alloc.ReleaseNode(n)
}

// PopBack removes the tail node and returns its value, or false when
// the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	n := l.tail
	v := n.Value
	l.unlink(n)
	l.alloc.ReleaseNode(n)
	return v, true
}

// PopFront removes the head node and returns its value, or false when
// the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	v := n.Value
	l.unlink(n)
	l.alloc.ReleaseNode(n)
	return v, true
}

// Front returns a reference to the head element, or false when empty.
func (l *List[T]) Front() (*T, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.Value, true
}

// Back returns a reference to the tail element, or false when empty.
func (l *List[T]) Back() (*T, bool) {
	if l.tail == nil {
		return nil, false
	}
	return &l.tail.Value, true
}

// FrontNode returns the head node, or nil when empty.
func (l *List[T]) FrontNode() *Node[T] { return l.head }

// BackNode returns the tail node, or nil when empty.
func (l *List[T]) BackNode() *Node[T] { return l.tail }

// Get returns a reference to the element at index. The reference stays
// valid until the next structural mutation.
func (l *List[T]) Get(index int) (*T, error) {
	n := l.nodeAt(index)
	if n == nil {
		return nil, ErrOutOfBounds
	}
	return &n.Value, nil
}

// Set overwrites the element at index in place.
func (l *List[T]) Set(index int, v T) error {
	n := l.nodeAt(index)
	if n == nil {
		return ErrOutOfBounds
	}
	n.Value = v
	return nil
}

// InsertAt inserts v before the node at index. Index Len() is accepted
// and appends, so InsertAt(l.Len(), v) and Append(v) are equivalent.
func (l *List[T]) InsertAt(index int, v T) error {
	if index < 0 {
		return ErrOutOfBounds
	}
	at := l.head
	i := 0
	for at != nil && i < index {
		at = at.next
		i++
	}
	if at == nil && i < index {
		return ErrOutOfBounds
	}
	if at == nil {
		return l.Append(v)
	}
	n, err := l.alloc.AllocateNode()
	if err != nil {
		return err
	}
	n.Value = v
	l.insertBefore(n, at)
	return nil
}

// InsertSliceAt inserts items starting at index, keeping their relative
// order. Items go in back to front so that each lands before the one
// inserted just before it. If an allocation fails midway, the nodes
// already inserted are removed and released before the error returns.
func (l *List[T]) InsertSliceAt(index int, items []T) error {
	if index < 0 {
		return ErrOutOfBounds
	}
	mark := l.head
	i := 0
	for mark != nil && i < index {
		mark = mark.next
		i++
	}
	if mark == nil && i < index {
		return ErrOutOfBounds
	}
	inserted := 0
	for j := len(items) - 1; j >= 0; j-- {
		n, err := l.alloc.AllocateNode()
		if err != nil {
			for k := 0; k < inserted; k++ {
				next := mark.next
				l.unlink(mark)
				l.alloc.ReleaseNode(mark)
				mark = next
			}
			return err
		}
		n.Value = items[j]
		if mark == nil {
			l.pushBack(n)
		} else {
			l.insertBefore(n, mark)
		}
		mark = n
		inserted++
	}
	return nil
}

// RemoveAt removes the node at index.
func (l *List[T]) RemoveAt(index int) error {
	n := l.nodeAt(index)
	if n == nil {
		return ErrOutOfBounds
	}
	l.unlink(n)
	l.alloc.ReleaseNode(n)
	return nil
}

// PopAt removes the node at index and returns a copy of its value.
func (l *List[T]) PopAt(index int) (T, error) {
	var zero T
	n := l.nodeAt(index)
	if n == nil {
		return zero, ErrOutOfBounds
	}
	v := n.Value
	l.unlink(n)
	l.alloc.ReleaseNode(n)
	return v, nil
}

func (l *List[T]) nodeAt(index int) *Node[T] {
	if index < 0 {
		return nil
	}
	n := l.head
	for i := 0; n != nil && i < index; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) pushFront(n *Node[T]) {
	if l.head == nil {
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
	}
	l.head = n
}

func (l *List[T]) pushBack(n *Node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		n.prev = l.tail
		l.tail.next = n
	}
	l.tail = n
}

func (l *List[T]) insertBefore(n, at *Node[T]) {
	n.prev = at.prev
	n.next = at
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
}

func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next = nil
	n.prev = nil
}
