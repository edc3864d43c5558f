package lists

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolBudget is returned by NewPoolAllocator for a non-positive
	// budget.
	ErrPoolBudget = errors.New("lists: pool budget must be positive")
	// ErrPoolExhausted is returned when a PoolAllocator has no budget
	// left. It wraps ErrAllocationFailure.
	ErrPoolExhausted = fmt.Errorf("lists: node pool exhausted: %w", ErrAllocationFailure)
)

// Allocator is the memory strategy a List draws on. AllocateNode and
// AllocateSlice report refusals with an error wrapping
// ErrAllocationFailure; ReleaseNode and ReleaseSlice hand memory back.
// Any conforming strategy works: the list never assumes a policy.
type Allocator[T any] interface {
	AllocateNode() (*Node[T], error)
	ReleaseNode(*Node[T])
	AllocateSlice(n int) ([]T, error)
	ReleaseSlice([]T)
}

// HeapAllocator is the garbage-collected strategy. Allocation never
// fails and releases only clear the returned memory so it holds no
// stale links or values.
type HeapAllocator[T any] struct{}

func NewHeapAllocator[T any]() *HeapAllocator[T] { return &HeapAllocator[T]{} }

func (*HeapAllocator[T]) AllocateNode() (*Node[T], error) { return new(Node[T]), nil }

func (*HeapAllocator[T]) ReleaseNode(n *Node[T]) {
	if n == nil {
		return
	}
	var zero T
	n.Value = zero
	n.next = nil
	n.prev = nil
}

func (*HeapAllocator[T]) AllocateSlice(n int) ([]T, error) { return make([]T, n), nil }

func (*HeapAllocator[T]) ReleaseSlice([]T) {}

// PoolAllocator is a bounded strategy: it allows at most budget live
// allocation units (one per node, one per slice element) and recycles
// released nodes through a free list. Like the list itself it assumes a
// single owner and does no locking.
type PoolAllocator[T any] struct {
	free   []*Node[T]
	budget int
	live   int
}

// NewPoolAllocator returns a pool allowing budget live units.
func NewPoolAllocator[T any](budget int) (*PoolAllocator[T], error) {
	if budget <= 0 {
		return nil, ErrPoolBudget
	}
	return &PoolAllocator[T]{budget: budget}, nil
}

// AllocateNode hands out a recycled node when one is idle, otherwise a
// fresh one. It fails with ErrPoolExhausted once the budget is fully
// live.
func (p *PoolAllocator[T]) AllocateNode() (*Node[T], error) {
	if p.live >= p.budget {
		return nil, ErrPoolExhausted
	}
	p.live++
	if k := len(p.free); k > 0 {
		n := p.free[k-1]
		p.free = p.free[:k-1]
		return n, nil
	}
	return new(Node[T]), nil
}

// ReleaseNode clears n and keeps it for reuse.
func (p *PoolAllocator[T]) ReleaseNode(n *Node[T]) {
	if n == nil {
		return
	}
	var zero T
	n.Value = zero
	n.next = nil
	n.prev = nil
	p.live--
	p.free = append(p.free, n)
}

// AllocateSlice charges one unit per element against the budget.
func (p *PoolAllocator[T]) AllocateSlice(n int) ([]T, error) {
	if p.live+n > p.budget {
		return nil, ErrPoolExhausted
	}
	p.live += n
	return make([]T, n), nil
}

// ReleaseSlice refunds the units charged for s.
func (p *PoolAllocator[T]) ReleaseSlice(s []T) {
	p.live -= len(s)
}

// Live reports the number of allocation units currently handed out.
func (p *PoolAllocator[T]) Live() int { return p.live }

// Idle reports the number of recycled nodes waiting for reuse.
func (p *PoolAllocator[T]) Idle() int { return len(p.free) }
