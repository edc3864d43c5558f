package lists

// DeepCopy returns an independent list with the same element values in
// the same order, drawing its nodes from alloc (nil selects the heap
// strategy). Mutating either list never touches the other. On a
// mid-build allocation failure the partial copy is torn down before the
// error returns.
func (l *List[T]) DeepCopy(alloc Allocator[T]) (*List[T], error) {
	out := New[T](alloc)
	for n := l.head; n != nil; n = n.next {
		if err := out.Append(n.Value); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// Reverse reverses the element order in place, atomically from the
// caller's view: a fully reversed chain is built first, and only then
// does it replace the original, whose nodes are released. On an
// allocation failure mid-build the partial chain is torn down and the
// list is left exactly as it was.
func (l *List[T]) Reverse() error {
	rev := New[T](l.alloc)
	for n := l.head; n != nil; n = n.next {
		if err := rev.Prepend(n.Value); err != nil {
			rev.Destroy()
			return err
		}
	}
	old := l.tail
	l.head, l.tail = rev.head, rev.tail
	for old != nil {
		prev := old.prev
		l.alloc.ReleaseNode(old)
		old = prev
	}
	return nil
}

// SwapElements exchanges the values at indexes i and j, located in a
// single traversal. Either index missing is ErrOutOfBounds and leaves
// the list untouched.
func (l *List[T]) SwapElements(i, j int) error {
	if i < 0 || j < 0 {
		return ErrOutOfBounds
	}
	var ni, nj *Node[T]
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if idx == i {
			ni = n
		}
		if idx == j {
			nj = n
		}
		if ni != nil && nj != nil {
			break
		}
		idx++
	}
	if ni == nil || nj == nil {
		return ErrOutOfBounds
	}
	ni.Value, nj.Value = nj.Value, ni.Value
	return nil
}

// ToSlice materializes the elements, in order, into a buffer obtained
// from the list's allocation strategy. The caller owns the buffer and
// releases it through the strategy's ReleaseSlice, separately from the
// list.
func (l *List[T]) ToSlice() ([]T, error) {
	buf, err := l.alloc.AllocateSlice(l.Len())
	if err != nil {
		return nil, err
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		buf[i] = n.Value
		i++
	}
	return buf, nil
}
