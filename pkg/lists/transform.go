package lists

// MapElements invokes fn with a reference to each element in b and its
// absolute index, in chain order. Results are not collected; fn mutates
// through the reference if it wants to.
func (l *List[T]) MapElements(fn func(v *T, index int), b Boundaries) error {
	return l.walk(b, func(n *Node[T], i int) bool {
		fn(&n.Value, i)
		return true
	})
}

// MapNodes invokes fn with each node in b and its absolute index, in
// chain order.
func (l *List[T]) MapNodes(fn func(n *Node[T], index int), b Boundaries) error {
	return l.walk(b, func(n *Node[T], i int) bool {
		fn(n, i)
		return true
	})
}

// FilterIndexes returns a new heap-backed list of the indexes in b
// whose elements satisfy pred, in ascending order, or nil when none do.
// A non-nil result is independently owned; Destroy it separately.
func (l *List[T]) FilterIndexes(pred func(v *T, index int) bool, b Boundaries) (*List[int], error) {
	var out *List[int]
	var aerr error
	err := l.walk(b, func(n *Node[T], i int) bool {
		if !pred(&n.Value, i) {
			return true
		}
		if out == nil {
			out = New[int](nil)
		}
		aerr = out.Append(i)
		return aerr == nil
	})
	if err == nil {
		err = aerr
	}
	if err != nil {
		if out != nil {
			out.Destroy()
		}
		return nil, err
	}
	return out, nil
}

// FilterElements is FilterIndexes collecting element references instead
// of indexes.
func (l *List[T]) FilterElements(pred func(v *T, index int) bool, b Boundaries) (*List[*T], error) {
	var out *List[*T]
	var aerr error
	err := l.walk(b, func(n *Node[T], i int) bool {
		if !pred(&n.Value, i) {
			return true
		}
		if out == nil {
			out = New[*T](nil)
		}
		aerr = out.Append(&n.Value)
		return aerr == nil
	})
	if err == nil {
		err = aerr
	}
	if err != nil {
		if out != nil {
			out.Destroy()
		}
		return nil, err
	}
	return out, nil
}

// FilterNodes is FilterIndexes collecting node references instead of
// indexes.
func (l *List[T]) FilterNodes(pred func(n *Node[T], index int) bool, b Boundaries) (*List[*Node[T]], error) {
	var out *List[*Node[T]]
	var aerr error
	err := l.walk(b, func(n *Node[T], i int) bool {
		if !pred(n, i) {
			return true
		}
		if out == nil {
			out = New[*Node[T]](nil)
		}
		aerr = out.Append(n)
		return aerr == nil
	})
	if err == nil {
		err = aerr
	}
	if err != nil {
		if out != nil {
			out.Destroy()
		}
		return nil, err
	}
	return out, nil
}
