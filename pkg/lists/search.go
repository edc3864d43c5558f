package lists

// walk invokes fn once per node whose absolute index falls in b, in
// chain order, until fn returns false. The only error is an invalid
// range.
func (l *List[T]) walk(b Boundaries, fn func(n *Node[T], index int) bool) error {
	start, stop, err := b.resolve(l.Len())
	if err != nil {
		return err
	}
	i := 0
	for n := l.head; n != nil && i < stop; n = n.next {
		if i >= start && !fn(n, i) {
			return nil
		}
		i++
	}
	return nil
}

// IndexOf returns the index of the first element in b equal to v. The
// second result is false when no element matches.
func (l *List[T]) IndexOf(v T, b Boundaries) (int, bool, error) {
	index, found := 0, false
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value == v {
			index, found = i, true
			return false
		}
		return true
	})
	if err != nil {
		return 0, false, err
	}
	return index, found, nil
}

// AllIndexesOf returns a new heap-backed list of the indexes of every
// element in b equal to v, in ascending order. When nothing matches the
// result is nil, not an empty list; the caller owns a non-nil result
// and must Destroy it separately.
func (l *List[T]) AllIndexesOf(v T, b Boundaries) (*List[int], error) {
	var out *List[int]
	var aerr error
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value != v {
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

// Find returns a reference to the first element in b equal to v, or nil
// when nothing matches.
func (l *List[T]) Find(v T, b Boundaries) (*T, error) {
	var ref *T
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value == v {
			ref = &n.Value
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// FindAll returns a new heap-backed list of references to every element
// in b equal to v, in chain order, or nil when nothing matches. Same
// ownership convention as AllIndexesOf.
func (l *List[T]) FindAll(v T, b Boundaries) (*List[*T], error) {
	var out *List[*T]
	var aerr error
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value != v {
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

// Replace overwrites the first element in b equal to old with new. It
// reports whether a match was found.
func (l *List[T]) Replace(old, new T, b Boundaries) (bool, error) {
	found := false
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value == old {
			n.Value = new
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// ReplaceAll overwrites every element in b equal to old with new and
// returns how many it replaced. Zero matches is a zero count, not an
// error.
func (l *List[T]) ReplaceAll(old, new T, b Boundaries) (int, error) {
	count := 0
	err := l.walk(b, func(n *Node[T], i int) bool {
		if n.Value == old {
			n.Value = new
			count++
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns how many elements of the whole list equal v.
func (l *List[T]) Count(v T) int {
	c := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			c++
		}
	}
	return c
}

// Contains reports whether any element of the whole list equals v.
func (l *List[T]) Contains(v T) bool { return l.ContainsAtLeast(v, 1) }

// ContainsAtLeast reports whether at least k elements of the whole list
// equal v. Any k below one is trivially satisfied.
func (l *List[T]) ContainsAtLeast(v T, k int) bool {
	if k <= 0 {
		return true
	}
	c := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			c++
			if c >= k {
				return true
			}
		}
	}
	return false
}
