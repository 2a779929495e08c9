package blocklist

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	return l.IndexFrom(v, 0)
}

// IndexFrom returns the index of the first element equal to v starting at from, or -1.
func (l *List[T]) IndexFrom(v T, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < l.w.size; i++ {
		if *l.w.at(i) == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[T]) LastIndexOf(v T) int {
	return l.LastIndexFrom(v, l.w.size-1)
}

// LastIndexFrom returns the index of the last element equal to v, searching backwards from from, or -1.
func (l *List[T]) LastIndexFrom(v T, from int) int {
	if from >= l.w.size {
		from = l.w.size - 1
	}
	for i := from; i >= 0; i-- {
		if *l.w.at(i) == v {
			return i
		}
	}
	return -1
}

// Contains reports whether any element equals v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Count returns the number of elements equal to v.
func (l *List[T]) Count(v T) int {
	var n int
	for _, p := range l.w.live() {
		if *p == v {
			n++
		}
	}
	return n
}

// StartsWith reports whether the list is not empty and its first element equals v.
func (l *List[T]) StartsWith(v T) bool {
	return l.w.size > 0 && *l.w.at(0) == v
}

// EndsWith reports whether the list is not empty and its last element equals v.
func (l *List[T]) EndsWith(v T) bool {
	return l.w.size > 0 && *l.w.at(l.w.size-1) == v
}

// Remove removes the first element equal to v.
func (l *List[T]) Remove(v T) bool {
	idx := l.IndexOf(v)
	if idx == -1 {
		return false
	}
	l.w.removeSlot(idx)
	return true
}

// RemoveAll removes every element equal to v and returns how many were removed.
func (l *List[T]) RemoveAll(v T) int {
	live := l.w.live()
	var kept int
	for i, p := range live {
		if *p == v {
			continue
		}
		live[kept], live[i] = live[i], live[kept]
		kept++
	}
	removed := l.w.size - kept
	l.w.size = kept
	return removed
}

// Replace overwrites the first element equal to old with v.
func (l *List[T]) Replace(old, v T) bool {
	idx := l.IndexOf(old)
	if idx == -1 {
		return false
	}
	*l.w.at(idx) = v
	return true
}

// ReplaceAll overwrites every element equal to old with v and returns how many were replaced.
func (l *List[T]) ReplaceAll(old, v T) int {
	var n int
	for _, p := range l.w.live() {
		if *p == old {
			*p = v
			n++
		}
	}
	return n
}

// ReplaceAt overwrites the element at idx.
func (l *List[T]) ReplaceAt(idx int, v T) bool {
	if !l.valid(idx) {
		l.outOfRange("replace", idx)
		return false
	}
	*l.w.at(idx) = v
	return true
}
