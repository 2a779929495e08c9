package blocklist

import (
	"golang.org/x/exp/slices"
)

// window is the floating range [start, start+size) over refs.
// Cells outside the range are slack pointing to unused slots. refs is always a permutation of all the slots
// stored in the chain, so references are moved around but the values they point to never are.
type window[T any] struct {
	refs  []*T
	start int
	size  int
	store chain[T]
}

func (w *window[T]) capacity() int {
	return len(w.refs)
}

func (w *window[T]) headSlack() int {
	return w.start
}

func (w *window[T]) tailSlack() int {
	return len(w.refs) - w.start - w.size
}

func (w *window[T]) live() []*T {
	return w.refs[w.start : w.start+w.size]
}

func (w *window[T]) at(idx int) *T {
	return w.refs[w.start+idx]
}

// makeRoom guarantees at least head cells of head slack and tail cells of tail slack.
// If the window fills at most half of the required capacity it is moved in place, otherwise
// capacity is doubled (or set to the exact requirement if doubling is not enough).
func (w *window[T]) makeRoom(head, tail int) {
	if w.headSlack() >= head && w.tailSlack() >= tail {
		return
	}

	need := w.size + head + tail
	capacity := len(w.refs)
	if 2*need > capacity {
		capacity = max(2*capacity, need)
	}
	w.relayout(capacity, head, tail)
}

// relayout places the window so spare slack is shared evenly by both ends, allocating a new block
// covering the capacity difference if needed. State is assigned only after all allocations succeed.
func (w *window[T]) relayout(capacity, head, tail int) {
	spare := capacity - w.size - head - tail
	start := head + spare/2

	if capacity == len(w.refs) {
		w.moveTo(start)
		return
	}

	b := newBlock[T](capacity - len(w.refs))
	slack := make([]*T, 0, capacity-w.size)
	slack = append(slack, w.refs[:w.start]...)
	slack = append(slack, w.refs[w.start+w.size:]...)
	for i := range b.Slots {
		slack = append(slack, &b.Slots[i])
	}

	refs := make([]*T, capacity)
	copy(refs, slack[:start])
	copy(refs[start:], w.live())
	copy(refs[start+w.size:], slack[start:])

	w.store.Append(b)
	w.refs = refs
	w.start = start
}

func (w *window[T]) moveTo(start int) {
	switch {
	case start < w.start:
		rotateLeft(w.refs[start:w.start+w.size], w.start-start)
	case start > w.start:
		rotateRight(w.refs[w.start:start+w.size], start-w.start)
	}
	w.start = start
}

func (w *window[T]) appendSlot() *T {
	w.makeRoom(0, 1)
	p := w.refs[w.start+w.size]
	w.size++
	return p
}

func (w *window[T]) prependSlot() *T {
	w.makeRoom(1, 0)
	w.start--
	w.size++
	return w.refs[w.start]
}

// insertSlots opens n cells at idx, shifting references on the side holding fewer elements. On a tie the
// tail side is shifted. Returned cells point to slots with unspecified content.
func (w *window[T]) insertSlots(idx, n int) []*T {
	if idx < w.size-idx {
		w.makeRoom(n, 0)
		rotateLeft(w.refs[w.start-n:w.start+idx], n)
		w.start -= n
	} else {
		w.makeRoom(0, n)
		rotateRight(w.refs[w.start+idx:w.start+w.size+n], n)
	}
	w.size += n
	return w.refs[w.start+idx : w.start+idx+n]
}

// removeSlot closes the cell at idx, turning it into slack on the cheaper side. On a tie the tail side is shifted.
func (w *window[T]) removeSlot(idx int) {
	if idx < w.size-1-idx {
		rotateRight(w.refs[w.start:w.start+idx+1], 1)
		w.start++
	} else {
		rotateLeft(w.refs[w.start+idx:w.start+w.size], 1)
	}
	w.size--
}

func (w *window[T]) removeFirst() {
	w.start++
	w.size--
}

func (w *window[T]) removeLast() {
	w.size--
}

// resize grows capacity only if size exceeds it. Otherwise the window is moved so the tail slack suffices.
func (w *window[T]) resize(size int) {
	if extra := size - w.size; extra > w.tailSlack() {
		if size <= len(w.refs) {
			w.relayout(len(w.refs), 0, extra)
		} else {
			w.makeRoom(0, extra)
		}
	}
	w.size = size
}

// grow adds slack until capacity is reached, it never shrinks.
func (w *window[T]) grow(capacity int) {
	if capacity > len(w.refs) {
		w.relayout(capacity, 0, 0)
	}
}

// shrink replaces the chain with one block holding exactly the live values.
func (w *window[T]) shrink() {
	if w.size == len(w.refs) {
		return
	}
	if w.size == 0 {
		w.reset()
		return
	}

	b := newBlock[T](w.size)
	refs := make([]*T, w.size)
	for i, p := range w.live() {
		b.Slots[i] = *p
		refs[i] = &b.Slots[i]
	}

	w.store.Release()
	w.store.Append(b)
	w.refs = refs
	w.start = 0
}

func (w *window[T]) reset() {
	w.store.Release()
	w.refs = nil
	w.start = 0
	w.size = 0
}

// clone copies live values into a single new block of the same capacity, keeping the window offset.
func (w *window[T]) clone() window[T] {
	c := window[T]{
		start: w.start,
		size:  w.size,
	}
	if len(w.refs) == 0 {
		return c
	}

	b := newBlock[T](len(w.refs))
	c.refs = make([]*T, len(w.refs))
	for i := range b.Slots {
		c.refs[i] = &b.Slots[i]
	}
	for i, p := range w.live() {
		*c.refs[w.start+i] = *p
	}
	c.store.Append(b)
	return c
}

func windowOn[T any](b *block[T]) window[T] {
	w := window[T]{
		size: len(b.Slots),
	}
	if len(b.Slots) == 0 {
		return w
	}

	w.refs = make([]*T, len(b.Slots))
	for i := range b.Slots {
		w.refs[i] = &b.Slots[i]
	}
	w.store.Append(b)
	return w
}

func rotateLeft[T any](s []T, k int) {
	if k == 0 || k == len(s) {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

func rotateRight[T any](s []T, k int) {
	rotateLeft(s, len(s)-k)
}
