package blocklist

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// List is an ordered container with amortized O(1) append and prepend.
// Values are stored in a chain of blocks which are never reallocated, only an array of references to them is
// rearranged. References obtained by Ref are invalidated by any operation changing the length or capacity.
// List is not safe for concurrent use.
type List[T comparable] struct {
	w       window[T]
	log     *zap.Logger
	invalid T
}

// New returns an empty list.
func New[T comparable](opts ...Option[T]) *List[T] {
	o := newOptions(opts)
	return &List[T]{
		log:     o.log,
		invalid: o.invalid,
	}
}

// NewSized returns a list of size zero values.
func NewSized[T comparable](size int, opts ...Option[T]) *List[T] {
	l := New[T](opts...)
	l.Resize(size)
	return l
}

// NewFilled returns a list of size elements, each equal to value.
func NewFilled[T comparable](size int, value T, opts ...Option[T]) *List[T] {
	l := New[T](opts...)
	l.Fill(value, size)
	return l
}

// FromSlice returns a list holding values. With NoCopy the slice becomes the list's first storage block, so
// in-place writes are visible on both sides until the list is compacted, cleared or assigned.
func FromSlice[T comparable](values []T, mode CopyMode, opts ...Option[T]) *List[T] {
	l := New[T](opts...)

	var b *block[T]
	switch mode {
	case NoCopy:
		b = adoptBlock(values)
	default:
		b = newBlock[T](len(values))
		copy(b.Slots, values)
	}
	l.w = windowOn(b)
	return l
}

// Clone returns a deep copy of the list. Capacity is kept, slack content is not.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		w:       l.w.clone(),
		log:     l.log,
		invalid: l.invalid,
	}
}

// Assign replaces the content of the list by a deep copy of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	w := src.w.clone()
	l.w.reset()
	l.w = w
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.w.size
}

// Cap returns the number of elements the list can hold without allocating.
func (l *List[T]) Cap() int {
	return l.w.capacity()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.w.size == 0
}

// Get returns the element at idx without checking bounds.
func (l *List[T]) Get(idx int) T {
	l.assertIndex(idx)
	return *l.w.at(idx)
}

// Ref returns the pointer to the element at idx without checking bounds.
func (l *List[T]) Ref(idx int) *T {
	l.assertIndex(idx)
	return l.w.at(idx)
}

// At returns the element at idx, or the invalid value if idx is out of range.
func (l *List[T]) At(idx int) T {
	if !l.valid(idx) {
		l.outOfRange("at", idx)
		return l.invalid
	}
	return *l.w.at(idx)
}

// ValueOr returns the element at idx, or oob if idx is out of range.
func (l *List[T]) ValueOr(idx int, oob T) T {
	if !l.valid(idx) {
		return oob
	}
	return *l.w.at(idx)
}

// First returns the first element, or the invalid value if the list is empty.
func (l *List[T]) First() T {
	return l.At(0)
}

// Last returns the last element, or the invalid value if the list is empty.
func (l *List[T]) Last() T {
	return l.At(l.w.size - 1)
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	capacity := l.w.capacity()
	*l.w.appendSlot() = v
	l.traceGrowth(capacity)
}

// AppendValues adds values at the end.
func (l *List[T]) AppendValues(values ...T) {
	if len(values) == 0 {
		return
	}
	capacity := l.w.capacity()
	l.w.makeRoom(0, len(values))
	for _, v := range values {
		*l.w.appendSlot() = v
	}
	l.traceGrowth(capacity)
}

// AppendList adds all the elements of src at the end. src may be the list itself.
func (l *List[T]) AppendList(src *List[T]) {
	n := src.w.size
	if n == 0 {
		return
	}
	capacity := l.w.capacity()
	l.w.makeRoom(0, n)
	for i := 0; i < n; i++ {
		*l.w.appendSlot() = *src.w.at(i)
	}
	l.traceGrowth(capacity)
}

// Prepend adds v at the beginning.
func (l *List[T]) Prepend(v T) {
	capacity := l.w.capacity()
	*l.w.prependSlot() = v
	l.traceGrowth(capacity)
}

// Insert puts v at idx, idx must be in range [0, Len()].
func (l *List[T]) Insert(idx int, v T) bool {
	return l.InsertN(idx, v, 1)
}

// InsertN puts count copies of v at idx, idx must be in range [0, Len()].
func (l *List[T]) InsertN(idx int, v T, count int) bool {
	if idx < 0 || idx > l.w.size {
		l.outOfRange("insert", idx)
		return false
	}
	if count <= 0 {
		return count == 0
	}

	capacity := l.w.capacity()
	for _, p := range l.w.insertSlots(idx, count) {
		*p = v
	}
	l.traceGrowth(capacity)
	return true
}

// Set writes v at idx. If idx is past the end, the list is extended to idx+1 elements and
// elements between the old end and idx keep whatever the slots contained before.
func (l *List[T]) Set(idx int, v T) {
	if idx < 0 {
		l.outOfRange("set", idx)
		return
	}
	if idx >= l.w.size {
		capacity := l.w.capacity()
		l.w.resize(idx + 1)
		l.traceGrowth(capacity)
	}
	*l.w.at(idx) = v
}

// RemoveAt removes the element at idx.
func (l *List[T]) RemoveAt(idx int) bool {
	if !l.valid(idx) {
		l.outOfRange("remove", idx)
		return false
	}
	l.w.removeSlot(idx)
	return true
}

// RemoveFirst removes the first element.
func (l *List[T]) RemoveFirst() {
	if l.w.size == 0 {
		l.log.Warn("Removing first element of empty list")
		return
	}
	l.w.removeFirst()
}

// RemoveLast removes the last element.
func (l *List[T]) RemoveLast() {
	if l.w.size == 0 {
		l.log.Warn("Removing last element of empty list")
		return
	}
	l.w.removeLast()
}

// TakeAt removes the element at idx and returns it, or returns the invalid value if idx is out of range.
func (l *List[T]) TakeAt(idx int) T {
	if !l.valid(idx) {
		l.outOfRange("take", idx)
		return l.invalid
	}
	v := *l.w.at(idx)
	l.w.removeSlot(idx)
	return v
}

// TakeFirst removes the first element and returns it.
func (l *List[T]) TakeFirst() T {
	if l.w.size == 0 {
		l.outOfRange("take", 0)
		return l.invalid
	}
	v := *l.w.at(0)
	l.w.removeFirst()
	return v
}

// TakeLast removes the last element and returns it.
func (l *List[T]) TakeLast() T {
	if l.w.size == 0 {
		l.outOfRange("take", -1)
		return l.invalid
	}
	v := *l.w.at(l.w.size - 1)
	l.w.removeLast()
	return v
}

// Resize sets the length to size. Capacity grows if needed, dropped elements stay allocated as slack.
func (l *List[T]) Resize(size int) {
	if size < 0 {
		size = 0
	}
	capacity := l.w.capacity()
	l.w.resize(size)
	l.traceGrowth(capacity)
}

// Reserve makes sure the list has capacity of at least capacity elements.
func (l *List[T]) Reserve(capacity int) {
	current := l.w.capacity()
	l.w.grow(capacity)
	l.traceGrowth(current)
}

// Fill resizes the list to size elements (current length if size is negative) and sets all of them to v.
func (l *List[T]) Fill(v T, size int) {
	if size < 0 {
		size = l.w.size
	}
	l.Resize(size)
	for _, p := range l.w.live() {
		*p = v
	}
}

// SetAll sets every allocated slot to v, including the slack ones.
func (l *List[T]) SetAll(v T) {
	for _, p := range l.w.refs {
		*p = v
	}
}

// Clear removes all the elements and releases the storage.
func (l *List[T]) Clear() {
	l.w.reset()
}

// Compact releases slack so capacity equals length.
func (l *List[T]) Compact() {
	l.w.shrink()
}

// Swap exchanges content, length and capacity of two lists without copying elements.
// The logger and the invalid value stay with their lists and are not exchanged.
func (l *List[T]) Swap(other *List[T]) {
	l.w, other.w = other.w, l.w
}

// Sort sorts the list using cmp. The sort is not guaranteed to be stable.
func (l *List[T]) Sort(cmp CompareFunc[T]) {
	slices.SortFunc(l.w.live(), func(a, b *T) int {
		return cmp(*a, *b)
	})
}

// Equal reports whether both lists hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.w.size != other.w.size {
		return false
	}
	for i, p := range l.w.live() {
		if *p != *other.w.at(i) {
			return false
		}
	}
	return true
}

// Concat returns a new list with elements of l followed by those of other, stored in one block.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	b := newBlock[T](l.w.size + other.w.size)
	for i, p := range l.w.live() {
		b.Slots[i] = *p
	}
	for i, p := range other.w.live() {
		b.Slots[l.w.size+i] = *p
	}
	return &List[T]{
		w:       windowOn(b),
		log:     l.log,
		invalid: l.invalid,
	}
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.w.size)
	for _, p := range l.w.live() {
		s = append(s, *p)
	}
	return s
}

// Each calls fn for every element in order until it returns false.
func (l *List[T]) Each(fn func(idx int, v T) bool) {
	for i, p := range l.w.live() {
		if !fn(i, *p) {
			return
		}
	}
}

func (l *List[T]) valid(idx int) bool {
	return idx >= 0 && idx < l.w.size
}

func (l *List[T]) assertIndex(idx int) {
	if debugChecks && !l.valid(idx) {
		panic(errors.Errorf("accessing list element %d outside range [0..%d)", idx, l.w.size))
	}
}

func (l *List[T]) outOfRange(op string, idx int) {
	l.log.Warn("Index out of range", zap.String("op", op), zap.Int("index", idx), zap.Int("length", l.w.size))
}

func (l *List[T]) traceGrowth(capacity int) {
	if c := l.w.capacity(); c != capacity {
		l.log.Debug("List resized",
			zap.Int("length", l.w.size),
			zap.Int("fromCapacity", capacity),
			zap.Int("toCapacity", c),
			zap.Int("blocks", l.w.store.Blocks()))
	}
}
