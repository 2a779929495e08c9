package blocklist

type slotOwner[T any] interface {
	release(slots []T)
}

// ownedSlots are allocated by the list, so they are zeroed on release to drop references kept by values.
type ownedSlots[T any] struct{}

func (ownedSlots[T]) release(slots []T) {
	clear(slots)
}

// adoptedSlots belong to the caller and are never touched on release.
type adoptedSlots[T any] struct{}

func (adoptedSlots[T]) release([]T) {}

type block[T any] struct {
	Slots []T
	Next  *block[T]

	owner slotOwner[T]
}

func newBlock[T any](size int) *block[T] {
	return &block[T]{
		Slots: make([]T, size),
		owner: ownedSlots[T]{},
	}
}

func adoptBlock[T any](buffer []T) *block[T] {
	return &block[T]{
		Slots: buffer,
		owner: adoptedSlots[T]{},
	}
}

// chain is the append-only sequence of blocks holding element values.
type chain[T any] struct {
	Head *block[T]
	Tail *block[T]
}

func (c *chain[T]) Append(b *block[T]) {
	if c.Tail == nil {
		c.Head = b
	} else {
		c.Tail.Next = b
	}
	c.Tail = b
}

func (c *chain[T]) Slots() int {
	var n int
	for b := c.Head; b != nil; b = b.Next {
		n += len(b.Slots)
	}
	return n
}

func (c *chain[T]) Blocks() int {
	var n int
	for b := c.Head; b != nil; b = b.Next {
		n++
	}
	return n
}

// Release drops all the blocks at once.
func (c *chain[T]) Release() {
	for b := c.Head; b != nil; {
		next := b.Next
		b.owner.release(b.Slots)
		b.Slots = nil
		b.Next = nil
		b = next
	}
	c.Head = nil
	c.Tail = nil
}
