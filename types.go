package blocklist

import (
	"go.uber.org/zap"
)

// CopyMode defines how FromSlice treats the caller's slice.
type CopyMode int

// Copy modes.
const (
	// Copy duplicates values into storage owned by the list.
	Copy CopyMode = iota
	// NoCopy adopts the caller's slice as the first storage block, so both sides observe writes.
	NoCopy
)

// CompareFunc is the three-way comparator used by Sort.
// It returns a negative number when a < b, zero when a == b and a positive number when a > b.
type CompareFunc[T any] func(a, b T) int

// Disposable is implemented by element types wrapping a resource which must be released explicitly.
type Disposable interface {
	Dispose() error
}

// Option configures the list.
type Option[T any] func(o *options[T])

type options[T any] struct {
	log     *zap.Logger
	invalid T
}

// WithLogger sets the logger receiving diagnostics about bounds violations and growth.
func WithLogger[T any](log *zap.Logger) Option[T] {
	return func(o *options[T]) {
		o.log = log
	}
}

// WithInvalid sets the sentinel value returned by checked accessors on out-of-range access.
func WithInvalid[T any](invalid T) Option[T] {
	return func(o *options[T]) {
		o.invalid = invalid
	}
}

func newOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
