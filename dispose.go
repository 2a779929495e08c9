package blocklist

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// EraseLast disposes the last element, zeroes its slot and removes it from the list.
// Regular removal never disposes elements, this is the only place it happens besides EraseAll.
func EraseLast[T interface {
	comparable
	Disposable
}](l *List[T]) error {
	if l.w.size == 0 {
		l.log.Warn("Erasing last element of empty list")
		return nil
	}

	idx := l.w.size - 1
	err := dispose(l.w.at(idx))
	l.w.removeLast()
	return errors.Wrapf(err, "disposing element %d failed", idx)
}

// EraseAll disposes all the elements and empties the list. Zero elements are skipped. Storage is kept,
// so capacity stays unchanged.
func EraseAll[T interface {
	comparable
	Disposable
}](l *List[T]) error {
	var err error
	for i, p := range l.w.live() {
		if errDispose := dispose(p); errDispose != nil {
			err = multierr.Append(err, errors.Wrapf(errDispose, "disposing element %d failed", i))
		}
	}
	l.w.size = 0
	return err
}

func dispose[T interface {
	comparable
	Disposable
}](p *T) error {
	var zero T
	if *p == zero {
		return nil
	}
	err := (*p).Dispose()
	*p = zero
	return err
}
