package memory

import (
	"errors"

	"github.com/ezrec/docore/translate"
)

var f = translate.From

var (
	ErrWidth = errors.New(f("unsupported slot width"))
)

// ErrAddressRange is returned when an address is beyond the capacity.
type ErrAddressRange uint32

func (err ErrAddressRange) Error() string {
	return f("address 0x%x out of range", uint32(err))
}

func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrValueRange is returned when a value does not fit in a slot.
type ErrValueRange uint32

func (err ErrValueRange) Error() string {
	return f("value 0x%x out of range", uint32(err))
}

func (err ErrValueRange) Is(target error) (ok bool) {
	_, ok = target.(ErrValueRange)
	return
}

// ErrMemoryEmpty is returned when loading an address that was never stored.
type ErrMemoryEmpty uint32

func (err ErrMemoryEmpty) Error() string {
	return f("memory empty at 0x%x", uint32(err))
}

func (err ErrMemoryEmpty) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryEmpty)
	return
}

// ErrStackOverflow is returned when a store would exceed the declared capacity.
type ErrStackOverflow uint32

func (err ErrStackOverflow) Error() string {
	return f("stack overflow at 0x%x", uint32(err))
}

func (err ErrStackOverflow) Is(target error) (ok bool) {
	_, ok = target.(ErrStackOverflow)
	return
}

type ErrKind string

func (err ErrKind) Error() string {
	return f("'%v' is not a memory kind", string(err))
}
