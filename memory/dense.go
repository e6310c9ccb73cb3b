package memory

import (
	"iter"
)

// Dense is a fixed array of slots. Every address below the capacity is
// present and reads as zero until written.
type Dense struct {
	slots []uint16
	width uint
}

var _ Memory = (*Dense)(nil)

// NewDense creates a dense memory of capacity slots, each width bits wide.
// Only 8 and 16 bit slots are supported.
func NewDense(capacity uint32, width uint) (mem *Dense, err error) {
	if width != 8 && width != 16 {
		err = ErrWidth
		return
	}

	mem = &Dense{
		slots: make([]uint16, capacity),
		width: width,
	}

	return
}

func (mem *Dense) Capacity() uint32 {
	return uint32(len(mem.slots))
}

func (mem *Dense) Width() uint {
	return mem.width
}

func (mem *Dense) Load(addr uint32) (value uint32, err error) {
	if addr >= mem.Capacity() {
		err = ErrAddressRange(addr)
		return
	}

	value = uint32(mem.slots[addr])
	return
}

func (mem *Dense) Store(addr uint32, value uint32) (err error) {
	if addr >= mem.Capacity() {
		err = ErrAddressRange(addr)
		return
	}

	if value >= (1 << mem.width) {
		err = ErrValueRange(value)
		return
	}

	mem.slots[addr] = uint16(value)
	return
}

// Slots iterates over the non-zero slots.
func (mem *Dense) Slots() iter.Seq2[uint32, uint32] {
	return func(yield func(addr uint32, value uint32) bool) {
		for addr, value := range mem.slots {
			if value == 0 {
				continue
			}
			if !yield(uint32(addr), uint32(value)) {
				return
			}
		}
	}
}

func (mem *Dense) Reset() {
	clear(mem.slots)
}

func (mem *Dense) String() string {
	return dump(mem)
}
