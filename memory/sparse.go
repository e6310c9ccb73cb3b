package memory

import (
	"iter"

	"github.com/ezrec/docore/internal"
)

// Sparse is an associative store. Addresses that were never stored are
// absent, and loading them is an error.
type Sparse struct {
	// Limit on distinct addresses. Zero is unbounded.
	Limit uint32

	slots map[uint32]uint32
}

var _ Memory = (*Sparse)(nil)

// NewSparse creates a sparse memory holding at most capacity addresses.
func NewSparse(capacity uint32) (mem *Sparse) {
	mem = &Sparse{
		Limit: capacity,
		slots: map[uint32]uint32{},
	}

	return
}

func (mem *Sparse) Capacity() uint32 {
	return mem.Limit
}

// Width of a sparse slot is always 32 bits.
func (mem *Sparse) Width() uint {
	return 32
}

func (mem *Sparse) Load(addr uint32) (value uint32, err error) {
	value, ok := mem.slots[addr]
	if !ok {
		err = ErrMemoryEmpty(addr)
	}

	return
}

// Store inserts or updates addr. Inserting a new address into a full
// memory fails with ErrStackOverflow; updates always succeed.
func (mem *Sparse) Store(addr uint32, value uint32) (err error) {
	if mem.slots == nil {
		mem.slots = map[uint32]uint32{}
	}

	_, present := mem.slots[addr]
	if !present && mem.Full() {
		err = ErrStackOverflow(addr)
		return
	}

	mem.slots[addr] = value
	return
}

// Len is the number of stored addresses.
func (mem *Sparse) Len() int {
	return len(mem.slots)
}

// Full is true when no new address can be stored.
func (mem *Sparse) Full() bool {
	return mem.Limit != 0 && uint32(len(mem.slots)) >= mem.Limit
}

func (mem *Sparse) Slots() iter.Seq2[uint32, uint32] {
	return internal.IterSortedMap(mem.slots)
}

func (mem *Sparse) Reset() {
	clear(mem.slots)
}

func (mem *Sparse) String() string {
	return dump(mem)
}
