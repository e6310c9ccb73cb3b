// Package memory implements the addressable store used by the do-core1 CPU.
//
// Two address-space organizations are provided behind the Memory interface:
// Dense, a fixed array of slots where every address below the capacity is
// present, and Sparse, an associative store where unwritten addresses are
// absent rather than zero.
package memory

import (
	"fmt"
	"iter"
	"maps"
)

const (
	MAX_MEMORY_SIZE  = 4096                 // Memory size, in bits.
	DEFAULT_WIDTH    = 16                   // Default slot width, in bits.
	DEFAULT_CAPACITY = MAX_MEMORY_SIZE / 16 // Default number of slots.
)

// Kind selects a memory organization.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_DENSE  = Kind(0) // dense
	KIND_SPARSE = Kind(1) // sparse
)

// ParseKind returns the Kind named by text.
func ParseKind(text string) (kind Kind, err error) {
	for kind = KIND_DENSE; kind <= KIND_SPARSE; kind++ {
		if kind.String() == text {
			return
		}
	}

	err = ErrKind(text)
	return
}

// Memory is a bounds and range checked store of fixed width values.
type Memory interface {
	// Load returns the value at addr.
	Load(addr uint32) (value uint32, err error)
	// Store replaces the value at addr.
	Store(addr uint32, value uint32) (err error)
	// Capacity is the number of addressable slots, or 0 if unbounded.
	Capacity() uint32
	// Width is the size of a slot, in bits.
	Width() uint
	// Slots iterates over the populated slots in ascending address order.
	Slots() iter.Seq2[uint32, uint32]
	// Reset discards all stored values.
	Reset()
	// String renders the populated slots, one per line.
	String() string
}

// New creates a memory of the requested kind.
func New(kind Kind, capacity uint32, width uint) (mem Memory, err error) {
	switch kind {
	case KIND_DENSE:
		mem, err = NewDense(capacity, width)
	case KIND_SPARSE:
		mem = NewSparse(capacity)
	default:
		err = ErrKind(kind.String())
	}

	return
}

// Defines returns the assembler equates describing mem.
func Defines(mem Memory) iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_CAPACITY": fmt.Sprintf("%v", mem.Capacity()),
		"MEMORY_WIDTH":    fmt.Sprintf("%v", mem.Width()),
	})
}

// dump renders the populated slots, one per line.
func dump(mem Memory) (text string) {
	digits := int(mem.Width()+3) / 4
	for addr, value := range mem.Slots() {
		text += fmt.Sprintf("\t0x%02x\t0x%0*x\n", addr, digits, value)
	}

	return
}
