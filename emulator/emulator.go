// Package emulator assembles a do-core1 CPU and its memory from a single
// configuration, and provides the inspection hooks used by the command line.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/internal"
	"github.com/ezrec/docore/memory"
)

// Config describes an emulator.
type Config struct {
	Registers int              // Register count. Zero selects the default of 8.
	Init      cpu.RegisterInit // Register initialization policy.
	Kind      memory.Kind      // Memory organization.
	Capacity  uint32           // Memory capacity. Zero selects the default for dense memory, and unbounded for sparse memory.
	Width     uint             // Dense memory slot width. Zero selects 16 bits.
}

// Emulator state. CPU + memory + assembler.
type Emulator struct {
	Verbose   bool          // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Assembler cpu.Assembler // Assembler for instruction text.
}

// State is a snapshot of the emulator.
type State struct {
	Registers []uint16
	Memory    map[uint32]uint32
}

// NewEmulator creates a new emulator.
func NewEmulator(config Config) (emu *Emulator, err error) {
	if config.Width == 0 {
		config.Width = memory.DEFAULT_WIDTH
	}

	if config.Capacity == 0 && config.Kind == memory.KIND_DENSE {
		config.Capacity = memory.DEFAULT_CAPACITY
	}

	mem, err := memory.New(config.Kind, config.Capacity, config.Width)
	if err != nil {
		err = errors.Join(cpu.ErrConfig, err)
		return
	}

	cp, err := cpu.NewCpu(cpu.Config{
		Registers: config.Registers,
		Init:      config.Init,
		Memory:    mem,
	})
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu: cp,
	}

	emu.Assembler.Define(emu.Defines())

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		memory.Defines(emu.Cpu.Memory()),
	)
}

// Assemble translates a line of instruction text into an instruction word.
func (emu *Emulator) Assemble(text string) (word uint16, err error) {
	emu.Assembler.Verbose = emu.Verbose

	return emu.Assembler.Parse(text)
}

// Process executes a single instruction word.
func (emu *Emulator) Process(word uint16) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Process(word)
	if err != nil {
		err = &ErrRuntime{Word: word, Err: err}
	}

	return
}

// Snapshot copies the registers and the populated memory slots.
func (emu *Emulator) Snapshot() State {
	return State{
		Registers: emu.Cpu.Registers(),
		Memory:    maps.Collect(emu.Cpu.Memory().Slots()),
	}
}

// Dump writes the registers and the populated memory slots to w.
func (emu *Emulator) Dump(w io.Writer, preamble string) (err error) {
	_, err = fmt.Fprintf(w, "do-core1: %v\n%v", preamble, emu.Cpu.String())
	if err != nil {
		return
	}

	slots := emu.Cpu.Memory().String()
	if len(slots) == 0 {
		return
	}

	_, err = fmt.Fprintf(w, "do-core1: %v\n%v", f("%v memory", preamble), slots)
	return
}
