package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math"

	"github.com/ezrec/docore/internal"
	"github.com/ezrec/docore/memory"
)

// RegisterInit is a register file initialization policy.
type RegisterInit int

//go:generate go tool stringer -linecomment -type=RegisterInit
const (
	INIT_ZERO    = RegisterInit(0) // zero
	INIT_PATTERN = RegisterInit(1) // pattern
)

var _cpu_defines = map[string]string{
	"LD":                 fmt.Sprintf("%#x", uint8(OP_LD)),
	"ST":                 fmt.Sprintf("%#x", uint8(OP_ST)),
	"ADD":                fmt.Sprintf("%#x", uint8(OP_ADD)),
	"XOR":                fmt.Sprintf("%#x", uint8(OP_XOR)),
	"MAX_REGISTER_INDEX": fmt.Sprintf("%v", MAX_REGISTER_INDEX),
}

// Config describes a CPU.
type Config struct {
	Registers int           // Register count. Zero selects MAX_REGISTER_INDEX+1.
	Init      RegisterInit  // Register initialization policy.
	Memory    memory.Memory // Memory owned by the CPU. Nil selects a default dense memory.
}

// withDefaults fills in the zero fields of the config.
func (config Config) withDefaults() (out Config, err error) {
	out = config

	if out.Registers == 0 {
		out.Registers = MAX_REGISTER_INDEX + 1
	}

	if out.Registers < 0 || out.Registers > REGISTER_LIMIT {
		err = errors.Join(ErrConfig, errors.New(f("%v registers", out.Registers)))
		return
	}

	switch out.Init {
	case INIT_ZERO, INIT_PATTERN:
	default:
		err = errors.Join(ErrConfig, errors.New(f("register init %v", out.Init)))
		return
	}

	if out.Memory == nil {
		out.Memory, err = memory.NewDense(memory.DEFAULT_CAPACITY, memory.DEFAULT_WIDTH)
		if err != nil {
			return
		}
	}

	return
}

// Cpu is the do-core1 execution engine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	register []uint16     // Register file.
	init     RegisterInit // Register initialization policy.
	memory   memory.Memory
}

// NewCpu creates a new CPU from a configuration.
func NewCpu(config Config) (cpu *Cpu, err error) {
	config, err = config.withDefaults()
	if err != nil {
		return
	}

	cpu = &Cpu{
		register: make([]uint16, config.Registers),
		init:     config.Init,
		memory:   config.Memory,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Applies the initialization policy to the register file.
// - Clears the memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Print(f("cpu: reset, %v registers", cpu.init))
	}

	for n := range cpu.register {
		switch cpu.init {
		case INIT_PATTERN:
			cpu.register[n] = uint16(n) * 0x10
		default:
			cpu.register[n] = 0
		}
	}

	cpu.memory.Reset()
}

// MaxRegister is the highest valid register index.
func (cpu *Cpu) MaxRegister() uint8 {
	return uint8(len(cpu.register) - 1)
}

// Register returns the value of a register.
func (cpu *Cpu) Register(index int) (value uint16, ok bool) {
	if index < 0 || index >= len(cpu.register) {
		return
	}

	return cpu.register[index], true
}

// Registers returns a copy of the register file.
func (cpu *Cpu) Registers() []uint16 {
	return append([]uint16(nil), cpu.register...)
}

// Memory returns the memory owned by the CPU.
func (cpu *Cpu) Memory() memory.Memory {
	return cpu.memory
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines),
		maps.All(map[string]string{
			"REGISTERS":    fmt.Sprintf("%v", len(cpu.register)),
			"MAX_REGISTER": fmt.Sprintf("%v", cpu.MaxRegister()),
		}),
	)
}

// String returns the register file as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.register {
		text += fmt.Sprintf("\tR%d: %#x\n", n, val)
	}

	return
}

// Process decodes and executes a single instruction word.
// On failure, neither the registers nor the memory are modified.
func (cpu *Cpu) Process(word uint16) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrWord(word), err)
		}
	}()

	insn, err := Decode(word, cpu.MaxRegister())
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Print(f("cpu: 0x%04x decoded into %v", word, insn))
	}

	err = cpu.Execute(insn)
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(insn Instruction) (err error) {
	// The instruction may have been decoded for a larger register file.
	if insn.op0 > cpu.MaxRegister() {
		err = ErrOp0Range
		return
	}
	if insn.op1 > cpu.MaxRegister() {
		err = ErrOp1Range
		return
	}

	a := cpu.register[insn.op0]
	b := cpu.register[insn.op1]

	switch insn.opcode {
	case OP_ADD:
		var sum uint16
		sum, err = Add(a, b)
		if err != nil {
			return
		}
		cpu.register[insn.op0] = sum
	case OP_XOR:
		cpu.register[insn.op0] = Xor(a, b)
	case OP_LD:
		var value uint32
		value, err = cpu.memory.Load(uint32(b))
		if err != nil {
			return
		}
		if value > math.MaxUint16 {
			err = ErrLoadRange(value)
			return
		}
		cpu.register[insn.op0] = uint16(value)
	case OP_ST:
		err = cpu.memory.Store(uint32(a), uint32(b))
	default:
		err = ErrInvalidOpcode(insn.opcode)
	}

	return
}

// Add returns a + b, or ErrAdditionOverflow if the sum exceeds 16 bits.
func Add(a, b uint16) (sum uint16, err error) {
	sum = a + b
	if sum < a {
		sum = 0
		err = ErrAdditionOverflow{A: a, B: b}
	}

	return
}

// Xor returns a ^ b.
func Xor(a, b uint16) uint16 {
	return a ^ b
}
