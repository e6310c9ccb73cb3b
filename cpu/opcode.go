package cpu

import (
	"fmt"
)

// Opcode is an instruction operation selector.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LD  = Opcode(0x00) // ld
	OP_ST  = Opcode(0x01) // st
	OP_ADD = Opcode(0x02) // add
	OP_XOR = Opcode(0x03) // xor
)

const (
	MAX_REGISTER_INDEX = 7  // Highest register index of the default register file.
	REGISTER_LIMIT     = 16 // Registers addressable by a 4-bit operand.
)

// Valid returns true if the opcode is one of the known encodings.
func (op Opcode) Valid() bool {
	return op <= OP_XOR
}

// Instruction is a decoded instruction word.
type Instruction struct {
	opcode Opcode
	op0    uint8
	op1    uint8
}

// Encode packs an opcode and two operands into an instruction word.
// No validation is performed.
func Encode(op Opcode, op0, op1 uint8) uint16 {
	return (uint16(op) << 8) | (uint16(op0&0xf) << 4) | (uint16(op1&0xf) << 0)
}

// Decode decodes an instruction word, validating the opcode and that
// both operands are at most maxRegister.
func Decode(word uint16, maxRegister uint8) (insn Instruction, err error) {
	op := Opcode((word >> 8) & 0xff)
	if !op.Valid() {
		err = ErrInvalidOpcode(op)
		return
	}

	op0 := uint8((word >> 4) & 0xf)
	if op0 > maxRegister {
		err = ErrOp0Range
		return
	}

	op1 := uint8((word >> 0) & 0xf)
	if op1 > maxRegister {
		err = ErrOp1Range
		return
	}

	insn = Instruction{opcode: op, op0: op0, op1: op1}
	return
}

// Opcode returns the operation.
func (insn Instruction) Opcode() Opcode {
	return insn.opcode
}

// Op0 returns the destination, or first operand, register index.
func (insn Instruction) Op0() uint8 {
	return insn.op0
}

// Op1 returns the source, or second operand, register index.
func (insn Instruction) Op1() uint8 {
	return insn.op1
}

// Word re-encodes the instruction.
func (insn Instruction) Word() uint16 {
	return Encode(insn.opcode, insn.op0, insn.op1)
}

// String returns the assembly language representation of this instruction.
func (insn Instruction) String() string {
	return fmt.Sprintf("%v r%d r%d", insn.opcode.String(), insn.op0, insn.op1)
}
