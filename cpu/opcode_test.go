package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word uint16
		op   Opcode
		op0  uint8
		op1  uint8
	}){
		{"add_r0_r1", 0x0201, OP_ADD, 0, 1},
		{"add_r7_r2", 0x0272, OP_ADD, 7, 2},
		{"ld_r0_r1", 0x0001, OP_LD, 0, 1},
		{"xor_r2_r3", 0x0323, OP_XOR, 2, 3},
		{"st_r5_r0", 0x0150, OP_ST, 5, 0},
		{"ld_r7_r7", 0x0077, OP_LD, 7, 7},
	}

	for _, entry := range table {
		insn, err := Decode(entry.word, MAX_REGISTER_INDEX)
		assert.NoError(err, entry.name)
		assert.Equal(entry.op, insn.Opcode(), entry.name)
		assert.Equal(entry.op0, insn.Op0(), entry.name)
		assert.Equal(entry.op1, insn.Op1(), entry.name)
		assert.Equal(entry.word, insn.Word(), entry.name)
	}
}

func TestDecode_OperandRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(0x0291, MAX_REGISTER_INDEX)
	assert.Equal(ErrOp0Range, err)

	_, err = Decode(0x020a, MAX_REGISTER_INDEX)
	assert.Equal(ErrOp1Range, err)

	// op0 is checked before op1.
	_, err = Decode(0x02ff, MAX_REGISTER_INDEX)
	assert.Equal(ErrOp0Range, err)

	for op := OP_LD; op.Valid(); op++ {
		for reg := uint8(MAX_REGISTER_INDEX + 1); reg < REGISTER_LIMIT; reg++ {
			_, err = Decode(Encode(op, reg, 0), MAX_REGISTER_INDEX)
			assert.Equal(ErrOp0Range, err, "%v r%d r0", op, reg)

			_, err = Decode(Encode(op, 0, reg), MAX_REGISTER_INDEX)
			assert.Equal(ErrOp1Range, err, "%v r0 r%d", op, reg)
		}
	}

	// A wider register file accepts them.
	insn, err := Decode(0x02ff, REGISTER_LIMIT-1)
	assert.NoError(err)
	assert.Equal(uint8(15), insn.Op0())
	assert.Equal(uint8(15), insn.Op1())
}

func TestDecode_InvalidOpcode(t *testing.T) {
	assert := assert.New(t)

	for opcode := 0x04; opcode <= 0xff; opcode++ {
		word := uint16(opcode) << 8
		_, err := Decode(word|0x01, MAX_REGISTER_INDEX)
		assert.Equal(ErrInvalidOpcode(opcode), err)
		assert.ErrorIs(err, ErrInvalidOpcode(0))

		// Opcode is checked before the operands.
		_, err = Decode(word|0xff, MAX_REGISTER_INDEX)
		assert.Equal(ErrInvalidOpcode(opcode), err)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	assert := assert.New(t)

	for word := range 0x10000 {
		insn1, err1 := Decode(uint16(word), MAX_REGISTER_INDEX)
		insn2, err2 := Decode(uint16(word), MAX_REGISTER_INDEX)
		assert.Equal(insn1, insn2)
		assert.Equal(err1, err2)
		if err1 == nil {
			assert.Equal(uint16(word), insn1.Word())
		}
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	insn, err := Decode(0x0323, MAX_REGISTER_INDEX)
	assert.NoError(err)
	assert.Equal("xor r2 r3", insn.String())

	assert.Equal("ld", OP_LD.String())
	assert.Equal("st", OP_ST.String())
	assert.Equal("add", OP_ADD.String())
	assert.Equal("xor", OP_XOR.String())
	assert.Equal("Opcode(4)", Opcode(4).String())
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x0201), Encode(OP_ADD, 0, 1))
	assert.Equal(uint16(0x0150), Encode(OP_ST, 5, 0))
	assert.Equal(uint16(0x03ff), Encode(OP_XOR, 0x1f, 0xff))
}
