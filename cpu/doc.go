// Package cpu implements the do-core1 decoder and execution engine.
//
// An instruction is a single 16-bit word: the high byte selects the
// opcode (ld, st, add, xor), and the two low nibbles select the op0 and
// op1 registers. The CPU owns a register file of 16-bit registers and a
// memory.Memory, and executes exactly one instruction per Process call.
//
// Operands always name registers. ld loads the memory slot addressed by
// op1's contents into op0, and st stores op1's contents into the memory
// slot addressed by op0's contents.
//
// A small single-line assembler translates mnemonics, numbers, and
// $(...) compile-time expressions into instruction words.
package cpu
