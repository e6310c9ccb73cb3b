package cpu

import (
	"errors"

	"github.com/ezrec/docore/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrConfig   = errors.New(f("invalid configuration"))
	ErrOp0Range = errors.New(f("op0 out of range"))
	ErrOp1Range = errors.New(f("op1 out of range"))

	// Assembler errors
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandCount    = errors.New(f("wrong number of operands"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrWordRange       = errors.New(f("instruction wider than 16 bits"))
)

// ErrInvalidOpcode is returned when decoding an unknown opcode.
type ErrInvalidOpcode Opcode

func (err ErrInvalidOpcode) Error() string {
	return f("invalid opcode 0x%02x", uint8(err))
}

func (err ErrInvalidOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidOpcode)
	return
}

// ErrAdditionOverflow is returned when an addition exceeds 16 bits.
type ErrAdditionOverflow struct {
	A uint16
	B uint16
}

func (err ErrAdditionOverflow) Error() string {
	return f("addition overflow 0x%04x + 0x%04x", err.A, err.B)
}

func (err ErrAdditionOverflow) Is(target error) (ok bool) {
	_, ok = target.(ErrAdditionOverflow)
	return
}

// ErrLoadRange is returned when a loaded value does not fit in a register.
type ErrLoadRange uint32

func (err ErrLoadRange) Error() string {
	return f("loaded value 0x%x does not fit a register", uint32(err))
}

func (err ErrLoadRange) Is(target error) (ok bool) {
	_, ok = target.(ErrLoadRange)
	return
}

// ErrWord identifies the instruction word that failed.
type ErrWord uint16

func (err ErrWord) Error() string {
	return f("bad instruction 0x%04x", uint16(err))
}

func (err ErrWord) Is(target error) (ok bool) {
	_, ok = target.(ErrWord)
	return
}

type ErrSyntax struct {
	Text string
	Err  error
}

func (err ErrSyntax) Error() string {
	return f("'%v' %v", err.Text, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
