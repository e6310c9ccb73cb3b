package emulator

import (
	"github.com/ezrec/docore/translate"
)

var f = translate.From

// ErrRuntime indicates the instruction word that failed to execute.
// The word is already part of Err's message, via cpu.ErrWord.
type ErrRuntime struct {
	Word uint16
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("do-core1: %v", err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
