package cpu

import (
	"fmt"
	"iter"
	"log"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler translates a single line of do-core1 assembly into an
// instruction word.
//
// A line is either a mnemonic with two register operands:
//
//	add r0, r1   ; comment
//
// or a single value, which is used as the raw instruction word. A literal
// word is hexadecimal, with or without the 0x prefix:
//
//	0x0201
//	0201
//	$(ADD << 8 | 0x01)
//
// Any word may be an equate name, and $(...) is evaluated at assembly time.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.
}

// Define defines new equates, or redefines existing equates.
func (asm *Assembler) Define(defines iter.Seq2[string, string]) {
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}

	for equ, value := range defines {
		asm.Equate[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// hexOf returns the value of a hexadecimal word, with or without a 0x prefix.
func (asm *Assembler) hexOf(word string) (value uint32, err error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(word, "0x"), "0X")
	v64, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(int64(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > math.MaxUint32 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine expands expressions and splits a line into words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	// Strip comments
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	line = strings.ReplaceAll(line, ",", " ")
	line = strings.ReplaceAll(line, "\t", " ")

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	return
}

// equate replaces a word by its equate, if it has one.
func (asm *Assembler) equate(word string) string {
	equate, ok := asm.Equate[word]
	if ok {
		return equate
	}

	return word
}

// opcodeOf looks up a mnemonic.
func opcodeOf(word string) (op Opcode, ok bool) {
	word = strings.ToLower(word)
	for op = OP_LD; op.Valid(); op++ {
		if op.String() == word {
			ok = true
			return
		}
	}

	return
}

// registerOf returns the register index named by word.
func (asm *Assembler) registerOf(word string) (index uint8, err error) {
	word = strings.ToLower(asm.equate(word))

	var value uint32
	if len(word) > 1 && word[0] == 'r' {
		var v64 uint64
		v64, err = strconv.ParseUint(word[1:], 10, 8)
		value = uint32(v64)
	} else {
		value, err = asm.valueOf(word)
	}

	if err != nil || value >= REGISTER_LIMIT {
		err = ErrRegisterInvalid
		return
	}

	index = uint8(value)
	return
}

// Parse assembles a single line.
func (asm *Assembler) Parse(line string) (word uint16, err error) {
	defer func() {
		if err != nil {
			err = ErrSyntax{Text: line, Err: err}
		}
	}()

	words, err := asm.parseLine(line)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Print(f("asm: %v", words))
	}

	switch len(words) {
	case 0:
		err = ErrOpcodeMissing
		return
	case 1:
		if _, ok := opcodeOf(words[0]); ok {
			err = ErrOperandCount
			return
		}
		// A raw instruction word is always hexadecimal. Equates keep
		// their own radix.
		var value uint32
		if equate, ok := asm.Equate[words[0]]; ok {
			value, err = asm.valueOf(equate)
		} else {
			value, err = asm.hexOf(words[0])
		}
		if err != nil {
			return
		}
		if value > math.MaxUint16 {
			err = ErrWordRange
			return
		}
		word = uint16(value)
		return
	}

	op, ok := opcodeOf(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if len(words) != 3 {
		err = ErrOperandCount
		return
	}

	op0, err := asm.registerOf(words[1])
	if err != nil {
		return
	}

	op1, err := asm.registerOf(words[2])
	if err != nil {
		return
	}

	word = Encode(op, op0, op1)
	return
}
