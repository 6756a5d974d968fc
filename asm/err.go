package asm

import (
	"errors"

	"github.com/ezrec/birth/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelEmpty         = errors.New(f("label name missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Disassembler errors
	ErrOpcodeTruncated = errors.New(f("opcode truncated"))
)

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber is an operand that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrValueRange is an operand outside of its encoding range.
type ErrValueRange struct {
	Value int64
	Shape Shape
}

func (err ErrValueRange) Error() string {
	return f("%v does not fit in %v", err.Value, err.Shape.String())
}

// ErrOpcode is an opcode byte that is not in the opcode table.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
