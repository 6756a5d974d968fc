package emulator

import (
	"errors"

	"github.com/ezrec/birth/translate"
)

var f = translate.From

var (
	ErrCodeSize      = errors.New(f("code section larger than RAM"))
	ErrCodeTruncated = errors.New(f("operand past end of code"))
	ErrJumpBounds    = errors.New(f("jump out of bounds"))
	ErrNotBooted     = errors.New(f("no cartridge"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	PC     int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc 0x%04x %v", err.PC, err.Err)
	}
	return f("line %d pc 0x%04x %v", err.LineNo, err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
