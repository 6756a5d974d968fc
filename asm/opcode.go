package asm

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Code is a one byte opcode value.
type Code byte

//go:generate go tool stringer -linecomment -type=Code
const (
	OP_NOP      = Code(0x00) // NOP
	OP_SET_A    = Code(0x01) // SET_A
	OP_SET_X    = Code(0x02) // SET_X
	OP_PLOT     = Code(0x03) // PLOT
	OP_JMP      = Code(0x04) // JMP
	OP_VSRAM    = Code(0x05) // VSRAM
	OP_DRAW_BTP = Code(0x08) // DRAW_BTP
	OP_HALT     = Code(0xff) // HALT
)

// Shape is the operand encoding of an opcode.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE  = Shape(0) // none
	SHAPE_U8    = Shape(1) // u8
	SHAPE_U16   = Shape(2) // u16
	SHAPE_U16X2 = Shape(3) // u16x2
)

// Width returns the number of operand bytes for the shape.
func (shape Shape) Width() int {
	switch shape {
	case SHAPE_NONE:
		return 0
	case SHAPE_U8:
		return 1
	case SHAPE_U16:
		return 2
	case SHAPE_U16X2:
		return 4
	}

	panic("asm: unknown operand shape " + shape.String())
}

// Operands returns the number of operand tokens the shape consumes.
func (shape Shape) Operands() int {
	switch shape {
	case SHAPE_NONE:
		return 0
	case SHAPE_U8, SHAPE_U16:
		return 1
	case SHAPE_U16X2:
		return 2
	}

	panic("asm: unknown operand shape " + shape.String())
}

// Opcode is an entry of the opcode table.
type Opcode struct {
	Code  Code
	Shape Shape
}

// Mnemonic returns the source name of the opcode.
func (op Opcode) Mnemonic() string {
	return op.Code.String()
}

// Size returns the encoded width of an instruction, opcode byte included.
func (op Opcode) Size() int {
	return 1 + op.Shape.Width()
}

var opcodeShape = map[Code]Shape{
	OP_NOP:      SHAPE_NONE,
	OP_SET_A:    SHAPE_U8,
	OP_SET_X:    SHAPE_U16,
	OP_PLOT:     SHAPE_NONE,
	OP_JMP:      SHAPE_U16,
	OP_VSRAM:    SHAPE_U16,
	OP_DRAW_BTP: SHAPE_U16X2,
	OP_HALT:     SHAPE_NONE,
}

// mnemonicMap maps upper case mnemonics to opcodes.
var mnemonicMap map[string]Opcode

func init() {
	mnemonicMap = make(map[string]Opcode, len(opcodeShape))
	for code, shape := range opcodeShape {
		mnemonicMap[code.String()] = Opcode{Code: code, Shape: shape}
	}
}

// Lookup finds the opcode for a mnemonic, ignoring case.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToUpper(mnemonic)]
	return
}

// Decode finds the opcode for an opcode byte.
func Decode(code byte) (op Opcode, ok bool) {
	shape, ok := opcodeShape[Code(code)]
	if !ok {
		return
	}
	op = Opcode{Code: Code(code), Shape: shape}
	return
}

// Opcodes iterates over the opcode table in opcode order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for _, code := range slices.Sorted(maps.Keys(opcodeShape)) {
			if !yield(Opcode{Code: code, Shape: opcodeShape[code]}) {
				return
			}
		}
	}
}
