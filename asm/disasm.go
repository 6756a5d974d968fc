package asm

import (
	"encoding/binary"
	"fmt"
)

// Disassemble decodes the instruction at offset in code. It returns the
// instruction text and its encoded size.
func Disassemble(code []byte, offset int) (text string, size int, err error) {
	if offset < 0 || offset >= len(code) {
		err = ErrOpcodeTruncated
		return
	}

	op, ok := Decode(code[offset])
	if !ok {
		err = ErrOpcode(code[offset])
		return
	}

	size = op.Size()
	if offset+size > len(code) {
		size = 0
		err = ErrOpcodeTruncated
		return
	}

	args := code[offset+1 : offset+size]
	switch op.Shape {
	case SHAPE_NONE:
		text = op.Mnemonic()
	case SHAPE_U8:
		text = fmt.Sprintf("%v %d", op.Mnemonic(), args[0])
	case SHAPE_U16:
		text = fmt.Sprintf("%v %d", op.Mnemonic(), binary.LittleEndian.Uint16(args))
	case SHAPE_U16X2:
		text = fmt.Sprintf("%v %d, %d", op.Mnemonic(),
			binary.LittleEndian.Uint16(args[0:2]), binary.LittleEndian.Uint16(args[2:4]))
	default:
		panic("asm: unknown operand shape " + op.Shape.String())
	}

	return
}
