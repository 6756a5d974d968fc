package asm

import (
	"encoding/binary"
	"log"
	"strconv"
	"strings"
)

// parseValue parses a decimal integer operand.
func parseValue(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// u8Of converts an operand to a byte. Out of range values keep their low 8
// bits unless strict.
func (asm *Assembler) u8Of(word string) (value uint8, err error) {
	v64, err := parseValue(word)
	if err != nil {
		return
	}
	if asm.Strict && (v64 < 0 || v64 > 0xff) {
		err = ErrValueRange{Value: v64, Shape: SHAPE_U8}
		return
	}
	value = uint8(v64 & 0xff)
	return
}

// u16Of converts an operand to a 16-bit word.
func u16Of(word string) (value uint16, err error) {
	v64, err := parseValue(word)
	if err != nil {
		return
	}
	if v64 < 0 || v64 > 0xffff {
		err = ErrValueRange{Value: v64, Shape: SHAPE_U16}
		return
	}
	value = uint16(v64)
	return
}

// targetOf resolves a jump target, either a label or a literal address.
func targetOf(word string, labels map[string]int) (value uint16, err error) {
	offset, ok := labels[word]
	if !ok {
		offset, ok = labels[strings.TrimPrefix(word, LABEL_SIGIL)]
	}
	if !ok {
		return u16Of(word)
	}
	if offset > 0xffff {
		err = ErrValueRange{Value: int64(offset), Shape: SHAPE_U16}
		return
	}
	value = uint16(offset)
	return
}

// encodeInstruction encodes a single instruction.
func (asm *Assembler) encodeInstruction(op Opcode, words []string, labels map[string]int) (codes []byte, err error) {
	need := op.Shape.Operands()
	if len(words) < need {
		err = ErrOpcodeValueMissing
		return
	}
	if asm.Strict && len(words) > need {
		err = ErrOpcodeExtraArgs
		return
	}

	codes = make([]byte, 0, op.Size())
	codes = append(codes, byte(op.Code))

	switch op.Shape {
	case SHAPE_NONE:
	case SHAPE_U8:
		var value uint8
		value, err = asm.u8Of(words[0])
		if err != nil {
			return
		}
		codes = append(codes, value)
	case SHAPE_U16:
		var value uint16
		if op.Code == OP_JMP {
			value, err = targetOf(words[0], labels)
		} else {
			value, err = u16Of(words[0])
		}
		if err != nil {
			return
		}
		codes = binary.LittleEndian.AppendUint16(codes, value)
	case SHAPE_U16X2:
		for _, word := range words[:2] {
			var value uint16
			value, err = u16Of(word)
			if err != nil {
				return
			}
			codes = binary.LittleEndian.AppendUint16(codes, value)
		}
	default:
		panic("asm: unknown operand shape " + op.Shape.String())
	}

	return
}

// Encode is the second assembler pass. It encodes each instruction in place,
// resolving JMP targets with the complete label table from Resolve.
func (asm *Assembler) Encode(insts []Instruction, labels map[string]int) (err error) {
	var inst *Instruction

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: inst.LineNo, Line: inst.Text, Err: err}
		}
	}()

	offset := 0
	for n := range insts {
		inst = &insts[n]

		op, ok := Lookup(inst.Mnemonic)
		if !ok {
			// Resolve gave it no space either.
			inst.Bytes = nil
			continue
		}

		if inst.Offset != offset {
			log.Fatalf("asm: line %d placed at 0x%04x, encoded at 0x%04x", inst.LineNo, inst.Offset, offset)
		}

		inst.Bytes, err = asm.encodeInstruction(op, inst.Operands, labels)
		if err != nil {
			return
		}

		if len(inst.Bytes) != op.Size() {
			log.Fatalf("asm: line %d %v encoded %d bytes, expected %d", inst.LineNo, op.Mnemonic(), len(inst.Bytes), op.Size())
		}

		if asm.Verbose {
			log.Printf("asm: %04x: % x", inst.Offset, inst.Bytes)
		}

		offset += len(inst.Bytes)
	}

	return
}
