package asm

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/birth/internal"
)

// Instruction is an instruction line placed in the code section.
type Instruction struct {
	LineNo   int      // Source line number.
	Text     string   // Source text without comment.
	Mnemonic string   // Upper case mnemonic.
	Operands []string // Operand tokens.
	Offset   int      // Byte offset in the code section.
	Bytes    []byte   // Encoded bytes, empty for unknown mnemonics.
}

// Program is an assembled program.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// Debug locates a code section byte in the source.
type Debug struct {
	*Instruction
	Index int // Index of the byte in the instruction encoding.
}

// Debug returns the instruction that encodes the byte at offset. The
// Instruction is nil when no instruction covers offset.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n, inst := range prog.Instructions {
		if offset >= inst.Offset && offset < inst.Offset+len(inst.Bytes) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       offset - inst.Offset,
			}
			break
		}
	}

	return
}

// Bytes iterates over the code section.
func (prog *Program) Bytes() iter.Seq[byte] {
	encoded := make([][]byte, 0, len(prog.Instructions))
	for _, inst := range prog.Instructions {
		encoded = append(encoded, inst.Bytes)
	}
	return internal.IterSliceConcat(encoded...)
}

// Code returns the code section.
func (prog *Program) Code() []byte {
	code := slices.Collect(prog.Bytes())
	if code == nil {
		code = []byte{}
	}
	return code
}

// Size returns the length of the code section.
func (prog *Program) Size() (size int) {
	for _, inst := range prog.Instructions {
		size += len(inst.Bytes)
	}
	return
}

// Listing writes an annotated listing of the program.
func (prog *Program) Listing(w io.Writer) (err error) {
	labelsAt := make(map[int][]string)
	for _, name := range slices.Sorted(maps.Keys(prog.Labels)) {
		offset := prog.Labels[name]
		labelsAt[offset] = append(labelsAt[offset], name)
	}

	for _, inst := range prog.Instructions {
		for _, name := range labelsAt[inst.Offset] {
			_, err = fmt.Fprintf(w, "%04x:                @%v\n", inst.Offset, name)
			if err != nil {
				return
			}
		}
		delete(labelsAt, inst.Offset)
		_, err = fmt.Fprintf(w, "%04x: % -15x  %v\n", inst.Offset, inst.Bytes, inst.Text)
		if err != nil {
			return
		}
	}

	// Labels past the last instruction.
	for _, offset := range slices.Sorted(maps.Keys(labelsAt)) {
		for _, name := range labelsAt[offset] {
			_, err = fmt.Fprintf(w, "%04x:                @%v\n", offset, name)
			if err != nil {
				return
			}
		}
	}

	return
}
