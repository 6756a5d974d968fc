// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
)

// Assembler is a two pass assembler for the BIRTH instruction set.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, unknown mnemonics, duplicate labels and out of range bytes are errors.
}

// Parse assembles an input stream into a Program.
//
// The label table is complete before any instruction is encoded, so JMP may
// refer to labels declared later in the source.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := Normalize(input)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("asm: %d lines", len(lines))
	}

	insts, labels, size, err := asm.Resolve(lines)
	if err != nil {
		return
	}

	err = asm.Encode(insts, labels)
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: insts,
		Labels:       labels,
	}

	if asm.Verbose {
		log.Printf("asm: %d instructions, %d labels, %d bytes", len(insts), len(labels), size)
	}

	return
}
