package asm

import (
	"log"
)

// Resolve is the first assembler pass. It assigns each instruction its byte
// offset in the code section and records the offset of each label. No bytes
// are encoded.
func (asm *Assembler) Resolve(lines []Line) (insts []Instruction, labels map[string]int, size int, err error) {
	var line Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	labels = make(map[string]int, 16)

	for _, line = range lines {
		switch line.Kind {
		case LINE_LABEL:
			if asm.Strict {
				if len(line.Label) == 0 {
					err = ErrLabelEmpty
					return
				}
				if _, ok := labels[line.Label]; ok {
					err = ErrLabelDuplicate
					return
				}
			}
			// A label marks the offset of the next instruction.
			labels[line.Label] = size
			if asm.Verbose {
				log.Printf("asm: %v: label %v = 0x%04x", line.LineNo, line.Label, size)
			}
		case LINE_INSTRUCTION:
			insts = append(insts, Instruction{
				LineNo:   line.LineNo,
				Text:     line.Text,
				Mnemonic: line.Mnemonic,
				Operands: line.Operands,
				Offset:   size,
			})
			op, ok := Lookup(line.Mnemonic)
			if !ok {
				if asm.Strict {
					err = ErrInstructionInvalid
					return
				}
				if asm.Verbose {
					log.Printf("asm: %v: ignoring unknown mnemonic %v", line.LineNo, line.Mnemonic)
				}
				continue
			}
			size += op.Size()
		}
	}

	return
}
