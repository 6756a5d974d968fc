// Package asm implements the two pass assembler for the BIRTH cartridge
// instruction set.
//
// Source text is normalized into label and instruction lines. The first
// pass assigns every instruction its byte offset in the code section and
// records every label, the second pass encodes the instructions, resolving
// JMP targets from the completed label table.
package asm
