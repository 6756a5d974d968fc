// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs BIRTH cartridges.
package emulator

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/ezrec/birth/asm"
	"github.com/ezrec/birth/cart"
)

const (
	SCREEN_W         = 380   // Screen width in pixels.
	SCREEN_H         = 240   // Screen height in pixels.
	RAM_SIZE         = 32768 // Code and work RAM.
	VRAM_SIZE        = 65536 // Graphics RAM.
	CYCLES_PER_FRAME = 10    // Instructions executed per frame.
)

// Palette is the screen palette, 16 grey levels from black to white.
var Palette color.Palette

func init() {
	for n := range 16 {
		Palette = append(Palette, color.Gray{Y: uint8(n * 0x11)})
	}
}

// Emulator state. Registers, memories and the screen.
type Emulator struct {
	Verbose bool         // If set, logs each executed instruction.
	Program *asm.Program // Optional listing, used for line numbers.

	RAM  [RAM_SIZE]byte  // Code at offset 0.
	VRAM [VRAM_SIZE]byte // Graphics section at offset 0.

	A    uint8  // Accumulator.
	X    uint16 // Index register.
	PC   int    // Program counter.
	Vram uint16 // VRAM offset of the tile blob used by DRAW_BTP.

	CodeSize   int
	EntryPoint int

	Screen *image.Paletted // Screen contents.
	Ticks  int             // Instructions executed since boot.

	booted bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Screen: image.NewPaletted(image.Rect(0, 0, SCREEN_W, SCREEN_H), Palette),
	}

	return
}

// Boot loads a cartridge and resets the machine.
func (emu *Emulator) Boot(cartridge *cart.Cartridge) (err error) {
	if len(cartridge.Code) > RAM_SIZE {
		err = ErrCodeSize
		return
	}

	emu.RAM = [RAM_SIZE]byte{}
	emu.VRAM = [VRAM_SIZE]byte{}
	copy(emu.RAM[:], cartridge.Code)
	copy(emu.VRAM[:], cartridge.Gfx)

	emu.CodeSize = len(cartridge.Code)
	emu.EntryPoint = int(cartridge.EntryPoint)
	emu.booted = true

	if emu.Verbose {
		log.Printf("emulator: boot code %d bytes, gfx %d bytes", len(cartridge.Code), len(cartridge.Gfx))
	}

	emu.Reset()

	return
}

// Reset the registers and clear the screen.
func (emu *Emulator) Reset() {
	emu.A = 0
	emu.X = 0
	emu.Vram = 0
	emu.PC = emu.EntryPoint
	emu.Ticks = 0
	clear(emu.Screen.Pix)
}

// Done returns true once the program counter leaves the code section.
func (emu *Emulator) Done() bool {
	return emu.PC < 0 || emu.PC >= emu.CodeSize
}

// String returns the register state.
func (emu *Emulator) String() string {
	return fmt.Sprintf("pc: %04x a: %02x x: %04x vram: %04x", emu.PC, emu.A, emu.X, emu.Vram)
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if no program listing is attached.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.PC)
	if dbg.Instruction == nil {
		return 0
	}

	return dbg.LineNo
}

// operands returns the operand bytes of the instruction at pc.
func (emu *Emulator) operands(op asm.Opcode) (args []byte, err error) {
	start := emu.PC + 1
	end := start + op.Shape.Width()
	if end > emu.CodeSize {
		err = ErrCodeTruncated
		return
	}
	args = emu.RAM[start:end]
	return
}

// Plot sets a screen pixel, ignoring positions off screen.
func (emu *Emulator) Plot(x, y int, index uint8) {
	if x < 0 || x >= SCREEN_W || y < 0 || y >= SCREEN_H {
		return
	}
	emu.Screen.SetColorIndex(x, y, index&0x0f)
}

// DrawTiles draws the tile blob at VRAM offset vram with its top left
// corner at (x, y).
func (emu *Emulator) DrawTiles(vram uint16, x, y int) {
	at := int(vram)
	if at+4 > VRAM_SIZE {
		return
	}

	width := int(binary.LittleEndian.Uint16(emu.VRAM[at : at+2]))
	height := int(binary.LittleEndian.Uint16(emu.VRAM[at+2 : at+4]))
	ptr := at + 4

	for ty := 0; ty < height; ty += 8 {
		for tx := 0; tx < width; tx += 8 {
			for py := range 8 {
				for px := 0; px < 8; px += 2 {
					if ptr >= VRAM_SIZE {
						return
					}
					packed := emu.VRAM[ptr]
					ptr++
					emu.Plot(x+tx+px, y+ty+py, packed>>4)
					emu.Plot(x+tx+px+1, y+ty+py, packed&0x0f)
				}
			}
		}
	}
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	if !emu.booted {
		err = ErrNotBooted
		return
	}

	if emu.Done() {
		done = true
		return
	}

	pc := emu.PC
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, PC: pc, Err: err}
		}
	}()

	op, ok := asm.Decode(emu.RAM[pc])
	if !ok {
		err = asm.ErrOpcode(emu.RAM[pc])
		return
	}

	args, err := emu.operands(op)
	if err != nil {
		return
	}

	if emu.Verbose {
		text, _, _ := asm.Disassemble(emu.RAM[:emu.CodeSize], pc)
		log.Printf("%04x: %-16v %v", pc, text, emu.String())
	}

	emu.PC += op.Size()
	emu.Ticks++

	switch op.Code {
	case asm.OP_NOP:
	case asm.OP_SET_A:
		emu.A = args[0]
	case asm.OP_SET_X:
		emu.X = binary.LittleEndian.Uint16(args)
	case asm.OP_PLOT:
		emu.Plot(int(emu.X)%SCREEN_W, int(emu.X)/SCREEN_W, emu.A)
	case asm.OP_JMP:
		target := int(binary.LittleEndian.Uint16(args))
		if target >= emu.CodeSize {
			emu.PC = emu.CodeSize
			err = ErrJumpBounds
			return
		}
		emu.PC = target
	case asm.OP_VSRAM:
		emu.Vram = binary.LittleEndian.Uint16(args)
	case asm.OP_DRAW_BTP:
		x := int16(binary.LittleEndian.Uint16(args[0:2]))
		y := int16(binary.LittleEndian.Uint16(args[2:4]))
		emu.DrawTiles(emu.Vram, int(x), int(y))
	case asm.OP_HALT:
		emu.PC = emu.CodeSize
	default:
		panic("emulator: unhandled opcode " + op.Mnemonic())
	}

	done = emu.Done()

	return
}

// Frame executes up to CYCLES_PER_FRAME instructions.
func (emu *Emulator) Frame() (done bool, err error) {
	for range CYCLES_PER_FRAME {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}
