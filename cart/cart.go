// Package cart builds and reads BIRTH_EXEC cartridge containers.
//
// A cartridge is a 22 byte header followed by the code section and the
// graphics section:
//
//	offset 0   10 bytes  magic "BIRTH_EXEC"
//	offset 10  u32       entry point, always 0
//	offset 14  u32       code size
//	offset 18  u32       graphics size
//	offset 22            code, then graphics
//
// All integers are little endian.
package cart

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

const (
	MAGIC       = "BIRTH_EXEC" // Container signature.
	HEADER_SIZE = 22           // Bytes before the code section.
	EXTENSION   = ".BGF"       // Cartridge file extension.
)

// Cartridge is a complete, in-memory cartridge.
type Cartridge struct {
	EntryPoint uint32 // Start offset in the code section. Always 0 when built.
	Code       []byte // Code section.
	Gfx        []byte // Graphics section.
}

// New builds a cartridge from a code section and a graphics section.
// Either section may be empty.
func New(code, gfx []byte) (cart *Cartridge) {
	cart = &Cartridge{
		Code: code,
		Gfx:  gfx,
	}
	return
}

// Size returns the size of the serialized cartridge.
func (cart *Cartridge) Size() int {
	return HEADER_SIZE + len(cart.Code) + len(cart.Gfx)
}

// MarshalBinary serializes the cartridge.
func (cart *Cartridge) MarshalBinary() (data []byte, err error) {
	if uint64(len(cart.Code)) > 0xffffffff || uint64(len(cart.Gfx)) > 0xffffffff {
		err = ErrSectionSize
		return
	}

	data = make([]byte, 0, cart.Size())
	data = append(data, MAGIC...)
	data = binary.LittleEndian.AppendUint32(data, cart.EntryPoint)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(cart.Code)))
	data = binary.LittleEndian.AppendUint32(data, uint32(len(cart.Gfx)))
	data = append(data, cart.Code...)
	data = append(data, cart.Gfx...)

	return
}

// UnmarshalBinary parses a serialized cartridge. Data past the graphics
// section is ignored.
func (cart *Cartridge) UnmarshalBinary(data []byte) (err error) {
	if len(data) < len(MAGIC) || !bytes.Equal(data[:len(MAGIC)], []byte(MAGIC)) {
		err = ErrMagic
		return
	}

	if len(data) < HEADER_SIZE {
		err = &ErrTruncated{Section: "header", Want: HEADER_SIZE, Have: len(data)}
		return
	}

	entry := binary.LittleEndian.Uint32(data[10:14])
	codeSize := uint64(binary.LittleEndian.Uint32(data[14:18]))
	gfxSize := uint64(binary.LittleEndian.Uint32(data[18:22]))

	rest := data[HEADER_SIZE:]
	if uint64(len(rest)) < codeSize {
		err = &ErrTruncated{Section: "code", Want: int(codeSize), Have: len(rest)}
		return
	}
	code := rest[:codeSize]
	rest = rest[codeSize:]

	if uint64(len(rest)) < gfxSize {
		err = &ErrTruncated{Section: "gfx", Want: int(gfxSize), Have: len(rest)}
		return
	}
	gfx := rest[:gfxSize]

	cart.EntryPoint = entry
	cart.Code = bytes.Clone(code)
	cart.Gfx = bytes.Clone(gfx)

	return
}

// WriteTo writes the serialized cartridge in a single write.
func (cart *Cartridge) WriteTo(w io.Writer) (n int64, err error) {
	data, err := cart.MarshalBinary()
	if err != nil {
		return
	}

	written, err := w.Write(data)
	n = int64(written)

	return
}

// ReadFrom reads a serialized cartridge until EOF.
func (cart *Cartridge) ReadFrom(r io.Reader) (n int64, err error) {
	data, err := io.ReadAll(r)
	n = int64(len(data))
	if err != nil {
		return
	}

	err = cart.UnmarshalBinary(data)

	return
}

// Save writes the cartridge to a file. The file is only created once the
// cartridge has been serialized.
func (cart *Cartridge) Save(path string) (err error) {
	data, err := cart.MarshalBinary()
	if err != nil {
		return
	}

	err = os.WriteFile(path, data, 0644)

	return
}

// Load reads a cartridge from a file.
func Load(path string) (cart *Cartridge, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cart = &Cartridge{}
	err = cart.UnmarshalBinary(data)
	if err != nil {
		cart = nil
	}

	return
}
