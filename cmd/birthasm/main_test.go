package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/birth/asm"
	"github.com/ezrec/birth/cart"
)

func writeSource(t *testing.T, dir string) (path string) {
	path = filepath.Join(dir, "game.asm")
	err := os.WriteFile(path, []byte("@Start:\nSET_A 5\nJMP Start\nHALT\n"), 0644)
	assert.NoError(t, err)
	return
}

func TestLoadGraphics(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	assert.Empty(loadGraphics(""))
	assert.Empty(loadGraphics(filepath.Join(dir, "missing.png")))

	junk := filepath.Join(dir, "junk.png")
	assert.NoError(os.WriteFile(junk, []byte("not an image"), 0644))
	assert.Empty(loadGraphics(junk))

	tiles := filepath.Join(dir, "tiles.png")
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), color.Palette{color.Black, color.White})
	ouf, err := os.Create(tiles)
	assert.NoError(err)
	assert.NoError(png.Encode(ouf, img))
	assert.NoError(ouf.Close())
	assert.Equal(4+32, len(loadGraphics(tiles)))
}

func TestBuildMissingGraphics(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := writeSource(t, dir)
	output := filepath.Join(dir, OUTPUT)

	cartridge, err := build(&asm.Assembler{}, source, filepath.Join(dir, "missing.png"), output, nil)
	assert.NoError(err)
	assert.Empty(cartridge.Gfx)

	loaded, err := cart.Load(output)
	assert.NoError(err)
	assert.Equal([]byte{0x01, 0x05, 0x04, 0x00, 0x00, 0xff}, loaded.Code)
	assert.Empty(loaded.Gfx)

	data, err := os.ReadFile(output)
	assert.NoError(err)
	assert.Equal(cart.HEADER_SIZE+6, len(data))
	assert.Equal([]byte{0, 0, 0, 0}, data[18:22])
}

func TestBuildListing(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := writeSource(t, dir)

	out := &bytes.Buffer{}
	_, err := build(&asm.Assembler{}, source, "", filepath.Join(dir, OUTPUT), out)
	assert.NoError(err)
	assert.Contains(out.String(), "JMP Start")
}

func TestBuildErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	output := filepath.Join(dir, OUTPUT)

	_, err := build(&asm.Assembler{}, filepath.Join(dir, "missing.asm"), "", output, nil)
	assert.ErrorIs(err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.asm")
	assert.NoError(os.WriteFile(bad, []byte("JMP Nowhere\n"), 0644))
	_, err = build(&asm.Assembler{}, bad, "", output, nil)
	assert.ErrorIs(err, asm.ErrParseNumber("Nowhere"))

	_, err = os.Stat(output)
	assert.ErrorIs(err, fs.ErrNotExist)
}
