package gfx

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPalette = color.Palette{
	color.Black,
	color.White,
	color.RGBA{R: 0xff, A: 0xff},
}

func checker(width, height int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), testPalette)
	for y := range height {
		for x := range width {
			img.SetColorIndex(x, y, uint8((x+y)&1))
		}
	}
	return img
}

func TestEncodeTiles(t *testing.T) {
	assert := assert.New(t)

	data, err := EncodeTiles(checker(8, 8))
	assert.NoError(err)
	assert.Equal(HEADER_SIZE+32, len(data))
	assert.Equal([]byte{8, 0, 8, 0}, data[:4])

	// Even rows start on colour 0, odd rows on colour 1.
	assert.Equal([]byte{0x01, 0x01, 0x01, 0x01}, data[4:8])
	assert.Equal([]byte{0x10, 0x10, 0x10, 0x10}, data[8:12])
}

func TestEncodeTilesOrder(t *testing.T) {
	assert := assert.New(t)

	img := image.NewPaletted(image.Rect(0, 0, 16, 8), testPalette)
	for y := range 8 {
		for x := 8; x < 16; x++ {
			img.SetColorIndex(x, y, 2)
		}
	}

	data, err := EncodeTiles(img)
	assert.NoError(err)
	assert.Equal(HEADER_SIZE+64, len(data))
	for n := range 32 {
		assert.Equal(byte(0x00), data[HEADER_SIZE+n])
		assert.Equal(byte(0x22), data[HEADER_SIZE+32+n])
	}
}

func TestEncodeTilesPartial(t *testing.T) {
	assert := assert.New(t)

	// The unpaired last column is dropped.
	data, err := EncodeTiles(checker(3, 1))
	assert.NoError(err)
	assert.Equal([]byte{3, 0, 1, 0, 0x01}, data)

	data, err = EncodeTiles(checker(9, 2))
	assert.NoError(err)
	assert.Equal(HEADER_SIZE+8, len(data))

	data, err = EncodeTiles(checker(0, 0))
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 0, 0}, data)
}

func TestEncodeTilesOffsetBounds(t *testing.T) {
	assert := assert.New(t)

	img := checker(10, 10).SubImage(image.Rect(1, 0, 9, 8)).(*image.Paletted)
	data, err := EncodeTiles(img)
	assert.NoError(err)
	assert.Equal([]byte{8, 0, 8, 0}, data[:4])
	assert.Equal([]byte{0x10, 0x10, 0x10, 0x10}, data[4:8])
}

func TestEncodeTilesTooLarge(t *testing.T) {
	assert := assert.New(t)

	img := &image.Paletted{Rect: image.Rect(0, 0, 0x10000, 1), Palette: testPalette}
	_, err := EncodeTiles(img)
	var size *ErrImageSize
	assert.True(errors.As(err, &size))
	assert.Equal(0x10000, size.Width)
}

func TestQuantize(t *testing.T) {
	assert := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	blue := color.RGBA{B: 0xff, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	img.Set(0, 0, blue)
	img.Set(1, 0, green)
	img.Set(2, 0, green)
	img.Set(3, 0, blue)
	img.Set(3, 0, green)

	paletted := Quantize(img)
	assert.Equal(2, len(paletted.Palette))
	assert.Equal(uint8(1), paletted.ColorIndexAt(0, 0))
	assert.Equal(uint8(0), paletted.ColorIndexAt(1, 0))
	assert.Equal(uint8(0), paletted.ColorIndexAt(3, 0))

	small := checker(2, 2)
	assert.Same(small, Quantize(small))
}

func TestQuantizeManyColors(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 64, 1))
	for x := range 64 {
		img.SetGray(x, 0, color.Gray{Y: uint8(x * 4)})
	}

	paletted := Quantize(img)
	assert.Equal(COLORS, len(paletted.Palette))

	first := Quantize(img)
	assert.Equal(paletted.Pix, first.Pix)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.png")

	ouf, err := os.Create(path)
	assert.NoError(err)
	assert.NoError(png.Encode(ouf, checker(8, 8)))
	assert.NoError(ouf.Close())

	data, err := Load(path)
	assert.NoError(err)
	assert.Equal(HEADER_SIZE+32, len(data))
	assert.Equal([]byte{8, 0, 8, 0}, data[:4])

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(err, fs.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	assert.NoError(os.WriteFile(junk, []byte("not an image"), 0644))
	_, err = Load(junk)
	assert.ErrorIs(err, image.ErrFormat)
	var decode *ErrDecode
	assert.True(errors.As(err, &decode))
	assert.Equal(junk, decode.Path)
}
