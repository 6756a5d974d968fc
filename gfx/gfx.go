// Package gfx converts raster images into BIRTH tile graphics.
//
// A tile blob starts with a little endian (width u16, height u16) header,
// followed by the image scanned in 8x8 tiles, left to right and top to
// bottom. Each tile row is stored as pixel pairs, one byte per pair, the
// left pixel palette index in the high nibble.
package gfx

import (
	"cmp"
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"os"
	"slices"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const (
	TILE_SIZE   = 8  // Tile width and height, in pixels.
	COLORS      = 16 // Palette entries addressable by a nibble.
	HEADER_SIZE = 4  // Width and height header.
)

// Decode reads a PNG, GIF, JPEG or BMP image.
func Decode(input io.Reader) (img image.Image, err error) {
	img, _, err = image.Decode(input)
	return
}

type colorCount struct {
	color color.RGBA64
	count int
}

// rgba64 converts a color to a comparable value.
func rgba64(c color.Color) color.RGBA64 {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// Palette returns the most frequent colors of an image, at most COLORS.
// Ties are broken by color value, so the result is deterministic.
func Palette(img image.Image) (pal color.Palette) {
	counts := map[color.RGBA64]int{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[rgba64(img.At(x, y))]++
		}
	}

	ranked := make([]colorCount, 0, len(counts))
	for c, n := range counts {
		ranked = append(ranked, colorCount{color: c, count: n})
	}
	slices.SortFunc(ranked, func(a, b colorCount) int {
		return cmp.Or(
			cmp.Compare(b.count, a.count),
			cmp.Compare(a.color.R, b.color.R),
			cmp.Compare(a.color.G, b.color.G),
			cmp.Compare(a.color.B, b.color.B),
			cmp.Compare(a.color.A, b.color.A),
		)
	})

	for _, cc := range ranked[:min(len(ranked), COLORS)] {
		pal = append(pal, cc.color)
	}

	return
}

// Quantize converts an image to at most COLORS palette entries. Paletted
// images that already fit are returned unchanged.
func Quantize(img image.Image) (paletted *image.Paletted) {
	if p, ok := img.(*image.Paletted); ok && len(p.Palette) <= COLORS {
		return p
	}

	bounds := img.Bounds()
	pal := Palette(img)
	if len(pal) == 0 {
		pal = color.Palette{color.Black}
	}

	paletted = image.NewPaletted(bounds, pal)
	draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)

	return
}

// EncodeTiles packs a paletted image into a tile blob.
//
// Pixel pairs whose right pixel is past the image width, and rows past the
// image height, are skipped rather than padded.
func EncodeTiles(img *image.Paletted) (data []byte, err error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > 0xffff || height > 0xffff {
		err = &ErrImageSize{Width: width, Height: height}
		return
	}

	data = make([]byte, 0, HEADER_SIZE+(width*height+1)/2)
	data = binary.LittleEndian.AppendUint16(data, uint16(width))
	data = binary.LittleEndian.AppendUint16(data, uint16(height))

	index := func(x, y int) byte {
		return img.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y) & 0x0f
	}

	for ty := 0; ty < height; ty += TILE_SIZE {
		for tx := 0; tx < width; tx += TILE_SIZE {
			for y := range TILE_SIZE {
				for x := 0; x < TILE_SIZE; x += 2 {
					if tx+x+1 >= width || ty+y >= height {
						continue
					}
					left := index(tx+x, ty+y)
					right := index(tx+x+1, ty+y)
					data = append(data, (left<<4)|right)
				}
			}
		}
	}

	return
}

// Encode quantizes an image and packs it into a tile blob.
func Encode(img image.Image) (data []byte, err error) {
	return EncodeTiles(Quantize(img))
}

// Load decodes an image file into a tile blob.
func Load(path string) (data []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err := Decode(inf)
	if err != nil {
		err = &ErrDecode{Path: path, Err: err}
		return
	}

	data, err = Encode(img)

	return
}
