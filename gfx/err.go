package gfx

import (
	"github.com/ezrec/birth/translate"
)

var f = translate.From

// ErrImageSize is an image too large for the tile header.
type ErrImageSize struct {
	Width  int
	Height int
}

func (err *ErrImageSize) Error() string {
	return f("image %dx%d exceeds 65535x65535", err.Width, err.Height)
}

// ErrDecode is an image file that could not be decoded.
type ErrDecode struct {
	Path string
	Err  error
}

func (err *ErrDecode) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
