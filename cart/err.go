package cart

import (
	"errors"

	"github.com/ezrec/birth/translate"
)

var f = translate.From

var (
	ErrMagic       = errors.New(f("not a %v cartridge", MAGIC))
	ErrSectionSize = errors.New(f("section larger than 4GiB"))
)

// ErrTruncated is a cartridge shorter than its header claims.
type ErrTruncated struct {
	Section string
	Want    int
	Have    int
}

func (err *ErrTruncated) Error() string {
	return f("%v truncated: want %d bytes, have %d", err.Section, err.Want, err.Have)
}
