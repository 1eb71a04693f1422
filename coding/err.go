package coding

import (
	"errors"

	"github.com/ezrec/minsky/translate"
)

var f = translate.From

var (
	ErrInvalidInput = errors.New(f("invalid input"))
	ErrOverflow     = errors.New(f("natural overflows 64 bits"))
)
