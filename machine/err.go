package machine

import (
	"errors"

	"github.com/ezrec/minsky/translate"
)

var f = translate.From

var (
	ErrHalted      = errors.New(f("halted"))
	ErrInstruction = errors.New(f("instruction invalid"))
)

// ErrSlot locates a program number slot that failed to decode.
type ErrSlot struct {
	Label Label
	Err   error
}

func (err *ErrSlot) Error() string {
	return f("label %d %v", uint64(err.Label), err.Err)
}

func (err *ErrSlot) Unwrap() error {
	return err.Err
}
