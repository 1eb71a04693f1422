package emulator

import (
	"errors"

	"github.com/ezrec/minsky/translate"
)

var f = translate.From

var (
	ErrBudget = errors.New(f("step budget exhausted"))
)

// ErrRuntime indicates the label of a runtime error.
type ErrRuntime struct {
	Label int
	Steps int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("label %d after %d steps %v", err.Label, err.Steps, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
