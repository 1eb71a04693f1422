package expr

import (
	"github.com/ezrec/minsky/translate"
)

var f = translate.From

// ErrExpression reports an expression that does not evaluate to a natural.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a natural number expression", string(err))
}

// ErrRegisters reports an expression that does not evaluate to a register dict.
type ErrRegisters string

func (err ErrRegisters) Error() string {
	return f("'%v' is not a register dict expression", string(err))
}
