// Package expr evaluates program numbers and register files written as
// Starlark expressions.
//
// Three builtins expose the codings: single(x, y), double(x, y) and
// slots(k0, k1, ...), so that a program number can be assembled from its
// parts, e.g. slots(double(1, single(0, 2)), 0).
package expr

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/minsky/coding"
	"github.com/ezrec/minsky/machine"
)

var builtins = starlark.StringDict{
	"single": starlark.NewBuiltin("single", pairBuiltin(coding.EncodeSingle)),
	"double": starlark.NewBuiltin("double", pairBuiltin(coding.EncodeDouble)),
	"slots":  starlark.NewBuiltin("slots", slotsBuiltin),
}

// natural converts a Starlark integer to a uint64.
func natural(v starlark.Value) (n uint64, ok bool) {
	i, ok := v.(starlark.Int)
	if !ok {
		return
	}

	return i.Uint64()
}

func pairBuiltin(encode func(x, y uint64) (uint64, error)) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var sx, sy starlark.Int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &sx, &sy)
		if err != nil {
			return nil, err
		}

		x, ok := natural(sx)
		if !ok {
			return nil, ErrExpression(sx.String())
		}
		y, ok := natural(sy)
		if !ok {
			return nil, ErrExpression(sy.String())
		}

		n, err := encode(x, y)
		if err != nil {
			return nil, err
		}

		return starlark.MakeUint64(n), nil
	}
}

func slotsBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, ErrExpression(fn.Name())
	}

	list := make([]uint64, 0, len(args))
	for _, arg := range args {
		k, ok := natural(arg)
		if !ok {
			return nil, ErrExpression(arg.String())
		}
		list = append(list, k)
	}

	n, err := coding.EncodeList(list)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(n), nil
}

// eval evaluates a single Starlark expression.
func eval(src string) (value starlark.Value, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + src + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, builtins)
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrExpression(src)
		return
	}

	return
}

// Number evaluates src to a natural number.
func Number(src string) (n uint64, err error) {
	value, err := eval(src)
	if err != nil {
		err = errors.Join(ErrExpression(src), err)
		return
	}

	n, ok := natural(value)
	if !ok {
		err = ErrExpression(src)
		return
	}

	return
}

// Registers evaluates src, a dict of register index to value, to a register
// file. The empty string is the empty register file.
func Registers(src string) (regs machine.Registers, err error) {
	regs = machine.Registers{}
	if len(src) == 0 {
		return
	}

	value, err := eval(src)
	if err != nil {
		err = errors.Join(ErrRegisters(src), err)
		regs = nil
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrRegisters(src)
		regs = nil
		return
	}

	for _, item := range dict.Items() {
		reg, ok := natural(item[0])
		if !ok {
			err = errors.Join(ErrRegisters(src), ErrExpression(item[0].String()))
			regs = nil
			return
		}
		count, ok := natural(item[1])
		if !ok {
			err = errors.Join(ErrRegisters(src), ErrExpression(item[1].String()))
			regs = nil
			return
		}
		regs.Set(machine.Reg(reg), count)
	}

	return
}
