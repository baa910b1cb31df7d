package script

import (
	"errors"

	"github.com/ezrec/simdcpu/translate"
)

var f = translate.From

var (
	ErrBits      = errors.New(f("lane bits must be one of 8, 16, 32, 64, 128, 256 or 512"))
	ErrName      = errors.New(f("register name unknown"))
	ErrWidth     = errors.New(f("vector width must be XMM, YMM or ZMM"))
	ErrNegative  = errors.New(f("value must not be negative"))
	ErrNotInt    = errors.New(f("value must be an int"))
	ErrNotNumber = errors.New(f("value must be a number"))

	ErrCheckpointFull  = errors.New(f("checkpoint stack full"))
	ErrCheckpointEmpty = errors.New(f("checkpoint stack empty"))
)

type ErrBuiltin struct {
	Name string
	Err  error
}

func (err ErrBuiltin) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrBuiltin) Unwrap() error {
	return err.Err
}
