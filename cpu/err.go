package cpu

import (
	"github.com/ezrec/simdcpu/register"
	"github.com/ezrec/simdcpu/translate"
)

var f = translate.From

var (
	ErrRegisterName = register.ErrRegisterName
)

type ErrName string

func (err ErrName) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrName) Unwrap() error {
	return ErrRegisterName
}
