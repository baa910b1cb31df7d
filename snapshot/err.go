package snapshot

import (
	"errors"

	"github.com/ezrec/simdcpu/translate"
)

var f = translate.From

var (
	ErrHex = errors.New(f("hex value invalid"))
)

type ErrField struct {
	Field string
	Err   error
}

func (err ErrField) Error() string {
	return f("snapshot %v: %v", err.Field, err.Err)
}

func (err ErrField) Unwrap() error {
	return err.Err
}
