package register

import (
	"errors"

	"github.com/ezrec/simdcpu/translate"
)

var f = translate.From

var (
	// Vector register errors
	ErrSlot         = errors.New(f("vector slot invalid"))
	ErrWidth        = errors.New(f("vector width invalid"))
	ErrBitPosition  = errors.New(f("bit position out of range"))
	ErrSectionWidth = errors.New(f("sections do not fill the register width"))

	// Selector errors
	ErrSelectorSyntax  = errors.New(f("selector syntax"))
	ErrSelectorTooWide = errors.New(f("selector wider than value"))

	// Name errors
	ErrRegisterName = errors.New(f("register name unknown"))
)

type ErrSelector struct {
	Text string
	Err  error
}

func (err ErrSelector) Error() string {
	return f("selector '%v' %v", err.Text, err.Err)
}

func (err ErrSelector) Unwrap() error {
	return err.Err
}

type ErrSections struct {
	Width VecRegName
	Count int
	Bits  int
}

func (err ErrSections) Error() string {
	return f("%v lanes of %v bits do not fill %v", err.Count, err.Bits, err.Width)
}

func (err ErrSections) Unwrap() error {
	return ErrSectionWidth
}
