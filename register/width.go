package register

import (
	"strings"
)

// VECTOR_SLOTS is the number of vector registers.
const VECTOR_SLOTS = 16

// VECTOR_BITS is the physical width of a vector register.
const VECTOR_BITS = 512

// VecRegName is the width a vector register is viewed at.
type VecRegName int

//go:generate go tool stringer -linecomment -type=VecRegName
const (
	XMM = VecRegName(0) // XMM
	YMM = VecRegName(1) // YMM
	ZMM = VecRegName(2) // ZMM
)

// Valid returns true for XMM, YMM and ZMM.
func (width VecRegName) Valid() bool {
	return width >= XMM && width <= ZMM
}

// Bits returns the number of bits in the view, or zero for an invalid width.
func (width VecRegName) Bits() int {
	if !width.Valid() {
		return 0
	}
	return 128 << width
}

// ParseVecRegName returns the vector width named by text, ignoring case.
func ParseVecRegName(text string) (width VecRegName, ok bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for width = XMM; width <= ZMM; width++ {
		if width.String() == text {
			ok = true
			return
		}
	}
	width = 0
	return
}
