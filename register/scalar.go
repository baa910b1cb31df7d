package register

import (
	"strings"
)

// FLAGSName is a view of the flags register.
type FLAGSName int

//go:generate go tool stringer -linecomment -type=FLAGSName
const (
	RFLAGS = FLAGSName(0) // RFLAGS
	EFLAGS = FLAGSName(1) // EFLAGS
	FLAGS  = FLAGSName(2) // FLAGS
)

// Bits returns the width of the view.
func (name FLAGSName) Bits() int {
	return 64 >> name
}

// IPName is a view of the instruction pointer.
type IPName int

//go:generate go tool stringer -linecomment -type=IPName
const (
	RIP = IPName(0) // RIP
	EIP = IPName(1) // EIP
	IP  = IPName(2) // IP
)

// Bits returns the width of the view.
func (name IPName) Bits() int {
	return 64 >> name
}

// lowMask is a mask of the low 'bits' bits.
func lowMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// FlagsRegister is the 64-bit flags register. Individual flags are not
// interpreted.
type FlagsRegister uint64

// Value returns the named view of the flags.
func (fr FlagsRegister) Value(name FLAGSName) uint64 {
	return uint64(fr) & lowMask(name.Bits())
}

// SetValue writes the low bits of the flags covered by the view, leaving
// the rest unchanged.
func (fr *FlagsRegister) SetValue(name FLAGSName, value uint64) {
	mask := lowMask(name.Bits())
	*fr = FlagsRegister((uint64(*fr) &^ mask) | (value & mask))
}

// InstructionPointer is the 64-bit instruction pointer.
type InstructionPointer uint64

// Value returns the named view of the instruction pointer.
func (ip InstructionPointer) Value(name IPName) uint64 {
	return uint64(ip) & lowMask(name.Bits())
}

// SetValue writes the low bits of the instruction pointer covered by the
// view, leaving the rest unchanged.
func (ip *InstructionPointer) SetValue(name IPName, value uint64) {
	mask := lowMask(name.Bits())
	*ip = InstructionPointer((uint64(*ip) &^ mask) | (value & mask))
}

// ParseFLAGSName returns the flags view named by text, ignoring case.
func ParseFLAGSName(text string) (name FLAGSName, ok bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for name = RFLAGS; name <= FLAGS; name++ {
		if name.String() == text {
			ok = true
			return
		}
	}
	name = 0
	return
}

// ParseIPName returns the instruction pointer view named by text, ignoring
// case.
func ParseIPName(text string) (name IPName, ok bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for name = RIP; name <= IP; name++ {
		if name.String() == text {
			ok = true
			return
		}
	}
	name = 0
	return
}
