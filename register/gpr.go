// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"iter"
	"strings"
)

// GPRFamily is one 64-bit general purpose register and all of its aliases.
type GPRFamily int

//go:generate go tool stringer -linecomment -type=GPRFamily
const (
	GPR_A   = GPRFamily(0)  // A
	GPR_B   = GPRFamily(1)  // B
	GPR_C   = GPRFamily(2)  // C
	GPR_D   = GPRFamily(3)  // D
	GPR_SI  = GPRFamily(4)  // SI
	GPR_DI  = GPRFamily(5)  // DI
	GPR_BP  = GPRFamily(6)  // BP
	GPR_SP  = GPRFamily(7)  // SP
	GPR_R8  = GPRFamily(8)  // R8
	GPR_R9  = GPRFamily(9)  // R9
	GPR_R10 = GPRFamily(10) // R10
	GPR_R11 = GPRFamily(11) // R11
	GPR_R12 = GPRFamily(12) // R12
	GPR_R13 = GPRFamily(13) // R13
	GPR_R14 = GPRFamily(14) // R14
	GPR_R15 = GPRFamily(15) // R15
)

// GPR_FAMILIES is the number of general purpose registers.
const GPR_FAMILIES = 16

// GPRName is an architectural name for all or part of a general purpose
// register.
type GPRName int

//go:generate go tool stringer -linecomment -type=GPRName
const (
	RAX = GPRName(0)  // RAX
	RBX = GPRName(1)  // RBX
	RCX = GPRName(2)  // RCX
	RDX = GPRName(3)  // RDX
	RSI = GPRName(4)  // RSI
	RDI = GPRName(5)  // RDI
	RBP = GPRName(6)  // RBP
	RSP = GPRName(7)  // RSP
	R8  = GPRName(8)  // R8
	R9  = GPRName(9)  // R9
	R10 = GPRName(10) // R10
	R11 = GPRName(11) // R11
	R12 = GPRName(12) // R12
	R13 = GPRName(13) // R13
	R14 = GPRName(14) // R14
	R15 = GPRName(15) // R15

	EAX  = GPRName(16) // EAX
	EBX  = GPRName(17) // EBX
	ECX  = GPRName(18) // ECX
	EDX  = GPRName(19) // EDX
	ESI  = GPRName(20) // ESI
	EDI  = GPRName(21) // EDI
	EBP  = GPRName(22) // EBP
	ESP  = GPRName(23) // ESP
	R8D  = GPRName(24) // R8D
	R9D  = GPRName(25) // R9D
	R10D = GPRName(26) // R10D
	R11D = GPRName(27) // R11D
	R12D = GPRName(28) // R12D
	R13D = GPRName(29) // R13D
	R14D = GPRName(30) // R14D
	R15D = GPRName(31) // R15D

	AX   = GPRName(32) // AX
	BX   = GPRName(33) // BX
	CX   = GPRName(34) // CX
	DX   = GPRName(35) // DX
	SI   = GPRName(36) // SI
	DI   = GPRName(37) // DI
	BP   = GPRName(38) // BP
	SP   = GPRName(39) // SP
	R8W  = GPRName(40) // R8W
	R9W  = GPRName(41) // R9W
	R10W = GPRName(42) // R10W
	R11W = GPRName(43) // R11W
	R12W = GPRName(44) // R12W
	R13W = GPRName(45) // R13W
	R14W = GPRName(46) // R14W
	R15W = GPRName(47) // R15W

	AH   = GPRName(48) // AH
	BH   = GPRName(49) // BH
	CH   = GPRName(50) // CH
	DH   = GPRName(51) // DH
	AL   = GPRName(52) // AL
	BL   = GPRName(53) // BL
	CL   = GPRName(54) // CL
	DL   = GPRName(55) // DL
	SIL  = GPRName(56) // SIL
	DIL  = GPRName(57) // DIL
	BPL  = GPRName(58) // BPL
	SPL  = GPRName(59) // SPL
	R8B  = GPRName(60) // R8B
	R9B  = GPRName(61) // R9B
	R10B = GPRName(62) // R10B
	R11B = GPRName(63) // R11B
	R12B = GPRName(64) // R12B
	R13B = GPRName(65) // R13B
	R14B = GPRName(66) // R14B
	R15B = GPRName(67) // R15B
)

// GPR_NAMES is the number of general purpose register names.
const GPR_NAMES = 68

// GPRNames iterates over all general purpose register names.
func GPRNames() iter.Seq[GPRName] {
	return func(yield func(GPRName) bool) {
		for name := RAX; name < GPR_NAMES; name++ {
			if !yield(name) {
				return
			}
		}
	}
}

// ParseGPRName returns the register named by text, ignoring case.
func ParseGPRName(text string) (name GPRName, ok bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for name = range GPRNames() {
		if name.String() == text {
			ok = true
			return
		}
	}
	name = 0
	return
}

// Valid returns true if name is a known register name.
func (name GPRName) Valid() bool {
	return name >= RAX && name < GPR_NAMES
}

// descriptor locates the bits of the family register a name refers to.
// It panics with ErrRegisterName if the name is not valid.
func (name GPRName) descriptor() (family GPRFamily, bits uint, shift uint) {
	if !name.Valid() {
		panic(ErrRegisterName)
	}

	switch {
	case name <= R15:
		family, bits = GPRFamily(name-RAX), 64
	case name <= R15D:
		family, bits = GPRFamily(name-EAX), 32
	case name <= R15W:
		family, bits = GPRFamily(name-AX), 16
	case name <= DH:
		family, bits, shift = GPRFamily(name-AH), 8, 8
	default:
		family, bits = GPRFamily(name-AL), 8
	}
	return
}

// Family returns the register that name is an alias of.
func (name GPRName) Family() GPRFamily {
	family, _, _ := name.descriptor()
	return family
}

// Bits returns the width of the named register view.
func (name GPRName) Bits() int {
	_, bits, _ := name.descriptor()
	return int(bits)
}

// Shift returns the bit offset of the named view within its family.
func (name GPRName) Shift() int {
	_, _, shift := name.descriptor()
	return int(shift)
}

// Name returns the 64-bit register name of the family.
func (family GPRFamily) Name() GPRName {
	return RAX + GPRName(family)
}

// GPRBank holds the general purpose registers.
//
// Writing a 32-bit name zero extends into the full register. Writing a 16-bit
// or 8-bit name only changes the bits that name covers. An invalid name
// panics with ErrRegisterName.
type GPRBank [GPR_FAMILIES]uint64

// Value returns the named register view, zero extended.
func (bank *GPRBank) Value(name GPRName) (value uint64) {
	family, bits, shift := name.descriptor()
	value = bank[family] >> shift
	if bits < 64 {
		value &= (uint64(1) << bits) - 1
	}
	return
}

// SetValue writes the named register view. Input bits beyond the width of
// the view are ignored.
func (bank *GPRBank) SetValue(name GPRName, value uint64) {
	family, bits, shift := name.descriptor()
	switch bits {
	case 64:
		bank[family] = value
	case 32:
		bank[family] = value & 0xFFFF_FFFF
	default:
		mask := ((uint64(1) << bits) - 1) << shift
		bank[family] = (bank[family] &^ mask) | ((value << shift) & mask)
	}
}

// Reset zeroes all registers.
func (bank *GPRBank) Reset() {
	*bank = GPRBank{}
}
