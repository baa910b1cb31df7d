// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ezrec/simdcpu/word"
)

// VectorBank holds the vector registers. Each register is VECTOR_BITS wide;
// narrower widths view its low bits. A copy of a VectorBank is independent
// of the original.
type VectorBank struct {
	slot [VECTOR_SLOTS][VECTOR_BITS / 64]uint64
}

// validSlot returns true if slot names a register.
func validSlot(slot int) bool {
	return slot >= 0 && slot < VECTOR_SLOTS
}

// bits returns a bit set view over the limbs of a slot.
func (vb *VectorBank) bits(slot int) *bitset.BitSet {
	return bitset.From(vb.slot[slot][:])
}

// Check validates a width, slot and bit position triple.
func Check(width VecRegName, slot int, pos uint) (err error) {
	switch {
	case !width.Valid():
		err = ErrWidth
	case !validSlot(slot):
		err = ErrSlot
	case pos >= uint(width.Bits()):
		err = ErrBitPosition
	}
	return
}

// GetBit returns a single bit of a register viewed at 'width'.
func (vb *VectorBank) GetBit(width VecRegName, slot int, pos uint) (value bool, ok bool) {
	if Check(width, slot, pos) != nil {
		return
	}

	value = vb.bits(slot).Test(pos)
	ok = true
	return
}

// SetBit sets a single bit of a register viewed at 'width'. On error the
// register is unchanged.
func (vb *VectorBank) SetBit(width VecRegName, slot int, pos uint, value bool) (err error) {
	err = Check(width, slot, pos)
	if err != nil {
		return
	}

	vb.bits(slot).SetTo(pos, value)
	return
}

// Clear zeroes all bits of a register.
func (vb *VectorBank) Clear(slot int) (err error) {
	if !validSlot(slot) {
		err = ErrSlot
		return
	}

	vb.bits(slot).ClearAll()
	return
}

// Reset zeroes all registers.
func (vb *VectorBank) Reset() {
	*vb = VectorBank{}
}

// Words returns a copy of a register as little-endian 64-bit limbs.
func (vb *VectorBank) Words(slot int) (words [VECTOR_BITS / 64]uint64, ok bool) {
	if !validSlot(slot) {
		return
	}

	words = vb.slot[slot]
	ok = true
	return
}

// SetWords replaces a register with little-endian 64-bit limbs.
func (vb *VectorBank) SetWords(slot int, words [VECTOR_BITS / 64]uint64) (err error) {
	if !validSlot(slot) {
		err = ErrSlot
		return
	}

	vb.slot[slot] = words
	return
}

// GetBySections splits a register viewed at 'width' into lanes of type T,
// least significant lane first. A lane wider than the remaining bits is
// zero extended.
func GetBySections[T word.Lane[T]](vb *VectorBank, width VecRegName, slot int) (values []T, ok bool) {
	if !width.Valid() || !validSlot(slot) {
		return
	}

	total := uint(width.Bits())
	lane := uint(word.BitsOf[T]())

	var zero T
	one := zero.FromUint8(1)
	values = make([]T, (total+lane-1)/lane)

	set := vb.bits(slot)
	for pos, found := set.NextSet(0); found && pos < total; pos, found = set.NextSet(pos + 1) {
		n := pos / lane
		values[n] = values[n].Or(one.Shl(pos % lane))
	}

	ok = true
	return
}

// SetBySections replaces a register viewed at 'width' with lanes of type T,
// least significant lane first. The lanes must fill the width exactly. All
// bits above the width are zeroed.
func SetBySections[T word.Lane[T]](vb *VectorBank, width VecRegName, slot int, values []T) (err error) {
	if !width.Valid() {
		err = ErrWidth
		return
	}
	if !validSlot(slot) {
		err = ErrSlot
		return
	}

	lane := word.BitsOf[T]()
	if len(values)*lane != width.Bits() {
		err = ErrSections{Width: width, Count: len(values), Bits: lane}
		return
	}

	var zero T
	one := zero.FromUint8(1)

	set := vb.bits(slot)
	set.ClearAll()
	for n, value := range values {
		for bit := range uint(lane) {
			if value.Shr(bit).And(one) != zero {
				set.Set(uint(n*lane) + bit)
			}
		}
	}

	return
}

// GetByRange packs the bits of a selector range into T, starting at bit 0.
// It panics with ErrSelectorTooWide if the range is wider than T.
func GetByRange[T word.Lane[T]](vb *VectorBank, slot int, sel Selector) (value T, ok bool) {
	if !validSlot(slot) {
		return
	}

	if sel.Bits() > word.BitsOf[T]() {
		panic(ErrSelector{Text: sel.String(), Err: ErrSelectorTooWide})
	}

	one := value.FromUint8(1)
	set := vb.bits(slot)
	for pos, found := set.NextSet(sel.Lo); found && pos <= sel.Hi; pos, found = set.NextSet(pos + 1) {
		value = value.Or(one.Shl(pos - sel.Lo))
	}

	ok = true
	return
}

// SetByRange overwrites every bit of a selector range from the low bits of
// value. Range bits beyond the width of T are zeroed.
func SetByRange[T word.Lane[T]](vb *VectorBank, slot int, sel Selector, value T) (err error) {
	if !validSlot(slot) {
		err = ErrSlot
		return
	}

	var zero T
	one := zero.FromUint8(1)
	lane := uint(word.BitsOf[T]())

	set := vb.bits(slot)
	for bit := range uint(sel.Bits()) {
		set.SetTo(sel.Lo+bit, bit < lane && value.Shr(bit).And(one) != zero)
	}

	return
}

// GetBySelector is GetByRange with a "[hi:lo]" selector. A malformed
// selector is not ok.
func GetBySelector[T word.Lane[T]](vb *VectorBank, slot int, text string) (value T, ok bool) {
	sel, err := ParseSelector(text)
	if err != nil {
		return
	}

	return GetByRange[T](vb, slot, sel)
}

// SetBySelector is SetByRange with a "[hi:lo]" selector. On error the
// register is unchanged.
func SetBySelector[T word.Lane[T]](vb *VectorBank, slot int, text string, value T) (err error) {
	sel, err := ParseSelector(text)
	if err != nil {
		return
	}

	return SetByRange(vb, slot, sel, value)
}
