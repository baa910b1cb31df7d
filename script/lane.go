package script

import (
	"math/big"

	"github.com/ezrec/simdcpu/memory"
	"github.com/ezrec/simdcpu/register"
	"github.com/ezrec/simdcpu/word"
)

// lane is the set of typed operations for one lane width, with values
// converted to and from arbitrary precision integers.
type lane struct {
	bits        int
	sections    func(vb *register.VectorBank, width register.VecRegName, slot int) ([]*big.Int, bool)
	setSections func(vb *register.VectorBank, width register.VecRegName, slot int, values []*big.Int) error
	get         func(vb *register.VectorBank, slot int, sel register.Selector) (*big.Int, bool)
	set         func(vb *register.VectorBank, slot int, sel register.Selector, value *big.Int) error
	read        func(m *memory.Memory, addr uint64, count int) []*big.Int
	write       func(m *memory.Memory, addr uint64, values []*big.Int)
}

func bigs[T word.Word[T]](values []T) (out []*big.Int) {
	out = make([]*big.Int, len(values))
	for n, value := range values {
		out[n] = value.Big()
	}
	return
}

func words[T word.Word[T]](values []*big.Int) (out []T) {
	out = make([]T, len(values))
	for n, value := range values {
		out[n] = out[n].FromBig(value)
	}
	return
}

func laneOf[T word.Word[T]]() lane {
	return lane{
		bits: word.BitsOf[T](),
		sections: func(vb *register.VectorBank, width register.VecRegName, slot int) ([]*big.Int, bool) {
			values, ok := register.GetBySections[T](vb, width, slot)
			return bigs(values), ok
		},
		setSections: func(vb *register.VectorBank, width register.VecRegName, slot int, values []*big.Int) error {
			return register.SetBySections(vb, width, slot, words[T](values))
		},
		get: func(vb *register.VectorBank, slot int, sel register.Selector) (*big.Int, bool) {
			value, ok := register.GetByRange[T](vb, slot, sel)
			return value.Big(), ok
		},
		set: func(vb *register.VectorBank, slot int, sel register.Selector, value *big.Int) error {
			var zero T
			return register.SetByRange(vb, slot, sel, zero.FromBig(value))
		},
		read: func(m *memory.Memory, addr uint64, count int) []*big.Int {
			return bigs(memory.ReadVec[T](m, addr, count))
		},
		write: func(m *memory.Memory, addr uint64, values []*big.Int) {
			memory.WriteVec(m, addr, words[T](values))
		},
	}
}

var _lanes = map[int]lane{
	8:   laneOf[word.U8](),
	16:  laneOf[word.U16](),
	32:  laneOf[word.U32](),
	64:  laneOf[word.U64](),
	128: laneOf[word.U128](),
	256: laneOf[word.U256](),
	512: laneOf[word.U512](),
}

// laneBits returns the operations for a lane width.
func laneBits(bits int) (ln lane, err error) {
	ln, ok := _lanes[bits]
	if !ok {
		err = ErrBits
	}
	return
}
