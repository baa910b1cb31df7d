// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

import (
	"math/big"
	"slices"
)

// Lane is the capability set required to split a wide register into
// sections and reassemble it, one bit at a time.
type Lane[T any] interface {
	comparable
	// Bits is the width of the type in bits.
	Bits() int
	// FromUint8 constructs a value from a small integer.
	FromUint8(v uint8) T
	Shl(n uint) T
	Shr(n uint) T
	Or(y T) T
	And(y T) T
}

// Scalar is a value with a fixed length little-endian encoding.
type Scalar[T any] interface {
	// Size is the encoded length in bytes.
	Size() int
	// PutLE encodes the value into dst[:Size()].
	PutLE(dst []byte)
	// FromLE decodes a value from src[:Size()].
	FromLE(src []byte) T
}

// Word is a Lane that can also be stored in memory and converted to and from
// arbitrary precision integers.
type Word[T any] interface {
	Lane[T]
	Scalar[T]
	// Big returns the value as an arbitrary precision integer.
	Big() *big.Int
	// FromBig returns b truncated to the width of T.
	FromBig(b *big.Int) T
}

// isWord is instantiated to check a type against the Word constraint.
func isWord[T Word[T]]() {}

// BitsOf returns the bit width of T.
func BitsOf[T Lane[T]]() int {
	var zero T
	return zero.Bits()
}

// SizeOf returns the encoded byte length of T.
func SizeOf[T Scalar[T]]() int {
	var zero T
	return zero.Size()
}

// truncate keeps the low 'bits' bits of b, two's complement for negatives.
func truncate(b *big.Int, bits int) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	return new(big.Int).And(b, mask)
}

// bigToLE encodes the low size*8 bits of b as little-endian bytes.
func bigToLE(b *big.Int, size int) (le []byte) {
	le = truncate(b, size*8).FillBytes(make([]byte, size))
	slices.Reverse(le)
	return
}

// leToBig decodes little-endian bytes as an unsigned integer.
func leToBig(le []byte) *big.Int {
	be := slices.Clone(le)
	slices.Reverse(be)
	return new(big.Int).SetBytes(be)
}
