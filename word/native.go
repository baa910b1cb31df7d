// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/exp/constraints"
)

// U8 is an 8-bit lane.
type U8 uint8

// U16 is a 16-bit lane.
type U16 uint16

// U32 is a 32-bit lane.
type U32 uint32

// U64 is a 64-bit lane.
type U64 uint64

// Native is the set of lanes backed by a Go integer type.
type Native interface {
	U8 | U16 | U32 | U64
}

var (
	_ = isWord[U8]
	_ = isWord[U16]
	_ = isWord[U32]
	_ = isWord[U64]
)

// FromNative converts a slice of Go integers into lanes, truncating each
// element to the lane width.
func FromNative[T Native, N constraints.Unsigned](in []N) (out []T) {
	out = make([]T, len(in))
	for n, v := range in {
		out[n] = T(v)
	}
	return
}

// ToNative converts a slice of lanes into Go integers.
func ToNative[N constraints.Unsigned, T Native](in []T) (out []N) {
	out = make([]N, len(in))
	for n, v := range in {
		out[n] = N(v)
	}
	return
}

func (U8) Bits() int             { return 8 }
func (U8) Size() int             { return 1 }
func (U8) FromUint8(v uint8) U8  { return U8(v) }
func (x U8) Shl(n uint) U8       { return x << n }
func (x U8) Shr(n uint) U8       { return x >> n }
func (x U8) Or(y U8) U8          { return x | y }
func (x U8) And(y U8) U8         { return x & y }
func (x U8) PutLE(dst []byte)    { dst[0] = uint8(x) }
func (U8) FromLE(src []byte) U8  { return U8(src[0]) }
func (x U8) Big() *big.Int       { return new(big.Int).SetUint64(uint64(x)) }
func (U8) FromBig(b *big.Int) U8 { return U8(truncate(b, 8).Uint64()) }

func (U16) Bits() int              { return 16 }
func (U16) Size() int              { return 2 }
func (U16) FromUint8(v uint8) U16  { return U16(v) }
func (x U16) Shl(n uint) U16       { return x << n }
func (x U16) Shr(n uint) U16       { return x >> n }
func (x U16) Or(y U16) U16         { return x | y }
func (x U16) And(y U16) U16        { return x & y }
func (x U16) PutLE(dst []byte)     { binary.LittleEndian.PutUint16(dst, uint16(x)) }
func (U16) FromLE(src []byte) U16  { return U16(binary.LittleEndian.Uint16(src)) }
func (x U16) Big() *big.Int        { return new(big.Int).SetUint64(uint64(x)) }
func (U16) FromBig(b *big.Int) U16 { return U16(truncate(b, 16).Uint64()) }

func (U32) Bits() int              { return 32 }
func (U32) Size() int              { return 4 }
func (U32) FromUint8(v uint8) U32  { return U32(v) }
func (x U32) Shl(n uint) U32       { return x << n }
func (x U32) Shr(n uint) U32       { return x >> n }
func (x U32) Or(y U32) U32         { return x | y }
func (x U32) And(y U32) U32        { return x & y }
func (x U32) PutLE(dst []byte)     { binary.LittleEndian.PutUint32(dst, uint32(x)) }
func (U32) FromLE(src []byte) U32  { return U32(binary.LittleEndian.Uint32(src)) }
func (x U32) Big() *big.Int        { return new(big.Int).SetUint64(uint64(x)) }
func (U32) FromBig(b *big.Int) U32 { return U32(truncate(b, 32).Uint64()) }

func (U64) Bits() int              { return 64 }
func (U64) Size() int              { return 8 }
func (U64) FromUint8(v uint8) U64  { return U64(v) }
func (x U64) Shl(n uint) U64       { return x << n }
func (x U64) Shr(n uint) U64       { return x >> n }
func (x U64) Or(y U64) U64         { return x | y }
func (x U64) And(y U64) U64        { return x & y }
func (x U64) PutLE(dst []byte)     { binary.LittleEndian.PutUint64(dst, uint64(x)) }
func (U64) FromLE(src []byte) U64  { return U64(binary.LittleEndian.Uint64(src)) }
func (x U64) Big() *big.Int        { return new(big.Int).SetUint64(uint64(x)) }
func (U64) FromBig(b *big.Int) U64 { return U64(truncate(b, 64).Uint64()) }
