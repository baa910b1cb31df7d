// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	_ = isWord[U128]
	_ = isWord[U256]
	_ = isWord[U512]
)

// U128 is a 128-bit lane stored as two 64-bit limbs.
type U128 struct {
	Lo uint64
	Hi uint64
}

// NewU128 builds a U128 from its limbs.
func NewU128(hi, lo uint64) U128 {
	return U128{Lo: lo, Hi: hi}
}

func (U128) Bits() int               { return 128 }
func (U128) Size() int               { return 16 }
func (U128) FromUint8(v uint8) U128  { return U128{Lo: uint64(v)} }
func (x U128) Or(y U128) U128        { return U128{Lo: x.Lo | y.Lo, Hi: x.Hi | y.Hi} }
func (x U128) And(y U128) U128       { return U128{Lo: x.Lo & y.Lo, Hi: x.Hi & y.Hi} }
func (x U128) Big() *big.Int         { return bigOf(x) }
func (U128) FromBig(b *big.Int) U128 { return U128{}.FromLE(bigToLE(b, 16)) }

func (x U128) Shl(n uint) (z U128) {
	switch {
	case n == 0:
		z = x
	case n >= 128:
	case n >= 64:
		z.Hi = x.Lo << (n - 64)
	default:
		z.Hi = x.Hi<<n | x.Lo>>(64-n)
		z.Lo = x.Lo << n
	}
	return
}

func (x U128) Shr(n uint) (z U128) {
	switch {
	case n == 0:
		z = x
	case n >= 128:
	case n >= 64:
		z.Lo = x.Hi >> (n - 64)
	default:
		z.Lo = x.Lo>>n | x.Hi<<(64-n)
		z.Hi = x.Hi >> n
	}
	return
}

func (x U128) PutLE(dst []byte) {
	binary.LittleEndian.PutUint64(dst[0:8], x.Lo)
	binary.LittleEndian.PutUint64(dst[8:16], x.Hi)
}

func (U128) FromLE(src []byte) U128 {
	return U128{
		Lo: binary.LittleEndian.Uint64(src[0:8]),
		Hi: binary.LittleEndian.Uint64(src[8:16]),
	}
}

func (x U128) String() string {
	return fmt.Sprintf("%#x", x.Big())
}

// U256 is a 256-bit lane.
type U256 uint256.Int

// NewU256 builds a U256 from a 64-bit value.
func NewU256(v uint64) U256 {
	return U256(*uint256.NewInt(v))
}

// U256FromHex parses a 0x prefixed hexadecimal string.
func U256FromHex(hex string) (x U256, err error) {
	v, err := uint256.FromHex(hex)
	if err != nil {
		return
	}
	x = U256(*v)
	return
}

// Int returns a copy of the value as a uint256.Int.
func (x U256) Int() *uint256.Int {
	v := uint256.Int(x)
	return &v
}

func (U256) Bits() int              { return 256 }
func (U256) Size() int              { return 32 }
func (U256) FromUint8(v uint8) U256 { return NewU256(uint64(v)) }
func (x U256) Shl(n uint) U256      { return U256(*new(uint256.Int).Lsh(x.Int(), n)) }
func (x U256) Shr(n uint) U256      { return U256(*new(uint256.Int).Rsh(x.Int(), n)) }
func (x U256) Or(y U256) U256       { return U256(*new(uint256.Int).Or(x.Int(), y.Int())) }
func (x U256) And(y U256) U256      { return U256(*new(uint256.Int).And(x.Int(), y.Int())) }
func (x U256) Big() *big.Int        { return x.Int().ToBig() }
func (x U256) String() string       { return x.Int().Hex() }

func (x U256) PutLE(dst []byte) {
	le, _ := x.Int().MarshalSSZAppend(make([]byte, 0, 32))
	copy(dst[:32], le)
}

func (U256) FromLE(src []byte) (x U256) {
	var v uint256.Int
	// Cannot fail, the slice is exactly 32 bytes.
	_ = v.UnmarshalSSZ(src[:32])
	x = U256(v)
	return
}

func (U256) FromBig(b *big.Int) U256 {
	v, _ := uint256.FromBig(truncate(b, 256))
	return U256(*v)
}

// U512 is a 512-bit lane stored as two uint256 halves.
type U512 struct {
	Lo uint256.Int
	Hi uint256.Int
}

// NewU512 builds a U512 from a 64-bit value.
func NewU512(v uint64) U512 {
	return U512{Lo: *uint256.NewInt(v)}
}

// NewU512Halves builds a U512 from its 256-bit halves.
func NewU512Halves(hi, lo U256) U512 {
	return U512{Lo: uint256.Int(lo), Hi: uint256.Int(hi)}
}

func (U512) Bits() int               { return 512 }
func (U512) Size() int               { return 64 }
func (U512) FromUint8(v uint8) U512  { return NewU512(uint64(v)) }
func (x U512) Big() *big.Int         { return bigOf(x) }
func (U512) FromBig(b *big.Int) U512 { return U512{}.FromLE(bigToLE(b, 64)) }
func (x U512) String() string        { return fmt.Sprintf("%#x", x.Big()) }

func (x U512) Shl(n uint) (z U512) {
	switch {
	case n == 0:
		z = x
	case n >= 512:
	case n >= 256:
		z.Hi.Lsh(&x.Lo, n-256)
	default:
		var carry uint256.Int
		carry.Rsh(&x.Lo, 256-n)
		z.Hi.Lsh(&x.Hi, n)
		z.Hi.Or(&z.Hi, &carry)
		z.Lo.Lsh(&x.Lo, n)
	}
	return
}

func (x U512) Shr(n uint) (z U512) {
	switch {
	case n == 0:
		z = x
	case n >= 512:
	case n >= 256:
		z.Lo.Rsh(&x.Hi, n-256)
	default:
		var carry uint256.Int
		carry.Lsh(&x.Hi, 256-n)
		z.Lo.Rsh(&x.Lo, n)
		z.Lo.Or(&z.Lo, &carry)
		z.Hi.Rsh(&x.Hi, n)
	}
	return
}

func (x U512) Or(y U512) (z U512) {
	z.Lo.Or(&x.Lo, &y.Lo)
	z.Hi.Or(&x.Hi, &y.Hi)
	return
}

func (x U512) And(y U512) (z U512) {
	z.Lo.And(&x.Lo, &y.Lo)
	z.Hi.And(&x.Hi, &y.Hi)
	return
}

func (x U512) PutLE(dst []byte) {
	U256(x.Lo).PutLE(dst[0:32])
	U256(x.Hi).PutLE(dst[32:64])
}

func (U512) FromLE(src []byte) U512 {
	return U512{
		Lo: uint256.Int(U256{}.FromLE(src[0:32])),
		Hi: uint256.Int(U256{}.FromLE(src[32:64])),
	}
}

// bigOf converts any Scalar via its little-endian encoding.
func bigOf[T Scalar[T]](x T) *big.Int {
	le := make([]byte, x.Size())
	x.PutLE(le)
	return leToBig(le)
}
