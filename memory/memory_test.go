package memory

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simdcpu/word"
)

const testBase = 0x00400000

func TestNewMemoryGranularity(t *testing.T) {
	assert := assert.New(t)

	for _, g := range []uint64{0, 3, 100, 513} {
		m, err := NewMemoryGranularity(testBase, g)
		assert.ErrorIs(err, ErrGranularity, "granularity %d", g)
		assert.Nil(m)
	}

	m, err := NewMemoryGranularity(testBase, 16)
	assert.NoError(err)
	assert.Equal(uint64(16), m.Granularity())
	assert.Equal(uint64(testBase), m.Base())

	assert.Equal(uint64(DEFAULT_GRANULARITY), NewMemory(testBase).Granularity())
}

func TestMemory_Peek_Unmapped(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	for _, addr := range []uint64{0, testBase, testBase + 12345, ^uint64(0)} {
		assert.Equal(byte(0), m.Peek(addr))
	}
	assert.Equal(0, m.SegmentCount())
}

func TestMemory_Poke(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	m.Poke(testBase+5, 0xAB)
	assert.Equal(byte(0xAB), m.Peek(testBase+5))
	assert.Equal(byte(0), m.Peek(testBase+4))
	assert.Equal(byte(0), m.Peek(testBase+511))
	assert.Equal(1, m.SegmentCount())

	// Same block, no new segment.
	m.Poke(testBase+511, 0xCD)
	assert.Equal(1, m.SegmentCount())

	// Far away, new segment.
	m.Poke(testBase+0x100000, 0x01)
	assert.Equal(2, m.SegmentCount())
	assert.Equal(byte(0xCD), m.Peek(testBase+511))
	assert.Equal(byte(0x01), m.Peek(testBase+0x100000))
}

func TestMemory_Coalesce(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)

	m.Poke(testBase+512, 1)
	m.Poke(testBase+1536, 3)
	assert.Equal(2, m.SegmentCount())

	// Bridges the gap between both neighbours.
	m.Poke(testBase+1024, 2)
	assert.Equal(1, m.SegmentCount())

	segments := maps.Collect(m.Segments())
	assert.Len(segments, 1)
	data, ok := segments[testBase+512]
	assert.True(ok)
	assert.Len(data, 1536)
	assert.Equal(byte(1), data[0])
	assert.Equal(byte(2), data[512])
	assert.Equal(byte(3), data[1024])

	// Extends the tail.
	m.Poke(testBase+2048, 4)
	assert.Equal(1, m.SegmentCount())
	assert.Equal(byte(4), m.Peek(testBase+2048))

	// Extends the head.
	m.Poke(testBase+511, 5)
	assert.Equal(1, m.SegmentCount())
	segments = maps.Collect(m.Segments())
	assert.Len(segments[testBase], 2560)

	// Below base lands at the top of the offset space, which never merges
	// with offset zero.
	m.Poke(testBase-1, 6)
	assert.Equal(2, m.SegmentCount())
	assert.Equal(byte(6), m.Peek(testBase-1))
}

func TestMemory_Segments_Copy(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	m.Poke(testBase, 7)
	for _, data := range m.Segments() {
		data[0] = 0
	}
	assert.Equal(byte(7), m.Peek(testBase))
}

func TestMemory_Wrap(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)

	// Below base wraps to the top of the offset space.
	m.Poke(0, 0x42)
	assert.Equal(byte(0x42), m.Peek(0))
	assert.Equal(1, m.SegmentCount())

	// A value straddling the top of the address space wraps to zero.
	Write(m, ^uint64(0), word.U16(0x1234))
	assert.Equal(byte(0x34), m.Peek(^uint64(0)))
	assert.Equal(byte(0x12), m.Peek(0))
	assert.Equal(word.U16(0x1234), Read[word.U16](m, ^uint64(0)))
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	m.WriteBytes(testBase, []byte{1, 2, 3})
	m.Reset()
	assert.Equal(0, m.SegmentCount())
	assert.Equal([]byte{0, 0, 0}, m.ReadBytes(testBase, 3))
}

func TestRead_Write(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)

	Write(m, testBase+3, word.U32(0xDEADBEEF))
	assert.Equal([]byte{0xEF, 0xBE, 0xAD, 0xDE}, m.ReadBytes(testBase+3, 4))
	assert.Equal(word.U32(0xDEADBEEF), Read[word.U32](m, testBase+3))
	assert.Equal(word.U16(0xADBE), Read[word.U16](m, testBase+4))
	assert.Equal(word.U64(0xDEADBEEF), Read[word.U64](m, testBase+3))

	// Unaligned and spanning a block boundary.
	Write(m, testBase+510, word.NewU128(0x1111, 0x2222))
	assert.Equal(word.NewU128(0x1111, 0x2222), Read[word.U128](m, testBase+510))
	assert.Equal(1, m.SegmentCount())

	wide := word.NewU512Halves(word.NewU256(0xAA), word.NewU256(0xBB))
	Write(m, testBase+0x2000, wide)
	assert.Equal(wide, Read[word.U512](m, testBase+0x2000))
	assert.Equal(byte(0xBB), m.Peek(testBase+0x2000))
	assert.Equal(byte(0xAA), m.Peek(testBase+0x2000+32))
}

func TestReadVec_WriteVec(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)

	WriteVec(m, testBase, []word.U32{1, 2, 3, 4})
	assert.Equal([]word.U32{1, 2, 3, 4}, ReadVec[word.U32](m, testBase, 4))
	assert.Equal(word.U32(3), Read[word.U32](m, testBase+8))
	assert.Equal([]word.U64{0x0000000200000001, 0x0000000400000003}, ReadVec[word.U64](m, testBase, 2))

	floats := word.F32Lanes(1.5, -2.0)
	WriteVec(m, testBase+1, floats)
	assert.Equal([]float32{1.5, -2.0}, word.Float32s(ReadVec[word.U32](m, testBase+1, 2)))

	assert.Empty(ReadVec[word.U8](m, testBase, 0))
}

func FuzzMemory(f *testing.F) {
	f.Add(uint64(testBase), uint64(0x1234567890abcdef), uint16(0))
	f.Add(uint64(testBase+509), uint64(0xffffffffffffffff), uint16(4096))
	f.Add(^uint64(0), uint64(1), uint16(3))

	f.Fuzz(func(t *testing.T, addr uint64, value uint64, gap uint16) {
		assert := assert.New(t)

		m := NewMemory(testBase)
		Write(m, addr, word.U64(value))
		Write(m, addr+8+uint64(gap), word.U64(^value))

		assert.Equal(word.U64(value), Read[word.U64](m, addr))
		assert.Equal(word.U64(^value), Read[word.U64](m, addr+8+uint64(gap)))
		assert.LessOrEqual(m.SegmentCount(), 4)

		var total int
		for _, data := range m.Segments() {
			assert.Equal(0, len(data)%DEFAULT_GRANULARITY)
			total += len(data)
		}
		assert.LessOrEqual(total, 4*DEFAULT_GRANULARITY+int(gap))
	})
}

func TestReadVec_Reinterpret(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	WriteVec(m, testBase+0x40, []word.U64{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal([]word.U32{0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0},
		ReadVec[word.U32](m, testBase+0x40, 16))
}

func TestMemory_NegativeCount(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory(testBase)
	m.Poke(testBase, 0x42)

	assert.Empty(m.ReadBytes(testBase, -1))
	assert.Empty(ReadVec[word.U64](m, testBase, -8))
	assert.Equal(1, m.SegmentCount())
}
