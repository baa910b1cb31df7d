// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"fmt"
	"iter"
	"log"
	"math/bits"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// DEFAULT_GRANULARITY is the block size allocated on a write to unmapped space.
const DEFAULT_GRANULARITY = 512

// segment is a contiguous run of mapped bytes starting at an offset from base.
type segment struct {
	start uint64
	data  []byte
}

// end is the first offset past the segment, and false if the segment runs
// to the top of the offset space.
func (seg *segment) end() (offset uint64, ok bool) {
	offset = seg.start + uint64(len(seg.data))
	ok = offset > seg.start
	return
}

// Memory is a flat, zero initialized address space starting at a base
// address. Addresses wrap modulo 2^64.
type Memory struct {
	Verbose bool // Set to enable verbose logging.

	base        uint64
	granularity uint64
	segments    *treemap.Map // Segment start offset to *segment.
}

// NewMemory creates an empty memory with the default granularity.
func NewMemory(base uint64) (m *Memory) {
	m, _ = NewMemoryGranularity(base, DEFAULT_GRANULARITY)
	return
}

// NewMemoryGranularity creates an empty memory that allocates in blocks of
// 'granularity' bytes.
func NewMemoryGranularity(base uint64, granularity uint64) (m *Memory, err error) {
	if bits.OnesCount64(granularity) != 1 {
		err = fmt.Errorf("%w: %d", ErrGranularity, granularity)
		return
	}

	m = &Memory{
		base:        base,
		granularity: granularity,
		segments:    treemap.NewWith(utils.UInt64Comparator),
	}

	return
}

// Base returns the address of offset zero.
func (m *Memory) Base() uint64 {
	return m.base
}

// Granularity returns the allocation block size.
func (m *Memory) Granularity() uint64 {
	return m.granularity
}

// SegmentCount returns the number of disjoint mapped segments.
func (m *Memory) SegmentCount() int {
	return m.segments.Size()
}

// Reset unmaps all memory.
func (m *Memory) Reset() {
	m.segments.Clear()
}

// find returns the segment containing offset, if any.
func (m *Memory) find(offset uint64) (seg *segment, ok bool) {
	_, value := m.segments.Floor(offset)
	if value == nil {
		return
	}

	seg = value.(*segment)
	if offset-seg.start >= uint64(len(seg.data)) {
		seg = nil
		return
	}

	ok = true
	return
}

// Peek returns the byte at addr, or zero if it has never been written.
func (m *Memory) Peek(addr uint64) (value byte) {
	offset := addr - m.base
	seg, ok := m.find(offset)
	if ok {
		value = seg.data[offset-seg.start]
	}
	return
}

// Poke stores a byte at addr, mapping a new block if needed.
func (m *Memory) Poke(addr uint64, value byte) {
	offset := addr - m.base
	seg, ok := m.find(offset)
	if !ok {
		seg = m.allocate(offset)
	}
	seg.data[offset-seg.start] = value
}

// allocate maps the aligned block containing offset, merging it into
// neighbouring segments, and returns the segment holding offset.
func (m *Memory) allocate(offset uint64) (seg *segment) {
	seg = &segment{
		start: offset &^ (m.granularity - 1),
		data:  make([]byte, m.granularity),
	}

	if m.Verbose {
		log.Printf("memory: map %#x+%#x", m.base+seg.start, m.granularity)
	}

	if seg.start > 0 {
		_, value := m.segments.Floor(seg.start - 1)
		if value != nil {
			pred := value.(*segment)
			if end, ok := pred.end(); ok && end == seg.start {
				if m.Verbose {
					log.Printf("memory: coalesce %#x+%#x with predecessor %#x", m.base+seg.start, len(seg.data), m.base+pred.start)
				}
				pred.data = append(pred.data, seg.data...)
				seg = pred
			}
		}
	}

	if end, ok := seg.end(); ok {
		value, found := m.segments.Get(end)
		if found {
			succ := value.(*segment)
			if m.Verbose {
				log.Printf("memory: coalesce %#x+%#x with successor %#x", m.base+seg.start, len(seg.data), m.base+succ.start)
			}
			seg.data = append(seg.data, succ.data...)
			m.segments.Remove(succ.start)
		}
	}

	m.segments.Put(seg.start, seg)

	return
}

// ReadBytes returns 'count' bytes starting at addr. A negative count reads
// nothing.
func (m *Memory) ReadBytes(addr uint64, count int) (data []byte) {
	data = make([]byte, max(count, 0))
	for n := range data {
		data[n] = m.Peek(addr + uint64(n))
	}
	return
}

// WriteBytes stores data starting at addr.
func (m *Memory) WriteBytes(addr uint64, data []byte) {
	for n, value := range data {
		m.Poke(addr+uint64(n), value)
	}
}

// Segments iterates over the mapped segments in ascending offset order,
// yielding the absolute address and a copy of the contents.
func (m *Memory) Segments() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		it := m.segments.Iterator()
		for it.Next() {
			seg := it.Value().(*segment)
			data := make([]byte, len(seg.data))
			copy(data, seg.data)
			if !yield(m.base+seg.start, data) {
				return
			}
		}
	}
}

// String summarizes the mapped segments.
func (m *Memory) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "base %#x granularity %#x segments %d\n", m.base, m.granularity, m.SegmentCount())
	for addr, data := range m.Segments() {
		fmt.Fprintf(&sb, "  %#016x..%#016x\n", addr, addr+uint64(len(data))-1)
	}
	return sb.String()
}
