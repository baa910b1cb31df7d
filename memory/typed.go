package memory

import (
	"github.com/ezrec/simdcpu/word"
)

// Read returns the little-endian value of type T stored at addr.
func Read[T word.Scalar[T]](m *Memory, addr uint64) (value T) {
	return value.FromLE(m.ReadBytes(addr, value.Size()))
}

// Write stores value at addr in little-endian order.
func Write[T word.Scalar[T]](m *Memory, addr uint64, value T) {
	buf := make([]byte, value.Size())
	value.PutLE(buf)
	m.WriteBytes(addr, buf)
}

// ReadVec returns 'count' consecutive values of type T starting at addr. A
// negative count reads nothing.
func ReadVec[T word.Scalar[T]](m *Memory, addr uint64, count int) (values []T) {
	size := uint64(word.SizeOf[T]())
	values = make([]T, max(count, 0))
	for n := range values {
		values[n] = Read[T](m, addr+uint64(n)*size)
	}
	return
}

// WriteVec stores values consecutively starting at addr.
func WriteVec[T word.Scalar[T]](m *Memory, addr uint64, values []T) {
	for n, value := range values {
		Write(m, addr+uint64(n)*uint64(value.Size()), value)
	}
}
