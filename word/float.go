package word

import "math"

// F32Lanes returns the IEEE-754 bit patterns of fs as 32-bit lanes.
func F32Lanes(fs ...float32) (out []U32) {
	out = make([]U32, len(fs))
	for n, f := range fs {
		out[n] = U32(math.Float32bits(f))
	}
	return
}

// Float32s reinterprets 32-bit lanes as IEEE-754 single precision values.
func Float32s(lanes []U32) (out []float32) {
	out = make([]float32, len(lanes))
	for n, v := range lanes {
		out[n] = math.Float32frombits(uint32(v))
	}
	return
}

// F64Lanes returns the IEEE-754 bit patterns of fs as 64-bit lanes.
func F64Lanes(fs ...float64) (out []U64) {
	out = make([]U64, len(fs))
	for n, f := range fs {
		out[n] = U64(math.Float64bits(f))
	}
	return
}

// Float64s reinterprets 64-bit lanes as IEEE-754 double precision values.
func Float64s(lanes []U64) (out []float64) {
	out = make([]float64, len(lanes))
	for n, v := range lanes {
		out[n] = math.Float64frombits(uint64(v))
	}
	return
}
