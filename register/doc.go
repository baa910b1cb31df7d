// Package register holds the architectural register state of an x86-64 CPU
// with AVX-512 vector registers.
//
// Every register is a single physical store with several overlapping
// views. General purpose registers have 64, 32, 16 and 8-bit names. Vector
// registers are 512 bits wide and can be addressed as XMM, YMM or ZMM, by
// single bit, by equal sized sections, or by an arbitrary "[hi:lo]" bit
// range. The flags register and instruction pointer have 64, 32 and 16-bit
// names.
package register
