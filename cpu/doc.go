// Package cpu is the architectural state of one emulated x86-64 core: its
// register file and its flat memory.
//
// An instruction execution layer decodes opcodes elsewhere and applies their
// effects through the register and memory packages; this package owns the
// instances, resets them, and renders them for inspection.
package cpu
