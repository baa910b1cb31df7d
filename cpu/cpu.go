// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/ezrec/simdcpu/internal"
	"github.com/ezrec/simdcpu/memory"
	"github.com/ezrec/simdcpu/register"
)

// DEFAULT_BASE is the memory base address of a new CPU.
const DEFAULT_BASE = 0x00400000

// Cpu is the architectural state of one core.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	register.Registers                // Register file.
	Memory             *memory.Memory // Flat memory.
}

// NewCpu creates a CPU with zeroed registers and empty memory at 'base'.
func NewCpu(base uint64) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: memory.NewMemory(base),
	}

	return
}

// Reset zeroes all registers and unmaps all memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Memory.Reset()
}

// Names iterates over the class and name of every scalar register view and
// every vector width.
func (cpu *Cpu) Names() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		internal.IterSeqLabel("gpr", internal.IterSeqMap(register.GPRNames(), register.GPRName.String)),
		internal.IterSeqLabel("flags", internal.IterSeqMap(slices.Values([]register.FLAGSName{
			register.RFLAGS, register.EFLAGS, register.FLAGS,
		}), register.FLAGSName.String)),
		internal.IterSeqLabel("ip", internal.IterSeqMap(slices.Values([]register.IPName{
			register.RIP, register.EIP, register.IP,
		}), register.IPName.String)),
		internal.IterSeqLabel("vector", internal.IterSeqMap(slices.Values([]register.VecRegName{
			register.XMM, register.YMM, register.ZMM,
		}), register.VecRegName.String)),
	)
}

// Value returns a general purpose, flags or instruction pointer register
// view by name.
func (cpu *Cpu) Value(name string) (value uint64, err error) {
	if gpr, ok := register.ParseGPRName(name); ok {
		value = cpu.GetGPRValue(gpr)
	} else if flags, ok := register.ParseFLAGSName(name); ok {
		value = cpu.GetFlagsValue(flags)
	} else if ip, ok := register.ParseIPName(name); ok {
		value = cpu.GetIPValue(ip)
	} else {
		err = ErrName(name)
	}

	return
}

// SetValue writes a general purpose, flags or instruction pointer register
// view by name.
func (cpu *Cpu) SetValue(name string, value uint64) (err error) {
	if gpr, ok := register.ParseGPRName(name); ok {
		cpu.SetGPRValue(gpr, value)
	} else if flags, ok := register.ParseFLAGSName(name); ok {
		cpu.SetFlagsValue(flags, value)
	} else if ip, ok := register.ParseIPName(name); ok {
		cpu.SetIPValue(ip, value)
	} else {
		err = ErrName(name)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %v = %#x", strings.ToUpper(name), value)
	}

	return
}

// hex64 formats a 64-bit value as four groups of four hex digits.
func hex64(val uint64) string {
	return fmt.Sprintf("%04X_%04X_%04X_%04X", val>>48, (val>>32)&0xffff, (val>>16)&0xffff, val&0xffff)
}

// vectorText formats a vector register most significant limb first, or
// returns false if it is all zero.
func (cpu *Cpu) vectorText(slot int) (text string, ok bool) {
	words, _ := cpu.Vector.Words(slot)
	var parts []string
	for n := len(words) - 1; n >= 0; n-- {
		if words[n] != 0 {
			ok = true
		}
		parts = append(parts, fmt.Sprintf("%016X", words[n]))
	}
	text = strings.Join(parts, "_")
	return
}

// String returns the current CPU state as a string. Vector registers that
// are all zero are omitted.
func (cpu *Cpu) String() (text string) {
	for family := register.GPR_A; family <= register.GPR_R15; family++ {
		name := family.Name()
		text += fmt.Sprintf("% 6s: %v\n", name, hex64(cpu.GetGPRValue(name)))
	}
	text += fmt.Sprintf("% 6s: %v\n", register.RFLAGS, hex64(cpu.GetFlagsValue(register.RFLAGS)))
	text += fmt.Sprintf("% 6s: %v\n", register.RIP, hex64(cpu.GetIPValue(register.RIP)))

	for slot := range register.VECTOR_SLOTS {
		strval, ok := cpu.vectorText(slot)
		if ok {
			text += fmt.Sprintf("% 6s: %v\n", fmt.Sprintf("ZMM%d", slot), strval)
		}
	}

	text += fmt.Sprintf("% 6s: %v", "memory", cpu.Memory)

	return
}

// Tree returns the CPU state as a tree, for display.
func (cpu *Cpu) Tree() treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("cpu @ %#x", cpu.Memory.Base()))

	gpr := tree.AddBranch("gpr")
	for family := register.GPR_A; family <= register.GPR_R15; family++ {
		name := family.Name()
		gpr.AddMetaNode(name.String(), hex64(cpu.GetGPRValue(name)))
	}

	tree.AddMetaNode(register.RFLAGS.String(), hex64(cpu.GetFlagsValue(register.RFLAGS)))
	tree.AddMetaNode(register.RIP.String(), hex64(cpu.GetIPValue(register.RIP)))

	vector := tree.AddBranch("vector")
	for slot := range register.VECTOR_SLOTS {
		strval, ok := cpu.vectorText(slot)
		if ok {
			vector.AddMetaNode(fmt.Sprintf("ZMM%d", slot), strval)
		}
	}

	mem := tree.AddMetaBranch(cpu.Memory.SegmentCount(), "memory")
	for addr, data := range cpu.Memory.Segments() {
		mem.AddNode(fmt.Sprintf("%#016x..%#016x", addr, addr+uint64(len(data))-1))
	}

	return tree
}
