package register

import (
	"golang.org/x/arch/x86/x86asm"
)

var _x86GPR = map[x86asm.Reg]GPRName{
	x86asm.RAX: RAX,
	x86asm.RBX: RBX,
	x86asm.RCX: RCX,
	x86asm.RDX: RDX,
	x86asm.RSI: RSI,
	x86asm.RDI: RDI,
	x86asm.RBP: RBP,
	x86asm.RSP: RSP,
	x86asm.R8:  R8,
	x86asm.R9:  R9,
	x86asm.R10: R10,
	x86asm.R11: R11,
	x86asm.R12: R12,
	x86asm.R13: R13,
	x86asm.R14: R14,
	x86asm.R15: R15,

	x86asm.EAX:  EAX,
	x86asm.EBX:  EBX,
	x86asm.ECX:  ECX,
	x86asm.EDX:  EDX,
	x86asm.ESI:  ESI,
	x86asm.EDI:  EDI,
	x86asm.EBP:  EBP,
	x86asm.ESP:  ESP,
	x86asm.R8L:  R8D,
	x86asm.R9L:  R9D,
	x86asm.R10L: R10D,
	x86asm.R11L: R11D,
	x86asm.R12L: R12D,
	x86asm.R13L: R13D,
	x86asm.R14L: R14D,
	x86asm.R15L: R15D,

	x86asm.AX:   AX,
	x86asm.BX:   BX,
	x86asm.CX:   CX,
	x86asm.DX:   DX,
	x86asm.SI:   SI,
	x86asm.DI:   DI,
	x86asm.BP:   BP,
	x86asm.SP:   SP,
	x86asm.R8W:  R8W,
	x86asm.R9W:  R9W,
	x86asm.R10W: R10W,
	x86asm.R11W: R11W,
	x86asm.R12W: R12W,
	x86asm.R13W: R13W,
	x86asm.R14W: R14W,
	x86asm.R15W: R15W,

	x86asm.AH:   AH,
	x86asm.BH:   BH,
	x86asm.CH:   CH,
	x86asm.DH:   DH,
	x86asm.AL:   AL,
	x86asm.BL:   BL,
	x86asm.CL:   CL,
	x86asm.DL:   DL,
	x86asm.SIB:  SIL,
	x86asm.DIB:  DIL,
	x86asm.BPB:  BPL,
	x86asm.SPB:  SPL,
	x86asm.R8B:  R8B,
	x86asm.R9B:  R9B,
	x86asm.R10B: R10B,
	x86asm.R11B: R11B,
	x86asm.R12B: R12B,
	x86asm.R13B: R13B,
	x86asm.R14B: R14B,
	x86asm.R15B: R15B,
}

var _x86IP = map[x86asm.Reg]IPName{
	x86asm.RIP: RIP,
	x86asm.EIP: EIP,
	x86asm.IP:  IP,
}

// GPRFromX86 maps a decoded general purpose register operand to its name.
func GPRFromX86(reg x86asm.Reg) (name GPRName, ok bool) {
	name, ok = _x86GPR[reg]
	return
}

// IPFromX86 maps a decoded instruction pointer operand to its name.
func IPFromX86(reg x86asm.Reg) (name IPName, ok bool) {
	name, ok = _x86IP[reg]
	return
}

// SlotFromX86 maps a decoded X0 to X15 operand to a vector register slot.
// The decoder only reports XMM operands, so the width is always XMM.
func SlotFromX86(reg x86asm.Reg) (slot int, ok bool) {
	if reg < x86asm.X0 || reg > x86asm.X15 {
		return
	}

	slot = int(reg - x86asm.X0)
	ok = true
	return
}
