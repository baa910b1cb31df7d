package register

// Registers is the complete register file of one CPU.
type Registers struct {
	Vector VectorBank         // Vector registers.
	GPR    GPRBank            // General purpose registers.
	Flags  FlagsRegister      // Flags register.
	IP     InstructionPointer // Instruction pointer.
}

// Reset zeroes all registers.
func (regs *Registers) Reset() {
	regs.Vector.Reset()
	regs.GPR.Reset()
	regs.Flags = 0
	regs.IP = 0
}

// GetGPRValue returns the named general purpose register view.
func (regs *Registers) GetGPRValue(name GPRName) uint64 {
	return regs.GPR.Value(name)
}

// SetGPRValue writes the named general purpose register view.
func (regs *Registers) SetGPRValue(name GPRName, value uint64) {
	regs.GPR.SetValue(name, value)
}

// GetFlagsValue returns the named flags register view.
func (regs *Registers) GetFlagsValue(name FLAGSName) uint64 {
	return regs.Flags.Value(name)
}

// SetFlagsValue writes the named flags register view.
func (regs *Registers) SetFlagsValue(name FLAGSName, value uint64) {
	regs.Flags.SetValue(name, value)
}

// GetIPValue returns the named instruction pointer view.
func (regs *Registers) GetIPValue(name IPName) uint64 {
	return regs.IP.Value(name)
}

// SetIPValue writes the named instruction pointer view.
func (regs *Registers) SetIPValue(name IPName, value uint64) {
	regs.IP.SetValue(name, value)
}

// GetBit returns a single vector register bit.
func (regs *Registers) GetBit(width VecRegName, slot int, pos uint) (bool, bool) {
	return regs.Vector.GetBit(width, slot, pos)
}

// SetBit sets a single vector register bit.
func (regs *Registers) SetBit(width VecRegName, slot int, pos uint, value bool) error {
	return regs.Vector.SetBit(width, slot, pos, value)
}

// Clear zeroes a vector register.
func (regs *Registers) Clear(slot int) error {
	return regs.Vector.Clear(slot)
}
