// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package snapshot captures a CPU state as JSON, restores it, and compares
// two captures.
package snapshot

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/ezrec/simdcpu/cpu"
	"github.com/ezrec/simdcpu/memory"
	"github.com/ezrec/simdcpu/register"
	"github.com/ezrec/simdcpu/word"
)

// Segment is one mapped memory range.
type Segment struct {
	Addr string `json:"addr"`
	Data string `json:"data"`
}

// State is a CPU state with every number as a hex string. Vector registers
// that are all zero are omitted.
type State struct {
	Base        string            `json:"base"`
	Granularity uint64            `json:"granularity"`
	GPR         map[string]string `json:"gpr"`
	RFLAGS      string            `json:"rflags"`
	RIP         string            `json:"rip"`
	Vector      map[string]string `json:"vector,omitempty"`
	Memory      []Segment         `json:"memory,omitempty"`
}

func hex64(value uint64) string {
	return fmt.Sprintf("%#x", value)
}

func parseHex64(field string, text string) (value uint64, err error) {
	value, err = strconv.ParseUint(strings.TrimPrefix(text, "0x"), 16, 64)
	if err != nil {
		err = ErrField{Field: field, Err: ErrHex}
	}
	return
}

// Capture records the complete state of a CPU.
func Capture(c *cpu.Cpu) (st *State) {
	st = &State{
		Base:        hex64(c.Memory.Base()),
		Granularity: c.Memory.Granularity(),
		GPR:         map[string]string{},
		RFLAGS:      hex64(c.GetFlagsValue(register.RFLAGS)),
		RIP:         hex64(c.GetIPValue(register.RIP)),
		Vector:      map[string]string{},
	}

	for family := register.GPR_A; family <= register.GPR_R15; family++ {
		name := family.Name()
		st.GPR[name.String()] = hex64(c.GetGPRValue(name))
	}

	for slot := range register.VECTOR_SLOTS {
		lanes, _ := register.GetBySections[word.U512](&c.Vector, register.ZMM, slot)
		if lanes[0] != (word.U512{}) {
			st.Vector[fmt.Sprintf("ZMM%d", slot)] = fmt.Sprintf("%#x", lanes[0].Big())
		}
	}

	for addr, data := range c.Memory.Segments() {
		st.Memory = append(st.Memory, Segment{
			Addr: hex64(addr),
			Data: hex.EncodeToString(data),
		})
	}

	return
}

// Restore replaces the state of a CPU with the captured state. On error
// the CPU is unchanged.
func (st *State) Restore(c *cpu.Cpu) (err error) {
	base, err := parseHex64("base", st.Base)
	if err != nil {
		return
	}

	mem, err := memory.NewMemoryGranularity(base, st.Granularity)
	if err != nil {
		err = ErrField{Field: "granularity", Err: err}
		return
	}
	mem.Verbose = c.Memory.Verbose

	var regs register.Registers

	for name, text := range st.GPR {
		reg, ok := register.ParseGPRName(name)
		if !ok || reg.Bits() != 64 || reg.String() != name {
			err = ErrField{Field: "gpr", Err: cpu.ErrName(name)}
			return
		}
		var value uint64
		value, err = parseHex64(name, text)
		if err != nil {
			return
		}
		regs.SetGPRValue(reg, value)
	}

	value, err := parseHex64("rflags", st.RFLAGS)
	if err != nil {
		return
	}
	regs.SetFlagsValue(register.RFLAGS, value)

	value, err = parseHex64("rip", st.RIP)
	if err != nil {
		return
	}
	regs.SetIPValue(register.RIP, value)

	for name, text := range st.Vector {
		slot, perr := strconv.Atoi(strings.TrimPrefix(name, "ZMM"))
		if perr != nil || name != fmt.Sprintf("ZMM%d", slot) {
			err = ErrField{Field: "vector", Err: cpu.ErrName(name)}
			return
		}
		b, ok := new(big.Int).SetString(strings.TrimPrefix(text, "0x"), 16)
		if !ok || b.Sign() < 0 || b.BitLen() > register.VECTOR_BITS {
			err = ErrField{Field: name, Err: ErrHex}
			return
		}
		err = register.SetBySections(&regs.Vector, register.ZMM, slot, []word.U512{word.U512{}.FromBig(b)})
		if err != nil {
			err = ErrField{Field: name, Err: err}
			return
		}
	}

	for _, seg := range st.Memory {
		var addr uint64
		addr, err = parseHex64("memory", seg.Addr)
		if err != nil {
			return
		}
		data, herr := hex.DecodeString(seg.Data)
		if herr != nil {
			err = ErrField{Field: "memory", Err: ErrHex}
			return
		}
		mem.WriteBytes(addr, data)
	}

	c.Registers = regs
	c.Memory = mem

	return
}

// Marshal encodes the state as indented JSON.
func (st *State) Marshal() (data []byte, err error) {
	return json.MarshalIndent(st, "", "  ")
}

// Unmarshal decodes a JSON state.
func Unmarshal(data []byte) (st *State, err error) {
	st = &State{}
	err = json.Unmarshal(data, st)
	if err != nil {
		st = nil
	}
	return
}

// Diff compares two JSON states. If they differ, report describes the
// differences.
func Diff(a, b []byte) (same bool, report string, err error) {
	differ := gojsondiff.New()
	delta, err := differ.Compare(a, b)
	if err != nil {
		return
	}

	if !delta.Modified() {
		same = true
		return
	}

	var left map[string]any
	err = json.Unmarshal(a, &left)
	if err != nil {
		return
	}

	cfg := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
	}
	report, err = formatter.NewAsciiFormatter(left, cfg).Format(delta)
	return
}
