package script

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/simdcpu/cpu"
	"github.com/ezrec/simdcpu/memory"
	"github.com/ezrec/simdcpu/register"
	"github.com/ezrec/simdcpu/word"
)

func newScript() (sc *Script, out *bytes.Buffer) {
	out = &bytes.Buffer{}
	sc = NewScript(cpu.NewCpu(cpu.DEFAULT_BASE))
	sc.Output = out
	return
}

// uintOf converts a Starlark int result for comparison.
func uintOf(value starlark.Value) (v uint64) {
	i, ok := value.(starlark.Int)
	if ok {
		v, _ = i.Uint64()
	}
	return
}

func TestScript_GPR(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	err := sc.Exec("gpr.star", `
set_gpr("EAX", 0xFFFFFFFF)
set_gpr("al", 0x00)
rax = gpr("RAX")
`)
	assert.NoError(err)
	assert.Equal(uint64(0xFFFFFF00), sc.Cpu.GetGPRValue(register.RAX))
	assert.Equal(uint64(0xFFFFFF00), uintOf(sc.Globals()["rax"]))

	value, err := sc.Eval("gpr('AH')")
	assert.NoError(err)
	assert.Equal(uint64(0xFF), uintOf(value))

	_, err = sc.Eval("gpr('XAX')")
	assert.ErrorIs(err, ErrName)

	err = sc.Exec("neg.star", `set_gpr("RAX", -1)`)
	assert.ErrorIs(err, ErrNegative)
}

func TestScript_FlagsIP(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	err := sc.Exec("flags.star", `
set_flags("RFLAGS", 0xFFFF0000)
set_flags("FLAGS", 0x0202)
set_ip("RIP", 0x401000)
set_ip("IP", 0x2000)
`)
	assert.NoError(err)
	assert.Equal(uint64(0xFFFF0202), sc.Cpu.GetFlagsValue(register.RFLAGS))
	assert.Equal(uint64(0x402000), sc.Cpu.GetIPValue(register.RIP))

	value, err := sc.Eval("flags()")
	assert.NoError(err)
	assert.Equal(uint64(0xFFFF0202), uintOf(value))

	value, err = sc.Eval("ip('EIP')")
	assert.NoError(err)
	assert.Equal(uint64(0x402000), uintOf(value))
}

func TestScript_Vector(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	err := sc.Exec("vector.star", `
set_sections("XMM", 2, 32, [0x80000000, 0x80000000, 0x80000000, 0x80000000])
lanes = sections("ZMM", 2, 64)
set_bit("ZMM", 3, 511, True)
top = bit("ZMM", 3, 511)
set_select(3, "[31:0]", 0x123456789)
low = select(3, "[31:0]", 32)
hi = select(3, "[MAX:256]", bits=256)
`)
	assert.NoError(err)

	globals := sc.Globals()
	lanes, ok := globals["lanes"].(*starlark.List)
	assert.True(ok)
	assert.Equal(8, lanes.Len())
	assert.Equal(uint64(0x8000000080000000), uintOf(lanes.Index(0)))
	assert.Equal(uint64(0), uintOf(lanes.Index(2)))

	assert.Equal(starlark.True, globals["top"])
	assert.Equal(uint64(0x23456789), uintOf(globals["low"]))

	expect, _ := register.GetBySelector[word.U256](&sc.Cpu.Vector, 3, "[MAX:256]")
	hi, ok := globals["hi"].(starlark.Int)
	assert.True(ok)
	assert.Equal(0, expect.Big().Cmp(hi.BigInt()))
	assert.NotEqual(0, hi.BigInt().Sign())

	got, _ := register.GetBySections[word.U32](&sc.Cpu.Vector, register.XMM, 2)
	assert.Equal([]word.U32{0x80000000, 0x80000000, 0x80000000, 0x80000000}, got)

	_, err = sc.Eval(`clear(3) or bit("ZMM", 3, 511)`)
	assert.NoError(err)
	value, _ := sc.Cpu.GetBit(register.ZMM, 3, 511)
	assert.False(value)
}

func TestScript_Vector_Errors(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()

	table := []struct {
		expr string
		err  error
	}{
		{`set_sections("XMM", 0, 32, [1, 2, 3])`, register.ErrSectionWidth},
		{`set_sections("XMM", 0, 12, [1])`, ErrBits},
		{`set_sections("QMM", 0, 32, [1, 2, 3, 4])`, ErrWidth},
		{`set_sections("XMM", 0, 32, [1, 2, "x", 4])`, ErrNotInt},
		{`sections("XMM", 16, 32)`, register.ErrSlot},
		{`bit("XMM", 0, 128)`, register.ErrBitPosition},
		{`bit("XMM", 0, -1)`, register.ErrBitPosition},
		{`set_bit("YMM", 99, 0, True)`, register.ErrSlot},
		{`select(0, "[32:0]", 32)`, register.ErrSelectorTooWide},
		{`select(0, "[x:0]")`, register.ErrSelectorSyntax},
		{`set_select(0, "[0:1]", 1)`, register.ErrSelectorSyntax},
		{`clear(-1)`, register.ErrSlot},
	}

	for _, entry := range table {
		_, err := sc.Eval(entry.expr)
		assert.ErrorIs(err, entry.err, entry.expr)

		var builtin ErrBuiltin
		assert.True(errors.As(err, &builtin), entry.expr)
	}
}

func TestScript_Memory(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	err := sc.Exec("memory.star", `
base = 0x400000
write_vec(base, 64, [0, 1, 2, 3, 4, 5, 6, 7])
halves = read_vec(base, 32, 16)
write(base + 0x1000, 128, (1 << 127) | 0xAB)
wide = read(base + 0x1000, 128)
write(base + 0x2000, 32, f32_bits(1.5))
write(base + 0x2008, 64, f64_bits(-2))
`)
	assert.NoError(err)

	globals := sc.Globals()
	halves, ok := globals["halves"].(*starlark.List)
	assert.True(ok)
	assert.Equal(16, halves.Len())
	for n := range 16 {
		expect := 0
		if n%2 == 0 {
			expect = n / 2
		}
		assert.Equal(uint64(expect), uintOf(halves.Index(n)))
	}

	wide, ok := globals["wide"].(starlark.Int)
	assert.True(ok)
	assert.Equal(word.NewU128(0x8000000000000000, 0xAB).Big().String(), wide.BigInt().String())

	m := sc.Cpu.Memory
	assert.Equal([]float32{1.5}, word.Float32s(memory.ReadVec[word.U32](m, 0x402000, 1)))
	assert.Equal([]float64{-2}, word.Float64s(memory.ReadVec[word.U64](m, 0x402008, 1)))

	_, err = sc.Eval("read(0x400000, 7)")
	assert.ErrorIs(err, ErrBits)
	_, err = sc.Eval("read_vec(0x400000, 8, -1)")
	assert.ErrorIs(err, ErrNegative)
}

func TestScript_Dump(t *testing.T) {
	assert := assert.New(t)

	sc, out := newScript()
	err := sc.Exec("dump.star", `
set_gpr("RDX", 0x1234)
print("hello")
dump()
`)
	assert.NoError(err)
	assert.Contains(out.String(), "hello\n")
	assert.Contains(out.String(), "   RDX: 0000_0000_0000_1234")
}

func TestScript_Globals(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	assert.NoError(sc.Exec("a.star", "x = 1"))
	assert.NoError(sc.Exec("b.star", "y = x + 1"))

	value, err := sc.Eval("x + y")
	assert.NoError(err)
	assert.Equal(uint64(3), uintOf(value))

	// Builtins remain available alongside globals.
	names := slices.Sorted(maps.Keys(sc.Builtins()))
	assert.Equal([]string{
		"bit", "checkpoint", "clear", "dump",
		"f32_bits", "f64_bits", "flags", "gpr",
		"ip", "read", "read_vec", "rollback",
		"sections", "select", "set_bit", "set_flags",
		"set_gpr", "set_ip", "set_sections", "set_select",
		"write", "write_vec",
	}, names)
}

func TestScript_FloatBits(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()

	value, err := sc.Eval("f32_bits(1.0)")
	assert.NoError(err)
	assert.Equal(uint64(0x3f800000), uintOf(value))

	value, err = sc.Eval("f64_bits(1)")
	assert.NoError(err)
	assert.Equal(uint64(0x3ff0000000000000), uintOf(value))

	_, err = sc.Eval("f32_bits('one')")
	assert.ErrorIs(err, ErrNotNumber)
}

func TestScript_Checkpoint(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newScript()
	err := sc.Exec("checkpoint.star", `
set_gpr("RAX", 1)
write(0x00400010, 8, 0xAA)
depth = checkpoint()
set_gpr("RAX", 2)
set_bit("ZMM", 3, 100, True)
write(0x00500000, 8, 0x55)
left = rollback()
`)
	assert.NoError(err)
	assert.Equal(uint64(1), uintOf(sc.Globals()["depth"]))
	assert.Equal(uint64(0), uintOf(sc.Globals()["left"]))
	assert.Equal(uint64(1), sc.Cpu.GetGPRValue(register.RAX))
	assert.Equal(1, sc.Cpu.Memory.SegmentCount())

	bit, ok := sc.Cpu.GetBit(register.ZMM, 3, 100)
	assert.True(ok)
	assert.False(bit)

	_, err = sc.Eval("rollback()")
	assert.ErrorIs(err, ErrCheckpointEmpty)

	for range 16 {
		_, err = sc.Eval("checkpoint()")
		assert.NoError(err)
	}
	_, err = sc.Eval("checkpoint()")
	assert.ErrorIs(err, ErrCheckpointFull)
}
