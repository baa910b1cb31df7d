// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"math/big"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simdcpu/cpu"
	"github.com/ezrec/simdcpu/register"
	"github.com/ezrec/simdcpu/snapshot"
	"github.com/ezrec/simdcpu/word"
)

// Script is a Starlark environment bound to one CPU.
type Script struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of print() and dump(), os.Stdout if nil.

	Cpu *cpu.Cpu // CPU state the builtins operate on.

	globals     starlark.StringDict // Globals kept between Exec calls.
	checkpoints snapshot.Stack      // States saved by checkpoint().
}

// NewScript creates a Starlark environment over a CPU.
func NewScript(c *cpu.Cpu) (sc *Script) {
	sc = &Script{
		Cpu:     c,
		globals: starlark.StringDict{},
	}

	return
}

// Globals returns the global variables defined so far.
func (sc *Script) Globals() starlark.StringDict {
	return maps.Clone(sc.globals)
}

func (sc *Script) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			out := sc.Output
			if out == nil {
				out = os.Stdout
			}
			fmt.Fprintln(out, msg)
		},
	}
}

// predeclared returns the builtins overlaid with the current globals.
func (sc *Script) predeclared() (env starlark.StringDict) {
	env = sc.Builtins()
	maps.Copy(env, sc.globals)
	return
}

// Exec runs a Starlark program. Globals it defines remain visible to
// later calls of Exec and Eval.
func (sc *Script) Exec(filename string, src any) (err error) {
	if sc.Verbose {
		log.Printf("script: exec %v", filename)
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
		While:           true,
	}
	globals, err := starlark.ExecFileOptions(&opts, sc.thread(filename), filename, src, sc.predeclared())
	maps.Copy(sc.globals, globals)

	return
}

// Eval evaluates a single Starlark expression.
func (sc *Script) Eval(expr string) (value starlark.Value, err error) {
	if sc.Verbose {
		log.Printf("script: eval %v", expr)
	}

	opts := syntax.FileOptions{}
	value, err = starlark.EvalOptions(&opts, sc.thread("eval"), "eval", expr, sc.predeclared())
	return
}

// Builtins returns the CPU state builtins.
func (sc *Script) Builtins() starlark.StringDict {
	builtins := map[string]func(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error){
		"gpr":          sc.gpr,
		"set_gpr":      sc.setGPR,
		"flags":        sc.flags,
		"set_flags":    sc.setFlags,
		"ip":           sc.ip,
		"set_ip":       sc.setIP,
		"bit":          sc.bit,
		"set_bit":      sc.setBit,
		"clear":        sc.clear,
		"sections":     sc.sections,
		"set_sections": sc.setSections,
		"select":       sc.selectBits,
		"set_select":   sc.setSelectBits,
		"read":         sc.read,
		"write":        sc.write,
		"read_vec":     sc.readVec,
		"write_vec":    sc.writeVec,
		"f32_bits":     sc.f32Bits,
		"f64_bits":     sc.f64Bits,
		"dump":         sc.dump,
		"checkpoint":   sc.checkpoint,
		"rollback":     sc.rollback,
	}

	dict := starlark.StringDict{}
	for name, fn := range builtins {
		dict[name] = starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
			value, err = fn(args, kwargs)
			if err != nil {
				err = ErrBuiltin{Name: b.Name(), Err: err}
			}
			return
		})
	}

	return dict
}

// toBig converts a non-negative Starlark int.
func toBig(value starlark.Int) (b *big.Int, err error) {
	b = value.BigInt()
	if b.Sign() < 0 {
		err = ErrNegative
	}
	return
}

// toUint64 converts a Starlark int, keeping the low 64 bits.
func toUint64(value starlark.Int) (v uint64, err error) {
	b, err := toBig(value)
	if err != nil {
		return
	}
	v = new(big.Int).And(b, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	return
}

func toList(values []*big.Int) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeBigInt(value)
	}
	return starlark.NewList(elems)
}

func fromList(list *starlark.List) (values []*big.Int, err error) {
	values = make([]*big.Int, list.Len())
	for n := range values {
		value, ok := list.Index(n).(starlark.Int)
		if !ok {
			err = fmt.Errorf("%w: element %d is %v", ErrNotInt, n, list.Index(n).Type())
			return
		}
		values[n], err = toBig(value)
		if err != nil {
			return
		}
	}
	return
}

func vecWidth(name string) (width register.VecRegName, err error) {
	width, ok := register.ParseVecRegName(name)
	if !ok {
		err = ErrWidth
	}
	return
}

func (sc *Script) gpr(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	err = starlark.UnpackPositionalArgs("gpr", args, kwargs, 1, &name)
	if err != nil {
		return
	}
	reg, ok := register.ParseGPRName(name)
	if !ok {
		err = ErrName
		return
	}
	value = starlark.MakeUint64(sc.Cpu.GetGPRValue(reg))
	return
}

func (sc *Script) setGPR(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var in starlark.Int
	err = starlark.UnpackPositionalArgs("set_gpr", args, kwargs, 2, &name, &in)
	if err != nil {
		return
	}
	reg, ok := register.ParseGPRName(name)
	if !ok {
		err = ErrName
		return
	}
	v, err := toUint64(in)
	if err != nil {
		return
	}
	sc.Cpu.SetGPRValue(reg, v)
	value = starlark.None
	return
}

func (sc *Script) flags(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	name := register.RFLAGS.String()
	err = starlark.UnpackPositionalArgs("flags", args, kwargs, 0, &name)
	if err != nil {
		return
	}
	reg, ok := register.ParseFLAGSName(name)
	if !ok {
		err = ErrName
		return
	}
	value = starlark.MakeUint64(sc.Cpu.GetFlagsValue(reg))
	return
}

func (sc *Script) setFlags(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var in starlark.Int
	err = starlark.UnpackPositionalArgs("set_flags", args, kwargs, 2, &name, &in)
	if err != nil {
		return
	}
	reg, ok := register.ParseFLAGSName(name)
	if !ok {
		err = ErrName
		return
	}
	v, err := toUint64(in)
	if err != nil {
		return
	}
	sc.Cpu.SetFlagsValue(reg, v)
	value = starlark.None
	return
}

func (sc *Script) ip(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	name := register.RIP.String()
	err = starlark.UnpackPositionalArgs("ip", args, kwargs, 0, &name)
	if err != nil {
		return
	}
	reg, ok := register.ParseIPName(name)
	if !ok {
		err = ErrName
		return
	}
	value = starlark.MakeUint64(sc.Cpu.GetIPValue(reg))
	return
}

func (sc *Script) setIP(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var in starlark.Int
	err = starlark.UnpackPositionalArgs("set_ip", args, kwargs, 2, &name, &in)
	if err != nil {
		return
	}
	reg, ok := register.ParseIPName(name)
	if !ok {
		err = ErrName
		return
	}
	v, err := toUint64(in)
	if err != nil {
		return
	}
	sc.Cpu.SetIPValue(reg, v)
	value = starlark.None
	return
}

func (sc *Script) bit(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var slot, pos int
	err = starlark.UnpackArgs("bit", args, kwargs, "width", &name, "slot", &slot, "pos", &pos)
	if err != nil {
		return
	}
	width, err := vecWidth(name)
	if err != nil {
		return
	}
	if pos < 0 {
		err = register.ErrBitPosition
		return
	}
	err = register.Check(width, slot, uint(pos))
	if err != nil {
		return
	}
	set, _ := sc.Cpu.GetBit(width, slot, uint(pos))
	value = starlark.Bool(set)
	return
}

func (sc *Script) setBit(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var slot, pos int
	var set bool
	err = starlark.UnpackArgs("set_bit", args, kwargs, "width", &name, "slot", &slot, "pos", &pos, "value", &set)
	if err != nil {
		return
	}
	width, err := vecWidth(name)
	if err != nil {
		return
	}
	if pos < 0 {
		err = register.ErrBitPosition
		return
	}
	err = sc.Cpu.SetBit(width, slot, uint(pos), set)
	if err != nil {
		return
	}
	value = starlark.None
	return
}

func (sc *Script) clear(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var slot int
	err = starlark.UnpackPositionalArgs("clear", args, kwargs, 1, &slot)
	if err != nil {
		return
	}
	err = sc.Cpu.Clear(slot)
	if err != nil {
		return
	}
	value = starlark.None
	return
}

func (sc *Script) sections(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var slot, bits int
	err = starlark.UnpackArgs("sections", args, kwargs, "width", &name, "slot", &slot, "bits", &bits)
	if err != nil {
		return
	}
	width, err := vecWidth(name)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	values, ok := ln.sections(&sc.Cpu.Vector, width, slot)
	if !ok {
		err = register.ErrSlot
		return
	}
	value = toList(values)
	return
}

func (sc *Script) setSections(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var slot, bits int
	var list *starlark.List
	err = starlark.UnpackArgs("set_sections", args, kwargs, "width", &name, "slot", &slot, "bits", &bits, "values", &list)
	if err != nil {
		return
	}
	width, err := vecWidth(name)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	values, err := fromList(list)
	if err != nil {
		return
	}
	err = ln.setSections(&sc.Cpu.Vector, width, slot, values)
	if err != nil {
		return
	}
	value = starlark.None
	return
}

func (sc *Script) selectBits(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var slot int
	var text string
	bits := register.VECTOR_BITS
	err = starlark.UnpackArgs("select", args, kwargs, "slot", &slot, "selector", &text, "bits?", &bits)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	sel, err := register.ParseSelector(text)
	if err != nil {
		return
	}
	if sel.Bits() > ln.bits {
		err = register.ErrSelector{Text: text, Err: register.ErrSelectorTooWide}
		return
	}
	got, ok := ln.get(&sc.Cpu.Vector, slot, sel)
	if !ok {
		err = register.ErrSlot
		return
	}
	value = starlark.MakeBigInt(got)
	return
}

func (sc *Script) setSelectBits(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var slot int
	var text string
	var in starlark.Int
	bits := register.VECTOR_BITS
	err = starlark.UnpackArgs("set_select", args, kwargs, "slot", &slot, "selector", &text, "value", &in, "bits?", &bits)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	sel, err := register.ParseSelector(text)
	if err != nil {
		return
	}
	b, err := toBig(in)
	if err != nil {
		return
	}
	err = ln.set(&sc.Cpu.Vector, slot, sel, b)
	if err != nil {
		return
	}
	value = starlark.None
	return
}

func (sc *Script) read(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr starlark.Int
	var bits int
	err = starlark.UnpackArgs("read", args, kwargs, "addr", &addr, "bits", &bits)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	at, err := toUint64(addr)
	if err != nil {
		return
	}
	value = starlark.MakeBigInt(ln.read(sc.Cpu.Memory, at, 1)[0])
	return
}

func (sc *Script) write(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr, in starlark.Int
	var bits int
	err = starlark.UnpackArgs("write", args, kwargs, "addr", &addr, "bits", &bits, "value", &in)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	at, err := toUint64(addr)
	if err != nil {
		return
	}
	b, err := toBig(in)
	if err != nil {
		return
	}
	ln.write(sc.Cpu.Memory, at, []*big.Int{b})
	value = starlark.None
	return
}

func (sc *Script) readVec(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr starlark.Int
	var bits, count int
	err = starlark.UnpackArgs("read_vec", args, kwargs, "addr", &addr, "bits", &bits, "count", &count)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	at, err := toUint64(addr)
	if err != nil {
		return
	}
	if count < 0 {
		err = ErrNegative
		return
	}
	value = toList(ln.read(sc.Cpu.Memory, at, count))
	return
}

func (sc *Script) writeVec(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr starlark.Int
	var bits int
	var list *starlark.List
	err = starlark.UnpackArgs("write_vec", args, kwargs, "addr", &addr, "bits", &bits, "values", &list)
	if err != nil {
		return
	}
	ln, err := laneBits(bits)
	if err != nil {
		return
	}
	at, err := toUint64(addr)
	if err != nil {
		return
	}
	values, err := fromList(list)
	if err != nil {
		return
	}
	ln.write(sc.Cpu.Memory, at, values)
	value = starlark.None
	return
}

func (sc *Script) f32Bits(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var in starlark.Value
	err = starlark.UnpackPositionalArgs("f32_bits", args, kwargs, 1, &in)
	if err != nil {
		return
	}
	x, ok := starlark.AsFloat(in)
	if !ok {
		err = ErrNotNumber
		return
	}
	value = starlark.MakeUint64(uint64(word.F32Lanes(float32(x))[0]))
	return
}

func (sc *Script) f64Bits(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var in starlark.Value
	err = starlark.UnpackPositionalArgs("f64_bits", args, kwargs, 1, &in)
	if err != nil {
		return
	}
	x, ok := starlark.AsFloat(in)
	if !ok {
		err = ErrNotNumber
		return
	}
	value = starlark.MakeUint64(uint64(word.F64Lanes(x)[0]))
	return
}

func (sc *Script) dump(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs("dump", args, kwargs, 0)
	if err != nil {
		return
	}
	out := sc.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, sc.Cpu.String())
	value = starlark.None
	return
}

// checkpoint saves the CPU state and returns the checkpoint depth.
func (sc *Script) checkpoint(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs("checkpoint", args, kwargs, 0)
	if err != nil {
		return
	}
	if !sc.checkpoints.Push(snapshot.Capture(sc.Cpu)) {
		err = ErrCheckpointFull
		return
	}
	if sc.Verbose {
		log.Printf("script: checkpoint %d", len(sc.checkpoints.Data))
	}
	value = starlark.MakeInt(len(sc.checkpoints.Data))
	return
}

// rollback restores the most recent checkpoint and discards it.
func (sc *Script) rollback(args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs("rollback", args, kwargs, 0)
	if err != nil {
		return
	}
	st, ok := sc.checkpoints.Pop()
	if !ok {
		err = ErrCheckpointEmpty
		return
	}
	if sc.Verbose {
		log.Printf("script: rollback %d", len(sc.checkpoints.Data)+1)
	}
	err = st.Restore(sc.Cpu)
	if err != nil {
		return
	}
	value = starlark.MakeInt(len(sc.checkpoints.Data))
	return
}
