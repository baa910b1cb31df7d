package register

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/arch/x86/x86asm"
)

func TestGPRFromX86(t *testing.T) {
	assert := assert.New(t)

	seen := map[GPRName]bool{}
	for reg, name := range _x86GPR {
		assert.False(seen[name], name.String())
		seen[name] = true

		// Same bits in the same family, whatever the spelling.
		expect := reg.String()
		switch {
		case strings.HasSuffix(expect, "L") && strings.HasPrefix(expect, "R"):
			expect = strings.TrimSuffix(expect, "L") + "D"
		case len(expect) == 3 && strings.HasSuffix(expect, "B") && !strings.HasPrefix(expect, "R"):
			expect = strings.TrimSuffix(expect, "B") + "L"
		}
		assert.Equal(expect, name.String())
	}
	assert.Len(seen, GPR_NAMES)

	name, ok := GPRFromX86(x86asm.R13L)
	assert.True(ok)
	assert.Equal(R13D, name)

	name, ok = GPRFromX86(x86asm.SPB)
	assert.True(ok)
	assert.Equal(SPL, name)

	_, ok = GPRFromX86(x86asm.X0)
	assert.False(ok)
}

func TestIPFromX86(t *testing.T) {
	assert := assert.New(t)

	name, ok := IPFromX86(x86asm.EIP)
	assert.True(ok)
	assert.Equal(EIP, name)

	_, ok = IPFromX86(x86asm.RAX)
	assert.False(ok)
}

func TestSlotFromX86(t *testing.T) {
	assert := assert.New(t)

	slot, ok := SlotFromX86(x86asm.X0)
	assert.True(ok)
	assert.Equal(0, slot)

	slot, ok = SlotFromX86(x86asm.X15)
	assert.True(ok)
	assert.Equal(15, slot)

	_, ok = SlotFromX86(x86asm.RAX)
	assert.False(ok)
}
