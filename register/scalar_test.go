package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsRegister(t *testing.T) {
	assert := assert.New(t)

	var fr FlagsRegister
	fr.SetValue(RFLAGS, 0xFFFF_FFFF_FFFF_FFFF)
	fr.SetValue(EFLAGS, 0x1234_5678)
	assert.Equal(uint64(0xFFFF_FFFF_1234_5678), fr.Value(RFLAGS))

	fr.SetValue(FLAGS, 0xABCD_0202)
	assert.Equal(uint64(0xFFFF_FFFF_1234_0202), fr.Value(RFLAGS))
	assert.Equal(uint64(0x1234_0202), fr.Value(EFLAGS))
	assert.Equal(uint64(0x0202), fr.Value(FLAGS))

	assert.Equal(16, FLAGS.Bits())
	assert.Equal("EFLAGS", EFLAGS.String())
}

func TestInstructionPointer(t *testing.T) {
	assert := assert.New(t)

	var ip InstructionPointer
	ip.SetValue(RIP, 0x0000_7FFF_0040_1000)
	ip.SetValue(EIP, 0x0050_0000)
	assert.Equal(uint64(0x0000_7FFF_0050_0000), ip.Value(RIP))

	ip.SetValue(IP, 0x1_2345)
	assert.Equal(uint64(0x0000_7FFF_0050_2345), ip.Value(RIP))
	assert.Equal(uint64(0x2345), ip.Value(IP))

	assert.Equal(64, RIP.Bits())
	assert.Equal("IP", IP.String())
}

func TestParseScalarNames(t *testing.T) {
	assert := assert.New(t)

	flags, ok := ParseFLAGSName("eflags")
	assert.True(ok)
	assert.Equal(EFLAGS, flags)
	_, ok = ParseFLAGSName("XFLAGS")
	assert.False(ok)

	ip, ok := ParseIPName(" ip ")
	assert.True(ok)
	assert.Equal(IP, ip)
	_, ok = ParseIPName("RAX")
	assert.False(ok)

	width, ok := ParseVecRegName("zmm")
	assert.True(ok)
	assert.Equal(ZMM, width)
	_, ok = ParseVecRegName("MM")
	assert.False(ok)
}
