package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Shifts(t *testing.T) {
	c, b := newTestCPU()

	t.Run("SLA B", func(t *testing.T) {
		c.B = 0x80
		runInstruction(t, c, b, 0xCB, 0x20)
		assert.Equal(t, uint8(0x00), c.B)
		assert.True(t, c.isFlagSet(FlagZero))
		assert.True(t, c.isFlagSet(FlagCarry))
	})

	t.Run("SRA keeps the sign bit", func(t *testing.T) {
		c.C = 0x81
		runInstruction(t, c, b, 0xCB, 0x29)
		assert.Equal(t, uint8(0xC0), c.C)
		assert.True(t, c.isFlagSet(FlagCarry))
	})

	t.Run("SRL clears the sign bit", func(t *testing.T) {
		c.D = 0x81
		runInstruction(t, c, b, 0xCB, 0x3A)
		assert.Equal(t, uint8(0x40), c.D)
		assert.True(t, c.isFlagSet(FlagCarry))
	})

	t.Run("SRL (HL)", func(t *testing.T) {
		c.SetHL(0xC000)
		b.mem[0xC000] = 0x02
		assert.Equal(t, 20, runInstruction(t, c, b, 0xCB, 0x3E))
		assert.Equal(t, uint8(0x01), b.mem[0xC000])
		assert.False(t, c.isFlagSet(FlagCarry))
	})
}
