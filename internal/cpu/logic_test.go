package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Logic(t *testing.T) {
	c, b := newTestCPU()

	t.Run("AND B", func(t *testing.T) {
		c.A, c.B = 0x5A, 0x3F
		runInstruction(t, c, b, 0xA0)
		assert.Equal(t, uint8(0x1A), c.A)
		assert.Equal(t, uint8(1)<<FlagHalfCarry, c.F)
	})

	t.Run("AND d8 zero result", func(t *testing.T) {
		c.A = 0x5A
		runInstruction(t, c, b, 0xE6, 0x00)
		assert.Equal(t, uint8(0x00), c.A)
		assert.True(t, c.isFlagSet(FlagZero))
		assert.True(t, c.isFlagSet(FlagHalfCarry))
	})

	t.Run("XOR A clears everything but zero", func(t *testing.T) {
		c.A = 0xFF
		c.setFlags(false, true, true, true)
		runInstruction(t, c, b, 0xAF)
		assert.Equal(t, uint8(0x00), c.A)
		assert.Equal(t, uint8(1)<<FlagZero, c.F)
	})

	t.Run("OR (HL)", func(t *testing.T) {
		c.A = 0x5A
		c.SetHL(0xC000)
		b.mem[0xC000] = 0x0F
		assert.Equal(t, 8, runInstruction(t, c, b, 0xB6))
		assert.Equal(t, uint8(0x5F), c.A)
		assert.Equal(t, uint8(0x00), c.F)
	})

	t.Run("CP does not mutate A", func(t *testing.T) {
		c.A = 0x3C
		runInstruction(t, c, b, 0xFE, 0x3C) // CP 0x3C
		assert.Equal(t, uint8(0x3C), c.A)
		assert.True(t, c.isFlagSet(FlagZero))
		assert.True(t, c.isFlagSet(FlagSubtract))

		runInstruction(t, c, b, 0xFE, 0x40) // CP 0x40
		assert.Equal(t, uint8(0x3C), c.A)
		assert.False(t, c.isFlagSet(FlagZero))
		assert.True(t, c.isFlagSet(FlagCarry))
	})
}

func TestInstruction_Misc(t *testing.T) {
	c, b := newTestCPU()

	t.Run("CPL", func(t *testing.T) {
		c.A = 0x35
		c.setFlags(true, false, false, true)
		runInstruction(t, c, b, 0x2F)
		assert.Equal(t, uint8(0xCA), c.A)
		// subtract and half carry forced, zero and carry untouched
		assert.True(t, c.isFlagSet(FlagSubtract))
		assert.True(t, c.isFlagSet(FlagHalfCarry))
		assert.True(t, c.isFlagSet(FlagZero))
		assert.True(t, c.isFlagSet(FlagCarry))
	})

	t.Run("SCF and CCF", func(t *testing.T) {
		c.setFlags(true, true, true, false)
		runInstruction(t, c, b, 0x37) // SCF
		assert.True(t, c.isFlagSet(FlagCarry))
		assert.False(t, c.isFlagSet(FlagSubtract))
		assert.False(t, c.isFlagSet(FlagHalfCarry))
		assert.True(t, c.isFlagSet(FlagZero))

		runInstruction(t, c, b, 0x3F) // CCF
		assert.False(t, c.isFlagSet(FlagCarry))
		runInstruction(t, c, b, 0x3F)
		assert.True(t, c.isFlagSet(FlagCarry))
	})
}
