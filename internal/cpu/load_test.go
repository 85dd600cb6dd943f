package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Load(t *testing.T) {
	c, b := newTestCPU()

	t.Run("LD B, C", func(t *testing.T) {
		c.C = 0x42
		assert.Equal(t, 4, runInstruction(t, c, b, 0x41))
		assert.Equal(t, uint8(0x42), c.B)
	})

	t.Run("LD (HL), B", func(t *testing.T) {
		c.SetHL(0xC000)
		c.B = 0x99
		assert.Equal(t, 8, runInstruction(t, c, b, 0x70))
		assert.Equal(t, uint8(0x99), b.mem[0xC000])
	})

	t.Run("LD (HL), d8", func(t *testing.T) {
		c.SetHL(0xC000)
		assert.Equal(t, 12, runInstruction(t, c, b, 0x36, 0x7B))
		assert.Equal(t, uint8(0x7B), b.mem[0xC000])
	})

	t.Run("LD DE, d16", func(t *testing.T) {
		assert.Equal(t, 12, runInstruction(t, c, b, 0x11, 0x34, 0x12))
		assert.Equal(t, uint16(0x1234), c.DE())
	})

	t.Run("LD (a16), SP stores low byte first", func(t *testing.T) {
		c.SP = 0xFFF8
		assert.Equal(t, 20, runInstruction(t, c, b, 0x08, 0x00, 0xC1))
		assert.Equal(t, uint8(0xF8), b.mem[0xC100])
		assert.Equal(t, uint8(0xFF), b.mem[0xC101])
	})

	t.Run("LD A, (HL+)", func(t *testing.T) {
		c.SetHL(0xC000)
		b.mem[0xC000] = 0x56
		assert.Equal(t, 8, runInstruction(t, c, b, 0x2A))
		assert.Equal(t, uint8(0x56), c.A)
		assert.Equal(t, uint16(0xC001), c.HL())
	})

	t.Run("LD (HL-), A", func(t *testing.T) {
		c.SetHL(0xC000)
		c.A = 0x77
		runInstruction(t, c, b, 0x32)
		assert.Equal(t, uint8(0x77), b.mem[0xC000])
		assert.Equal(t, uint16(0xBFFF), c.HL())
	})

	t.Run("LDH addresses the high page", func(t *testing.T) {
		c.A = 0x11
		assert.Equal(t, 12, runInstruction(t, c, b, 0xE0, 0x80)) // LDH (0x80), A
		assert.Equal(t, uint8(0x11), b.mem[0xFF80])

		b.mem[0xFF81] = 0x22
		assert.Equal(t, 12, runInstruction(t, c, b, 0xF0, 0x81)) // LDH A, (0x81)
		assert.Equal(t, uint8(0x22), c.A)
	})

	t.Run("LD (C), A", func(t *testing.T) {
		c.A, c.C = 0x33, 0x82
		assert.Equal(t, 8, runInstruction(t, c, b, 0xE2))
		assert.Equal(t, uint8(0x33), b.mem[0xFF82])
	})

	t.Run("LD (a16), A round trip", func(t *testing.T) {
		c.A = 0x44
		assert.Equal(t, 16, runInstruction(t, c, b, 0xEA, 0x00, 0xC2))
		c.A = 0x00
		assert.Equal(t, 16, runInstruction(t, c, b, 0xFA, 0x00, 0xC2))
		assert.Equal(t, uint8(0x44), c.A)
	})

	t.Run("LD SP, HL", func(t *testing.T) {
		c.SetHL(0xD000)
		assert.Equal(t, 8, runInstruction(t, c, b, 0xF9))
		assert.Equal(t, uint16(0xD000), c.SP)
	})
}

func TestInstruction_PushPop(t *testing.T) {
	c, b := newTestCPU()
	c.SP = 0xFFF0

	t.Run("PUSH and POP BC", func(t *testing.T) {
		c.SetBC(0x1234)
		assert.Equal(t, 16, runInstruction(t, c, b, 0xC5))
		assert.Equal(t, uint16(0xFFEE), c.SP)

		c.SetBC(0x0000)
		assert.Equal(t, 12, runInstruction(t, c, b, 0xC1))
		assert.Equal(t, uint16(0x1234), c.BC())
		assert.Equal(t, uint16(0xFFF0), c.SP)
	})

	t.Run("POP AF masks the flag low nibble", func(t *testing.T) {
		c.SetBC(0x12FF)
		runInstruction(t, c, b, 0xC5) // PUSH BC
		runInstruction(t, c, b, 0xF1) // POP AF
		assert.Equal(t, uint8(0x12), c.A)
		assert.Equal(t, uint8(0xF0), c.F)
	})
}
