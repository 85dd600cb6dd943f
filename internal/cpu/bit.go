package cpu

import (
	"fmt"
)

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, mask uint8) {
	c.setFlags(value&mask != mask, false, true, c.isFlagSet(FlagCarry))
}

func init() {
	// CB blocks: BIT 0x40 - 0x7F, RES 0x80 - 0xBF, SET 0xC0 - 0xFF,
	// eight rows of eight operands each
	for b := uint8(0); b < 8; b++ {
		mask := uint8(1) << b
		bit := b

		for i := uint8(0); i < 8; i++ {
			source := i
			cycles := uint8(8)
			if source == 6 {
				cycles = 16
			}

			DefineInstructionCB(0x40+bit*8+source, fmt.Sprintf("BIT %d, %s", bit, registerNames[source]), cycles, func(c *CPU) {
				c.testBit(c.readSource(source), mask)
			})

			// RES and SET touch no flags; the (HL) forms mutate the
			// byte in place through a memory reference
			if source == 6 {
				DefineInstructionCB(0x80+bit*8+source, fmt.Sprintf("RES %d, (HL)", bit), cycles, func(c *CPU) {
					*c.b.Reference(c.HL()) &^= mask
				})
				DefineInstructionCB(0xC0+bit*8+source, fmt.Sprintf("SET %d, (HL)", bit), cycles, func(c *CPU) {
					*c.b.Reference(c.HL()) |= mask
				})
				continue
			}

			DefineInstructionCB(0x80+bit*8+source, fmt.Sprintf("RES %d, %s", bit, registerNames[source]), cycles, func(c *CPU) {
				c.writeSource(source, c.readSource(source)&^mask)
			})
			DefineInstructionCB(0xC0+bit*8+source, fmt.Sprintf("SET %d, %s", bit, registerNames[source]), cycles, func(c *CPU) {
				c.writeSource(source, c.readSource(source)|mask)
			})
		}
	}
}
