package cpu

import (
	"fmt"
)

// increment increments n by 1 and sets the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement decrements n by 1 and sets the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addToHL adds the given value to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addToHL(value uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.SetHL(uint16(sum))
}

// addSPSigned adds the next operand, a signed 8-bit displacement, to
// the stack pointer and returns the result.
//
//	ADD SP, e / LD HL, SP+e
//	e = 8-bit signed immediate value
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the unsigned displacement add.
//	C - Set if carry from bit 7 of the unsigned displacement add.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))

	// the flags come from unsigned byte arithmetic on the low byte of
	// SP, regardless of the displacement's sign
	c.setFlags(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

// decimalAdjust adjusts the A register into packed binary-coded
// decimal after an addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the addition correction exceeds 0x99, otherwise not affected.
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	value := c.A

	if c.isFlagNotSet(FlagSubtract) {
		if carry || value > 0x99 {
			value += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || value&0xF > 0x9 {
			value += 0x06
		}
	} else {
		if carry {
			value -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			value -= 0x06
		}
	}

	c.A = value
	c.setFlags(value == 0, c.isFlagSet(FlagSubtract), false, carry)
}

func init() {
	// INC n / DEC n rows at 0x04 / 0x05 + operand*8
	for i := uint8(0); i < 8; i++ {
		source := i
		cycles := uint8(4)
		if source == 6 {
			cycles = 12
		}
		DefineInstruction(0x04+source*8, fmt.Sprintf("INC %s", registerNames[source]), cycles, func(c *CPU) {
			c.writeSource(source, c.increment(c.readSource(source)))
		})
		DefineInstruction(0x05+source*8, fmt.Sprintf("DEC %s", registerNames[source]), cycles, func(c *CPU) {
			c.writeSource(source, c.decrement(c.readSource(source)))
		})
	}

	// 16-bit INC/DEC and ADD HL leave the Z flag alone and set no
	// flags at all respectively
	DefineInstruction(0x03, "INC BC", 8, func(c *CPU) { c.SetBC(c.BC() + 1) })
	DefineInstruction(0x13, "INC DE", 8, func(c *CPU) { c.SetDE(c.DE() + 1) })
	DefineInstruction(0x23, "INC HL", 8, func(c *CPU) { c.SetHL(c.HL() + 1) })
	DefineInstruction(0x33, "INC SP", 8, func(c *CPU) { c.SP++ })

	DefineInstruction(0x0B, "DEC BC", 8, func(c *CPU) { c.SetBC(c.BC() - 1) })
	DefineInstruction(0x1B, "DEC DE", 8, func(c *CPU) { c.SetDE(c.DE() - 1) })
	DefineInstruction(0x2B, "DEC HL", 8, func(c *CPU) { c.SetHL(c.HL() - 1) })
	DefineInstruction(0x3B, "DEC SP", 8, func(c *CPU) { c.SP-- })

	DefineInstruction(0x09, "ADD HL, BC", 8, func(c *CPU) { c.addToHL(c.BC()) })
	DefineInstruction(0x19, "ADD HL, DE", 8, func(c *CPU) { c.addToHL(c.DE()) })
	DefineInstruction(0x29, "ADD HL, HL", 8, func(c *CPU) { c.addToHL(c.HL()) })
	DefineInstruction(0x39, "ADD HL, SP", 8, func(c *CPU) { c.addToHL(c.SP) })

	DefineInstruction(0xE8, "ADD SP, e8", 16, func(c *CPU) {
		c.SP = c.addSPSigned()
	})
}
