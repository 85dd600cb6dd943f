package cpu

import (
	"fmt"
)

// jumpAbsolute reads a 16-bit address operand and, if the condition
// holds, jumps to it, adding taken cycles to the remaining cost.
//
//	JP nn / JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool, taken uint8) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.cyclesLeft += int(taken)
	}
}

// jumpRelative reads a signed 8-bit displacement operand and, if the
// condition holds, adds it to the program counter.
//
//	JR e / JR cc, e
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelative(condition bool, taken uint8) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.cyclesLeft += int(taken)
	}
}

// call reads a 16-bit address operand and, if the condition holds,
// pushes the return address and jumps to it.
//
//	CALL nn / CALL cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) call(condition bool, taken uint8) {
	address := c.readOperand16()
	if condition {
		c.pushStack(c.PC)
		c.PC = address
		c.cyclesLeft += int(taken)
	}
}

// ret pops the return address off the stack if the condition holds.
//
//	RET / RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(condition bool, taken uint8) {
	if condition {
		c.PC = c.popStack()
		c.cyclesLeft += int(taken)
	}
}

func init() {
	DefineInstruction(0x18, "JR e8", 12, func(c *CPU) { c.jumpRelative(true, 0) })
	DefineInstruction(0x20, "JR NZ, e8", 12, func(c *CPU) { c.jumpRelative(c.isFlagNotSet(FlagZero), 4) })
	DefineInstruction(0x28, "JR Z, e8", 12, func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagZero), 4) })
	DefineInstruction(0x30, "JR NC, e8", 12, func(c *CPU) { c.jumpRelative(c.isFlagNotSet(FlagCarry), 4) })
	DefineInstruction(0x38, "JR C, e8", 12, func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagCarry), 4) })

	DefineInstruction(0xC3, "JP a16", 16, func(c *CPU) { c.jumpAbsolute(true, 0) })
	DefineInstruction(0xC2, "JP NZ, a16", 12, func(c *CPU) { c.jumpAbsolute(c.isFlagNotSet(FlagZero), 4) })
	DefineInstruction(0xCA, "JP Z, a16", 12, func(c *CPU) { c.jumpAbsolute(c.isFlagSet(FlagZero), 4) })
	DefineInstruction(0xD2, "JP NC, a16", 12, func(c *CPU) { c.jumpAbsolute(c.isFlagNotSet(FlagCarry), 4) })
	DefineInstruction(0xDA, "JP C, a16", 12, func(c *CPU) { c.jumpAbsolute(c.isFlagSet(FlagCarry), 4) })
	DefineInstruction(0xE9, "JP HL", 4, func(c *CPU) { c.PC = c.HL() })

	DefineInstruction(0xCD, "CALL a16", 24, func(c *CPU) { c.call(true, 0) })
	DefineInstruction(0xC4, "CALL NZ, a16", 12, func(c *CPU) { c.call(c.isFlagNotSet(FlagZero), 12) })
	DefineInstruction(0xCC, "CALL Z, a16", 12, func(c *CPU) { c.call(c.isFlagSet(FlagZero), 12) })
	DefineInstruction(0xD4, "CALL NC, a16", 12, func(c *CPU) { c.call(c.isFlagNotSet(FlagCarry), 12) })
	DefineInstruction(0xDC, "CALL C, a16", 12, func(c *CPU) { c.call(c.isFlagSet(FlagCarry), 12) })

	DefineInstruction(0xC9, "RET", 16, func(c *CPU) { c.ret(true, 0) })
	DefineInstruction(0xC0, "RET NZ", 8, func(c *CPU) { c.ret(c.isFlagNotSet(FlagZero), 12) })
	DefineInstruction(0xC8, "RET Z", 8, func(c *CPU) { c.ret(c.isFlagSet(FlagZero), 12) })
	DefineInstruction(0xD0, "RET NC", 8, func(c *CPU) { c.ret(c.isFlagNotSet(FlagCarry), 12) })
	DefineInstruction(0xD8, "RET C", 8, func(c *CPU) { c.ret(c.isFlagSet(FlagCarry), 12) })
	DefineInstruction(0xD9, "RETI", 16, func(c *CPU) {
		c.ret(true, 0)
		// unlike EI, RETI enables the IME without delay
		c.IME = true
	})

	// RST row at 0xC7 + i*8, vectors spaced 8 bytes apart from 0x0000
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", vector), 16, func(c *CPU) {
			c.pushStack(c.PC)
			c.PC = vector
		})
	}
}
