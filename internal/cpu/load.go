package cpu

import (
	"fmt"
)

// loadRegister8 loads the next operand byte into the given register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *uint8) {
	*reg = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address
// into the given register.
//
//	LD n, (nn)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *uint8, address uint16) {
	*reg = c.b.Read(address)
}

// loadRegisterToMemory loads the given value into the given memory
// address.
//
//	LD (nn), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(value uint8, address uint16) {
	c.b.Write(address, value)
}

func init() {
	// LD r, r' block 0x40 - 0x7F; 0x76 is HALT, not LD (HL), (HL)
	for to := uint8(0); to < 8; to++ {
		for from := uint8(0); from < 8; from++ {
			if to == 6 && from == 6 {
				continue
			}
			dst, src := to, from
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			DefineInstruction(0x40+dst*8+src, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), cycles, func(c *CPU) {
				c.writeSource(dst, c.readSource(src))
			})
		}
	}

	// LD r, d8 row at 0x06 + operand*8
	for i := uint8(0); i < 8; i++ {
		source := i
		cycles := uint8(8)
		if source == 6 {
			cycles = 12
		}
		DefineInstruction(0x06+source*8, fmt.Sprintf("LD %s, d8", registerNames[source]), cycles, func(c *CPU) {
			c.writeSource(source, c.readOperand())
		})
	}

	DefineInstruction(0x01, "LD BC, d16", 12, func(c *CPU) { c.SetBC(c.readOperand16()) })
	DefineInstruction(0x11, "LD DE, d16", 12, func(c *CPU) { c.SetDE(c.readOperand16()) })
	DefineInstruction(0x21, "LD HL, d16", 12, func(c *CPU) { c.SetHL(c.readOperand16()) })
	DefineInstruction(0x31, "LD SP, d16", 12, func(c *CPU) { c.SP = c.readOperand16() })

	DefineInstruction(0x02, "LD (BC), A", 8, func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC()) })
	DefineInstruction(0x12, "LD (DE), A", 8, func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE()) })
	DefineInstruction(0x0A, "LD A, (BC)", 8, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC()) })
	DefineInstruction(0x1A, "LD A, (DE)", 8, func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE()) })

	DefineInstruction(0x22, "LD (HL+), A", 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL())
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL())
		c.SetHL(c.HL() - 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL())
		c.SetHL(c.HL() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL())
		c.SetHL(c.HL() - 1)
	})

	DefineInstruction(0x08, "LD (a16), SP", 20, func(c *CPU) {
		address := c.readOperand16()
		c.b.Write(address, uint8(c.SP&0xFF))
		c.b.Write(address+1, uint8(c.SP>>8))
	})

	DefineInstruction(0xE0, "LDH (a8), A", 12, func(c *CPU) {
		c.loadRegisterToMemory(c.A, 0xFF00+uint16(c.readOperand()))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 12, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, 0xFF00+uint16(c.C))
	})
	DefineInstruction(0xF2, "LD A, (C)", 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C))
	})

	DefineInstruction(0xEA, "LD (a16), A", 16, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.readOperand16())
	})
	DefineInstruction(0xFA, "LD A, (a16)", 16, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
	})

	DefineInstruction(0xF8, "LD HL, SP+e8", 12, func(c *CPU) {
		c.SetHL(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", 8, func(c *CPU) {
		c.SP = c.HL()
	})

	DefineInstruction(0xC5, "PUSH BC", 16, func(c *CPU) { c.pushStack(c.BC()) })
	DefineInstruction(0xD5, "PUSH DE", 16, func(c *CPU) { c.pushStack(c.DE()) })
	DefineInstruction(0xE5, "PUSH HL", 16, func(c *CPU) { c.pushStack(c.HL()) })
	DefineInstruction(0xF5, "PUSH AF", 16, func(c *CPU) { c.pushStack(c.AF()) })

	DefineInstruction(0xC1, "POP BC", 12, func(c *CPU) { c.SetBC(c.popStack()) })
	DefineInstruction(0xD1, "POP DE", 12, func(c *CPU) { c.SetDE(c.popStack()) })
	DefineInstruction(0xE1, "POP HL", 12, func(c *CPU) { c.SetHL(c.popStack()) })
	DefineInstruction(0xF1, "POP AF", 12, func(c *CPU) { c.SetAF(c.popStack()) })
}
