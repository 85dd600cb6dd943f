package cpu

import (
	"fmt"
)

// add adds n (plus the carry flag, for ADC) to the A register.
//
//	ADD A, n / ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	carryIn := uint16(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(n) + carryIn
	c.setFlags(uint8(sum) == 0, false, uint16(c.A&0xF)+uint16(n&0xF)+carryIn > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (plus the carry flag, for SBC) from the A register.
//
//	SUB n / SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	carryIn := int16(0)
	if withCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := int16(c.A) - int16(n) - carryIn
	c.setFlags(uint8(result) == 0, true, int16(c.A&0xF)-int16(n&0xF)-carryIn < 0, result < 0)
	c.A = uint8(result)
}

// and performs a bitwise AND operation on n and the A register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// xor performs a bitwise XOR operation on n and the A register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// or performs a bitwise OR operation on n and the A register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A register. The A register is not mutated.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0xF > c.A&0xF, n > c.A)
}

func init() {
	// the ALU block 0x80 - 0xBF is eight rows of eight operands, plus
	// the immediate-operand column at 0xC6 + row*8
	operations := [8]struct {
		format string
		fn     func(*CPU, uint8)
	}{
		{"ADD A, %s", func(c *CPU, n uint8) { c.add(n, false) }},
		{"ADC A, %s", func(c *CPU, n uint8) { c.add(n, true) }},
		{"SUB %s", func(c *CPU, n uint8) { c.sub(n, false) }},
		{"SBC A, %s", func(c *CPU, n uint8) { c.sub(n, true) }},
		{"AND %s", (*CPU).and},
		{"XOR %s", (*CPU).xor},
		{"OR %s", (*CPU).or},
		{"CP %s", (*CPU).compare},
	}

	for i, operation := range operations {
		row := uint8(i)
		fn := operation.fn

		for j := uint8(0); j < 8; j++ {
			source := j
			cycles := uint8(4)
			if source == 6 {
				cycles = 8
			}
			DefineInstruction(0x80+row*8+source, fmt.Sprintf(operation.format, registerNames[source]), cycles, func(c *CPU) {
				fn(c, c.readSource(source))
			})
		}

		DefineInstruction(0xC6+row*8, fmt.Sprintf(operation.format, "d8"), 8, func(c *CPU) {
			fn(c, c.readOperand())
		})
	}
}
