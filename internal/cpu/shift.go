package cpu

import (
	"fmt"

	"github.com/sm83go/sm83/internal/types"
)

// shiftLeftArithmetic shifts n left by one bit, and sets the carry
// flag to the most significant bit of n.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right by one bit and sets the carry
// flag to the least significant bit of n. The most significant bit
// does not change.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftRightLogical shifts n right one bit and sets the carry flag to
// the least significant bit of n.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

func init() {
	shifts := [3]struct {
		base uint8
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{0x20, "SLA", (*CPU).shiftLeftArithmetic},
		{0x28, "SRA", (*CPU).shiftRightArithmetic},
		{0x38, "SRL", (*CPU).shiftRightLogical},
	}

	for _, shift := range shifts {
		base, fn := shift.base, shift.fn
		for i := uint8(0); i < 8; i++ {
			source := i
			cycles := uint8(8)
			if source == 6 {
				cycles = 16
			}
			DefineInstructionCB(base+source, fmt.Sprintf("%s %s", shift.name, registerNames[source]), cycles, func(c *CPU) {
				c.writeSource(source, fn(c, c.readSource(source)))
			})
		}
	}
}
