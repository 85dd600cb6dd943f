package cpu

import (
	"fmt"
)

// swap swaps the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

func init() {
	// CB SWAP row 0x30 - 0x37
	for i := uint8(0); i < 8; i++ {
		source := i
		cycles := uint8(8)
		if source == 6 {
			cycles = 16
		}
		DefineInstructionCB(0x30+source, fmt.Sprintf("SWAP %s", registerNames[source]), cycles, func(c *CPU) {
			c.writeSource(source, c.swap(c.readSource(source)))
		})
	}
}
