package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// the 11 opcodes with no instruction assigned
var unusedOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true,
	0xEC: true, 0xED: true,
	0xF4: true, 0xFC: true, 0xFD: true,
}

func TestInstructionSet_Coverage(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		instruction := InstructionSet[opcode]
		if unusedOpcodes[uint8(opcode)] {
			assert.Nilf(t, instruction.fn, "opcode 0x%02X should be unused", opcode)
			continue
		}
		assert.NotNilf(t, instruction.fn, "opcode 0x%02X is missing", opcode)
		assert.NotZerof(t, instruction.cycles, "opcode 0x%02X has no cost", opcode)
	}
}

func TestInstructionSetCB_Coverage(t *testing.T) {
	// every CB opcode is defined, costing 8 for registers and 16 for
	// the memory operand
	for opcode := 0; opcode < 256; opcode++ {
		instruction := InstructionSetCB[opcode]
		assert.NotNilf(t, instruction.fn, "CB opcode 0x%02X is missing", opcode)
		if opcode&0x7 == 6 {
			assert.Equalf(t, uint8(16), instruction.cycles, "CB opcode 0x%02X", opcode)
		} else {
			assert.Equalf(t, uint8(8), instruction.cycles, "CB opcode 0x%02X", opcode)
		}
	}
}
