package cpu

// Instruction is a single entry of the dispatch tables: a mnemonic for
// debugging, the base cost in cycles, and the function that performs
// the operation. Operations that cost more than their base (taken
// branches, CB-prefixed instructions) add the difference to the CPU's
// remaining-cycles counter themselves.
type Instruction struct {
	name   string     // mnemonic of the instruction
	cycles uint8      // base cost in cycles
	fn     func(*CPU) // fn called when executing the instruction
}

// InstructionSet holds the 256 unprefixed instructions. The 11 holes
// in the opcode map are left as zero values and surface as
// ErrUnknownOpcode when fetched.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 CB-prefixed instructions.
var InstructionSetCB [256]Instruction

// DefineInstruction defines an instruction in the InstructionSet with
// the provided opcode.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineInstructionCB defines an instruction in the InstructionSetCB
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		cycles: cycles,
		fn:     fn,
	}
}

// registerNames maps a 3-bit operand index to its mnemonic. Index 6 is
// the byte of memory addressed by HL; the rest are registers.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// readSource reads the operand with the given 3-bit index, either a
// register or the byte of memory addressed by HL.
func (c *CPU) readSource(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.b.Read(c.HL())
	default:
		return c.A
	}
}

// writeSource writes the operand with the given 3-bit index.
func (c *CPU) writeSource(index uint8, value uint8) {
	switch index {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.b.Write(c.HL(), value)
	default:
		c.A = value
	}
}

func init() {
	DefineInstruction(0x00, "NOP", 4, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 4, func(c *CPU) {
		c.stopped = true
	})
	DefineInstruction(0x27, "DAA", 4, func(c *CPU) {
		c.decimalAdjust()
	})
	DefineInstruction(0x2F, "CPL", 4, func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0x37, "SCF", 4, func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", 4, func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0x76, "HALT", 4, func(c *CPU) {
		if !c.IME && c.irq.HasPending() {
			// the fetch after HALT re-reads the same byte once
			c.haltBug = true
		} else {
			c.halted = true
		}
	})
	DefineInstruction(0xCB, "CB Prefix", 4, func(c *CPU) {
		instruction := InstructionSetCB[c.readOperand()]
		c.cyclesLeft += int(instruction.cycles)
		instruction.fn(c)
	})
	DefineInstruction(0xF3, "DI", 4, func(c *CPU) {
		c.IME = false
		c.imePending = false
	})
	DefineInstruction(0xFB, "EI", 4, func(c *CPU) {
		c.imePending = true
	})
}
