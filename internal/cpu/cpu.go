package cpu

import (
	"errors"
	"fmt"

	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/timer"
	"github.com/sm83go/sm83/pkg/utils"
)

// ClockSpeed is the clock speed of the CPU in cycles per second.
const ClockSpeed = 4194304

// ErrUnknownOpcode is returned by Step when the fetched opcode has no
// entry in the instruction set.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Bus is the memory the CPU executes against. Reference returns a
// mutable view of a byte so read-modify-write instructions can mutate
// it in place.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Reference(address uint16) *uint8
}

// CPU executes instructions against a Bus, one cycle per Step call.
type CPU struct {
	// Registers contains the 8-bit registers and their 16-bit views.
	Registers
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	// IME is the interrupt master enable flag.
	IME bool
	// imePending marks an EI whose effect has not been applied yet;
	// IME turns on one step after EI executes.
	imePending bool
	halted     bool
	haltBug    bool
	stopped    bool

	// cyclesLeft counts the cycles the current instruction still
	// occupies; the next fetch happens when it reaches 0.
	cyclesLeft int
	// totalCycles counts every cycle since power-on and drives the
	// timer rate masks.
	totalCycles uint64

	b     Bus
	irq   *interrupts.Service
	timer *timer.Controller
}

// New creates a CPU in its power-on state, executing against the
// given bus.
func New(b Bus, irq *interrupts.Service, timer *timer.Controller) *CPU {
	return &CPU{
		Registers: Registers{
			A: 0x01, F: 0xB0,
			B: 0x00, C: 0x13,
			D: 0x00, E: 0xD8,
			H: 0x01, L: 0x4D,
		},
		PC:    0x0100,
		SP:    0xFFFE,
		b:     b,
		irq:   irq,
		timer: timer,
	}
}

// Step advances the CPU by one cycle. An instruction executes its
// effects on the cycle it is fetched and then occupies the bus for the
// remainder of its cost. Every step ends by applying a pending EI,
// servicing at most one interrupt, and ticking the timers, in that
// order.
func (c *CPU) Step() error {
	enableIME := c.imePending

	if c.stopped {
		c.tickTimers()
		return nil
	}

	if c.halted {
		// any pending interrupt wakes the CPU, even with IME off
		if !c.irq.HasPending() {
			c.tickTimers()
			return nil
		}
		c.halted = false
	}

	if c.cyclesLeft > 0 {
		c.cyclesLeft--
	} else {
		address := c.PC
		opcode := c.b.Read(address)
		if c.haltBug {
			c.haltBug = false
		} else {
			c.PC++
		}

		instruction := InstructionSet[opcode]
		if instruction.fn == nil {
			return fmt.Errorf("%w: 0x%02X at 0x%04X", ErrUnknownOpcode, opcode, address)
		}

		// the base cost is committed before the operation runs so
		// that taken branches and CB-prefixed instructions can add
		// their extra cycles on top
		c.cyclesLeft = int(instruction.cycles) - 1
		instruction.fn(c)
	}

	if enableIME {
		c.IME = true
		c.imePending = false
	}

	c.serviceInterrupts()
	c.tickTimers()
	return nil
}

// ResumeFromStop resumes execution after a STOP instruction. The
// resume trigger is external to the CPU.
func (c *CPU) ResumeFromStop() {
	c.stopped = false
}

// serviceInterrupts services the highest-priority pending interrupt,
// if the IME is enabled. At most one interrupt is serviced per step.
func (c *CPU) serviceInterrupts() {
	if !c.IME {
		return
	}
	vector, ok := c.irq.Vector()
	if !ok {
		return
	}

	c.IME = false
	c.halted = false
	c.pushStack(c.PC)
	c.PC = vector
	c.cyclesLeft += 20
}

// tickTimers advances the timer subsystem by one cycle.
func (c *CPU) tickTimers() {
	c.totalCycles++
	c.timer.Tick(c.totalCycles)
}

// readOperand reads the next operand byte from memory.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operand bytes from memory, low
// byte first.
func (c *CPU) readOperand16() uint16 {
	lower := c.readOperand()
	upper := c.readOperand()
	return utils.BytesToUint16(upper, lower)
}

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.b.Write(c.SP, uint8(value>>8))
	c.SP--
	c.b.Write(c.SP, uint8(value&0xFF))
}

// popStack pops a 16-bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.b.Read(c.SP))
	upper := uint16(c.b.Read(c.SP+1)) << 8
	c.SP += 2
	return upper | lower
}
