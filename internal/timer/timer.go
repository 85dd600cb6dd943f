// Package timer implements the divider and timer registers. The
// Controller owns no state of its own: DIV, TIMA, TMA and TAC are
// plain bytes in memory, and the Controller advances them from the
// CPU's running cycle count once per step.
package timer

import (
	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/types"
)

// Bus is the memory access the Controller needs to reach the four
// timer registers.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// rates maps the input clock select bits of TAC to the cycle-count
// mask that fires the timer: every 1024, 16, 64 or 256 cycles.
var rates = [4]uint64{0x3FF, 0x0F, 0x3F, 0xFF}

// Controller advances the divider and timer registers.
type Controller struct {
	b   Bus
	irq *interrupts.Service
}

// NewController returns a Controller operating on the given bus,
// requesting timer interrupts through irq.
func NewController(b Bus, irq *interrupts.Service) *Controller {
	return &Controller{b: b, irq: irq}
}

// Tick advances the timer registers for one cycle. totalCycles is the
// CPU's monotonically increasing cycle counter; the divider and timer
// fire when its low bits wrap to zero.
func (c *Controller) Tick(totalCycles uint64) {
	// the divider increments every 256 cycles, whether or not the
	// timer is enabled
	if totalCycles&0xFF == 0 {
		c.b.Write(types.DIV, c.b.Read(types.DIV)+1)
	}

	tac := c.b.Read(types.TAC)
	if tac&types.Bit2 == 0 {
		return
	}

	if totalCycles&rates[tac&0b11] != 0 {
		return
	}

	tima := c.b.Read(types.TIMA)
	if tima == 0xFF {
		// on overflow TIMA reloads from TMA and requests a timer
		// interrupt
		c.b.Write(types.TIMA, c.b.Read(types.TMA))
		c.irq.Request(interrupts.TimerFlag)
	} else {
		c.b.Write(types.TIMA, tima+1)
	}
}
