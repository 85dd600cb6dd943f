package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/types"
)

type testBus struct {
	mem map[uint16]uint8
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, value uint8) {
	b.mem[address] = value
}

func newTestController() (*Controller, *testBus) {
	b := &testBus{mem: map[uint16]uint8{}}
	return NewController(b, interrupts.NewService(b)), b
}

func TestController_Divider(t *testing.T) {
	c, b := newTestController()

	// the divider increments every 256 cycles, regardless of TAC
	for cycle := uint64(1); cycle <= 1024; cycle++ {
		c.Tick(cycle)
	}
	assert.Equal(t, uint8(4), b.mem[types.DIV])
}

func TestController_Rates(t *testing.T) {
	rates := []struct {
		tac    uint8
		period uint64
	}{
		{0b100, 1024},
		{0b101, 16},
		{0b110, 64},
		{0b111, 256},
	}

	for _, rate := range rates {
		c, b := newTestController()
		b.mem[types.TAC] = rate.tac

		for cycle := uint64(1); cycle <= rate.period*3; cycle++ {
			c.Tick(cycle)
		}
		assert.Equalf(t, uint8(3), b.mem[types.TIMA], "TAC %03b", rate.tac)
	}
}

func TestController_Disabled(t *testing.T) {
	c, b := newTestController()
	b.mem[types.TAC] = 0b001 // fast rate, but bit 2 off

	for cycle := uint64(1); cycle <= 1024; cycle++ {
		c.Tick(cycle)
	}
	assert.Equal(t, uint8(0), b.mem[types.TIMA])
	// the divider still runs
	assert.Equal(t, uint8(4), b.mem[types.DIV])
}

func TestController_OverflowReloadsAndRequests(t *testing.T) {
	c, b := newTestController()
	b.mem[types.TAC] = 0b101 // enabled, every 16 cycles
	b.mem[types.TMA] = 0xAB
	b.mem[types.TIMA] = 0xFF

	c.Tick(16)

	assert.Equal(t, uint8(0xAB), b.mem[types.TIMA])
	assert.Equal(t, uint8(interrupts.TimerFlag), b.mem[types.IF])
}
