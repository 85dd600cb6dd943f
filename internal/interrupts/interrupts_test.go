package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"

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

func newTestService() (*Service, *testBus) {
	b := &testBus{mem: map[uint16]uint8{}}
	return NewService(b), b
}

func TestService_Request(t *testing.T) {
	s, b := newTestService()

	s.Request(TimerFlag)
	assert.Equal(t, uint8(TimerFlag), b.mem[types.IF])

	s.Request(VBlankFlag)
	assert.Equal(t, uint8(TimerFlag|VBlankFlag), b.mem[types.IF])
}

func TestService_HasPending(t *testing.T) {
	s, b := newTestService()

	// pending needs both the request and enable bits
	s.Request(SerialFlag)
	assert.False(t, s.HasPending())

	b.mem[types.IE] = uint8(SerialFlag)
	assert.True(t, s.HasPending())

	b.mem[types.IE] = uint8(JoypadFlag)
	assert.False(t, s.HasPending())
}

func TestService_Vector(t *testing.T) {
	s, b := newTestService()

	_, ok := s.Vector()
	assert.False(t, ok)

	// the lowest set bit wins and is consumed
	b.mem[types.IE] = 0x1F
	s.Request(LCDFlag)
	s.Request(JoypadFlag)

	vector, ok := s.Vector()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0048), vector)
	assert.Equal(t, uint8(JoypadFlag), b.mem[types.IF])

	vector, ok = s.Vector()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0060), vector)
	assert.Equal(t, uint8(0x00), b.mem[types.IF])

	_, ok = s.Vector()
	assert.False(t, ok)
}

func TestService_VectorRespectsEnable(t *testing.T) {
	s, b := newTestService()

	s.Request(VBlankFlag)
	s.Request(TimerFlag)
	b.mem[types.IE] = uint8(TimerFlag)

	// the v-blank request outranks the timer but is not enabled
	vector, ok := s.Vector()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0050), vector)
	assert.Equal(t, uint8(VBlankFlag), b.mem[types.IF])
}
