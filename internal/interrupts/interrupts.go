// Package interrupts implements the interrupt controller. The enable
// and request registers live in memory at types.IE and types.IF; the
// Service reads and writes them through the memory bus rather than
// owning them itself.
package interrupts

import (
	"github.com/sm83go/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0). It has the
	// highest priority of the five interrupt sources.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when
	// the TIMA register overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4). It has the
	// lowest priority of the five interrupt sources.
	JoypadFlag = types.Bit4
)

// sources is the number of interrupt sources, bits 0-4 of IE/IF.
const sources = 5

// Bus is the memory access the Service needs to reach the IE and IF
// registers.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Service exposes the interrupt enable and request registers. An
// interrupt becomes pending when its bit is set in both registers;
// whether a pending interrupt is actually serviced is gated by the
// CPU's IME flag, which the Service deliberately knows nothing about.
type Service struct {
	b Bus
}

// NewService returns a Service operating on the given bus.
func NewService(b Bus) *Service {
	return &Service{b: b}
}

// Enable returns the interrupt enable register (types.IE).
func (s *Service) Enable() uint8 {
	return s.b.Read(types.IE)
}

// Flag returns the interrupt request register (types.IF).
func (s *Service) Flag() uint8 {
	return s.b.Read(types.IF)
}

// Request requests the specified interrupt by setting the
// corresponding bit in the request register.
func (s *Service) Request(flag uint8) {
	s.b.Write(types.IF, s.Flag()|flag)
}

// HasPending returns true if any interrupt is both requested and
// enabled. This is independent of IME: a halted CPU wakes on a pending
// interrupt even when IME is cleared.
func (s *Service) HasPending() bool {
	return s.Enable()&s.Flag()&0x1F != 0
}

// Vector acknowledges the highest-priority pending interrupt: it
// clears the interrupt's bit in the request register and returns its
// handler address (0x40 + source*8). The second return value is false
// when no interrupt is pending.
func (s *Service) Vector() (uint16, bool) {
	triggered := s.Enable() & s.Flag()
	for i := uint8(0); i < sources; i++ {
		flag := uint8(1 << i)
		if triggered&flag == 0 {
			continue
		}
		s.b.Write(types.IF, s.Flag()&^flag)
		return uint16(0x40 + i*8), true
	}

	return 0, false
}
