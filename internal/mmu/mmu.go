// Package mmu provides the 64kB memory space the CPU executes against.
// The MMU is unaware of the other components: it exposes byte reads,
// writes and references over the full address space, and the hardware
// registers it backs (timer, interrupt enable/request) are plain bytes
// with no side effects of their own.
package mmu

import (
	"github.com/sirupsen/logrus"
)

// MMU is the memory of the machine. The address space is split into
// the regions of the DMG hardware; the cartridge ROM is the only
// dynamically sized one.
type MMU struct {
	// 0x0000 - 0x7FFF - cartridge ROM (not writable)
	rom []uint8
	// 0x8000 - 0x9FFF - video RAM (8kB)
	vram [0x2000]uint8
	// 0xA000 - 0xBFFF - external cartridge RAM (8kB)
	eram [0x2000]uint8
	// 0xC000 - 0xDFFF - work RAM (8kB), echoed at 0xE000 - 0xFDFF
	wram [0x2000]uint8
	// 0xFE00 - 0xFE9F - object attribute memory (160B)
	oam [0xA0]uint8
	// 0xFF00 - 0xFF7F - I/O registers
	io [0x80]uint8
	// 0xFF80 - 0xFFFE - high RAM (127B)
	hram [0x7F]uint8
	// 0xFFFF - interrupt enable register
	ie uint8

	// open is handed out for unmapped addresses, reset to 0xFF on
	// every access so writes through a stale reference can't leak
	// into later reads
	open uint8

	Log *logrus.Logger
}

// New returns an MMU with the I/O registers in their documented
// power-on state. No ROM is mapped until LoadROM is called.
func New() *MMU {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	m := &MMU{Log: l}

	// power-on values of the I/O registers. The LCD and sound
	// registers have no behaviour here, but programs read them back.
	for addr, value := range map[uint16]uint8{
		0xFF00: 0xCF, // P1
		0xFF02: 0x7E, // SC
		0xFF10: 0x80, // NR10
		0xFF11: 0xBF, // NR11
		0xFF12: 0xF3, // NR12
		0xFF14: 0xBF, // NR14
		0xFF16: 0x3F, // NR21
		0xFF19: 0xBF, // NR24
		0xFF1A: 0x7F, // NR30
		0xFF1B: 0xFF, // NR31
		0xFF1C: 0x9F, // NR32
		0xFF1E: 0xBF, // NR33
		0xFF20: 0xFF, // NR41
		0xFF23: 0xBF, // NR44
		0xFF24: 0x77, // NR50
		0xFF25: 0xF3, // NR51
		0xFF26: 0xF1, // NR52
		0xFF40: 0x91, // LCDC
		0xFF44: 0x90, // LY
		0xFF47: 0xFC, // BGP
		0xFF48: 0xFF, // OBP0
		0xFF49: 0xFF, // OBP1
	} {
		m.io[addr-0xFF00] = value
	}

	return m
}

// LoadROM maps the given cartridge data at 0x0000.
func (m *MMU) LoadROM(data []byte) {
	m.rom = make([]uint8, len(data))
	copy(m.rom, data)
	m.Log.Infof("loaded %d byte ROM", len(data))
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return *m.Reference(address)
}

// Write sets the byte at the given address. Writes to the ROM region
// are ignored.
func (m *MMU) Write(address uint16, value uint8) {
	if address < 0x8000 {
		return
	}
	*m.Reference(address) = value
}

// Reference returns a mutable reference to the byte at the given
// address, so that read-modify-write operations need only decode the
// address once. Unmapped addresses yield a reference that always
// reads 0xFF.
func (m *MMU) Reference(address uint16) *uint8 {
	switch {
	case address < 0x8000:
		if int(address) < len(m.rom) {
			return &m.rom[address]
		}
	case address < 0xA000:
		return &m.vram[address-0x8000]
	case address < 0xC000:
		return &m.eram[address-0xA000]
	case address < 0xE000:
		return &m.wram[address-0xC000]
	case address < 0xFE00:
		// echo RAM mirrors work RAM
		return &m.wram[address-0xE000]
	case address < 0xFEA0:
		return &m.oam[address-0xFE00]
	case address >= 0xFF00 && address < 0xFF80:
		return &m.io[address-0xFF00]
	case address >= 0xFF80 && address < 0xFFFF:
		return &m.hram[address-0xFF80]
	case address == 0xFFFF:
		return &m.ie
	}

	m.open = 0xFF
	return &m.open
}
