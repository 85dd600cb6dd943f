// Package types holds the handful of constants shared between the CPU
// core and its collaborators: the memory-mapped hardware register
// addresses and the individual bit values.
package types

// HardwareAddress represents the address of a hardware register. The
// hardware IO registers are mapped to 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// DIV is the address of the free-running divider register. It
	// increments once every 256 cycles, regardless of the TAC register.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the timer counter register. It is
	// incremented at the rate selected by TAC, and on overflow it is
	// reloaded from TMA and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the timer modulo register, the value TIMA
	// is reloaded with when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the timer control register.
	//
	//  Bit 2:   Timer enable
	//  Bit 1-0: Input clock select (1024, 16, 64 or 256 cycles)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the interrupt request register. Setting a
	// bit requests the corresponding interrupt.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer Interrupt Request (INT 50h)
	//  Bit 3: Serial Interrupt Request (INT 58h)
	//  Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the interrupt enable register. A requested
	// interrupt is only serviced when its bit is also set here.
	IE HardwareAddress = 0xFFFF
)
