package cpu

import (
	"github.com/sm83go/sm83/pkg/utils"
)

// Registers contains the 8-bit registers of the CPU. The 16-bit views
// BC, DE, HL and AF are composed on demand from their halves; there is
// no aliased storage to keep in sync.
type Registers struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// BC returns the combined value of the B and C registers.
func (r *Registers) BC() uint16 {
	return utils.BytesToUint16(r.B, r.C)
}

// SetBC sets the B and C registers from the given 16-bit value.
func (r *Registers) SetBC(value uint16) {
	r.B, r.C = utils.Uint16ToBytes(value)
}

// DE returns the combined value of the D and E registers.
func (r *Registers) DE() uint16 {
	return utils.BytesToUint16(r.D, r.E)
}

// SetDE sets the D and E registers from the given 16-bit value.
func (r *Registers) SetDE(value uint16) {
	r.D, r.E = utils.Uint16ToBytes(value)
}

// HL returns the combined value of the H and L registers.
func (r *Registers) HL() uint16 {
	return utils.BytesToUint16(r.H, r.L)
}

// SetHL sets the H and L registers from the given 16-bit value.
func (r *Registers) SetHL(value uint16) {
	r.H, r.L = utils.Uint16ToBytes(value)
}

// AF returns the combined value of the A and F registers.
func (r *Registers) AF() uint16 {
	return utils.BytesToUint16(r.A, r.F)
}

// SetAF sets the A and F registers from the given 16-bit value. The
// low nibble of F does not exist in hardware and is always 0.
func (r *Registers) SetAF(value uint16) {
	r.A, r.F = utils.Uint16ToBytes(value)
	r.F &= 0xF0
}
