// Package gameboy wires the CPU, memory, interrupt and timer
// components together and drives them frame by frame.
package gameboy

import (
	"github.com/sirupsen/logrus"

	"github.com/sm83go/sm83/internal/cpu"
	"github.com/sm83go/sm83/internal/interrupts"
	"github.com/sm83go/sm83/internal/mmu"
	"github.com/sm83go/sm83/internal/timer"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / 60
)

// GameBoy contains all the components of the machine. It is the main
// entry point for running code.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	Timer      *timer.Controller

	log *logrus.Logger
}

// GameBoyOpt is a construction option for a GameBoy.
type GameBoyOpt func(gb *GameBoy)

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) GameBoyOpt {
	return func(gb *GameBoy) {
		gb.log = l
		gb.MMU.Log = l
	}
}

// NewGameBoy returns a GameBoy with the given cartridge data mapped
// into memory.
func NewGameBoy(rom []byte, opts ...GameBoyOpt) *GameBoy {
	memBus := mmu.New()
	memBus.LoadROM(rom)
	irq := interrupts.NewService(memBus)
	timerCtl := timer.NewController(memBus, irq)

	g := &GameBoy{
		CPU:        cpu.New(memBus, irq, timerCtl),
		MMU:        memBus,
		Interrupts: irq,
		Timer:      timerCtl,
		log:        memBus.Log,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Frame steps the CPU for one frame's worth of cycles. It returns the
// first error encountered, leaving the machine state at the failing
// cycle.
func (g *GameBoy) Frame() error {
	for i := 0; i < CyclesPerFrame; i++ {
		if err := g.CPU.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the given number of frames, or runs until an error
// when frames is 0.
func (g *GameBoy) Run(frames int) error {
	for i := 0; frames == 0 || i < frames; i++ {
		if err := g.Frame(); err != nil {
			g.log.WithError(err).Errorf("stopped after %d frames", i)
			return err
		}
	}
	return nil
}
