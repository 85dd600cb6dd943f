package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/sm83go/sm83/internal/gameboy"
	"github.com/sm83go/sm83/pkg/utils"
)

func main() {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	romFile := flag.String("rom", "", "The rom file to load")
	frames := flag.Int("frames", 0, "The number of frames to run (0 runs until an error)")
	flag.Parse()

	if *romFile == "" {
		logger.Fatal("no rom file provided")
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.WithError(err).Fatalf("unable to load rom %s", *romFile)
	}

	gb := gameboy.NewGameBoy(rom, gameboy.WithLogger(logger))
	if err := gb.Run(*frames); err != nil {
		logger.WithError(err).Fatal("execution stopped")
	}

	c := gb.CPU
	logger.Infof("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}
