// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/ezrec/birth/asm"
	"github.com/ezrec/birth/cart"
	"github.com/ezrec/birth/emulator"
	"github.com/ezrec/birth/translate"
)

func main() {
	var frames int
	var screen string
	var source string
	var verbose bool

	flag.IntVar(&frames, "frames", 60, "Maximum number of frames to run")
	flag.StringVar(&screen, "png", "", "Write the final screen to a .png file")
	flag.StringVar(&source, "s", "", ".asm source of the cartridge, for line numbers")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	path := "game" + cart.EXTENSION
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	cartridge, err := cart.Load(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	translate.Logf("%v: cartridge loaded", path)
	translate.Logf("  code: %d bytes", len(cartridge.Code))
	translate.Logf("  gfx:  %d bytes", len(cartridge.Gfx))

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if len(source) != 0 {
		text, err := os.ReadFile(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		prog, err := (&asm.Assembler{}).Parse(strings.NewReader(string(text)))
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		emu.Program = prog
	}

	err = emu.Boot(cartridge)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	frame := 0
	for ; frame < frames; frame++ {
		done, err := emu.Frame()
		if err != nil {
			log.Printf("%v: %v", path, err)
			break
		}
		if done {
			break
		}
	}

	translate.Logf("%v: %d frames, %d instructions", path, frame, emu.Ticks)
	log.Print(emu.String())

	if len(screen) != 0 {
		ouf, err := os.Create(screen)
		if err != nil {
			log.Fatalf("%v: %v", screen, err)
		}
		defer ouf.Close()

		err = png.Encode(ouf, emu.Screen)
		if err != nil {
			log.Fatalf("%v: %v", screen, err)
		}
	}
}
