// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/birth/asm"
	"github.com/ezrec/birth/cart"
	"github.com/ezrec/birth/gfx"
	"github.com/ezrec/birth/translate"
)

// Cartridge file written by the assembler.
const OUTPUT = "game" + cart.EXTENSION

// loadGraphics converts an image to tile graphics. Any failure yields an
// empty graphics section.
func loadGraphics(path string) (data []byte) {
	if len(path) == 0 {
		return
	}

	translate.Logf("%v: converting graphics", path)

	data, err := gfx.Load(path)
	if err != nil {
		translate.Logf("warning: %v: %v; cartridge will have no graphics", path, err)
		data = nil
	}

	return
}

// build assembles source, with optional graphics, into a cartridge saved as
// output. Nothing is written if the source fails to assemble.
func build(assembler *asm.Assembler, source, graphics, output string, listing io.Writer) (cartridge *cart.Cartridge, err error) {
	// Graphics are converted first; a failure only drops the section.
	gfxData := loadGraphics(graphics)

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	translate.Logf("%v: assembling", source)

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if listing != nil {
		err = prog.Listing(listing)
		if err != nil {
			return
		}
	}

	cartridge = cart.New(prog.Code(), gfxData)
	err = cartridge.Save(output)
	if err != nil {
		cartridge = nil
	}

	return
}

func main() {
	var verbose bool
	var strict bool
	var listing bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "strict", false, "Reject unknown mnemonics, duplicate labels and out of range bytes")
	flag.BoolVar(&listing, "l", false, "Print a listing of the assembled code")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] game.asm [graphics.png]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	source := flag.Arg(0)
	graphics := flag.Arg(1)

	var out io.Writer
	if listing {
		out = os.Stdout
	}

	assembler := &asm.Assembler{Verbose: verbose, Strict: strict}
	cartridge, err := build(assembler, source, graphics, OUTPUT, out)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	translate.Logf("%v: generated", OUTPUT)
	translate.Logf("  code size: %d bytes", len(cartridge.Code))
	translate.Logf("  gfx size:  %d bytes", len(cartridge.Gfx))
}
