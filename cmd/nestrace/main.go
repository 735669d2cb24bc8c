package main

import (
	"flag"
	"io"
	"log"
	"os"

	nes "nestrace/lib"
)

func main() {
	romPath := flag.String("rom", "nestest.nes", "path to an iNES rom file")
	debug := flag.Bool("debug", false, "log startup diagnostics to stderr")
	flag.Parse()

	if !*debug {
		log.SetOutput(io.Discard)
	}

	cartridge, err := nes.ParseCartridge(*romPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("could not load %v: %v", *romPath, err)
	}

	bus := nes.NewBus(cartridge)
	cpu := nes.NewCPU(bus)

	tracer := nes.NewTracer(os.Stdout)

	for {
		snapshot, err := cpu.Step()
		if err != nil {
			break
		}
		if err := tracer.Write(snapshot); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("could not write trace line: %v", err)
		}
	}

	if err := tracer.Flush(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("could not flush trace output: %v", err)
	}
}
