package lib

import (
	"os"
	"testing"
)

func writeTestRom(test *testing.T, prgPages byte, chrPages byte) string {
	file, err := os.CreateTemp(test.TempDir(), "*.nes")
	if err != nil {
		test.Fatalf("could not create temp rom: %v", err)
	}
	defer file.Close()

	header := make([]byte, 16)
	copy(header, inesMagic)
	header[4] = prgPages
	header[5] = chrPages

	if _, err := file.Write(header); err != nil {
		test.Fatalf("could not write header: %v", err)
	}

	prg := make([]byte, int(prgPages)*prgPageSize)
	if len(prg) > 0 {
		prg[0] = 0xea
		prg[len(prg)-1] = 0x60
	}
	if _, err := file.Write(prg); err != nil {
		test.Fatalf("could not write prg: %v", err)
	}

	chr := make([]byte, int(chrPages)*chrPageSize)
	if _, err := file.Write(chr); err != nil {
		test.Fatalf("could not write chr: %v", err)
	}

	return file.Name()
}

func TestParseCartridgeSinglePage(test *testing.T) {
	path := writeTestRom(test, 1, 1)

	cartridge, err := ParseCartridge(path)
	if err != nil {
		test.Fatalf("could not parse rom: %v", err)
	}

	if cartridge.PRGPages != 1 {
		test.Fatalf("expected 1 prg page, got %v", cartridge.PRGPages)
	}

	if cartridge.PRGLow(0) != 0xea {
		test.Fatalf("expected low bank first byte 0xea, got 0x%02x", cartridge.PRGLow(0))
	}

	if cartridge.PRGHigh(0) != 0xea {
		test.Fatalf("expected single-page rom's high bank to equal the low bank, got 0x%02x", cartridge.PRGHigh(0))
	}
}

func TestParseCartridgeTwoPages(test *testing.T) {
	path := writeTestRom(test, 2, 0)

	cartridge, err := ParseCartridge(path)
	if err != nil {
		test.Fatalf("could not parse rom: %v", err)
	}

	if cartridge.PRGLow(0) == cartridge.PRGHigh(0) {
		test.Fatalf("expected two distinct prg pages to differ at offset 0")
	}
}

func TestParseCartridgeRejectsBadMagic(test *testing.T) {
	file, err := os.CreateTemp(test.TempDir(), "*.nes")
	if err != nil {
		test.Fatalf("could not create temp rom: %v", err)
	}
	defer file.Close()

	if _, err := file.Write(make([]byte, 16)); err != nil {
		test.Fatalf("could not write header: %v", err)
	}

	_, err = ParseCartridge(file.Name())
	if err == nil {
		test.Fatalf("expected an error for a file missing the ines magic")
	}
}
