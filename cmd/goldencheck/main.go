// goldencheck runs a rom through the core and diffs the emitted trace
// against a golden nestest-format log, in the style of the teacher's
// test/all-test pass/fail harness.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"nestrace/internal/report"
	nes "nestrace/lib"
)

const maxMismatchesShown = 10

func readGoldenLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open golden log %q: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func run(romPath string, goldenPath string) (total int, mismatches int, err error) {
	cartridge, err := nes.ParseCartridge(romPath)
	if err != nil {
		return 0, 0, err
	}

	golden, err := readGoldenLines(goldenPath)
	if err != nil {
		return 0, 0, err
	}

	bus := nes.NewBus(cartridge)
	cpu := nes.NewCPU(bus)

	for i := 0; i < len(golden); i++ {
		snapshot, err := cpu.Step()
		if err != nil {
			log.Printf("core halted at line %v: %v", i+1, err)
			return i, mismatches, nil
		}

		total++
		actual := snapshot.Format()
		if actual != golden[i] {
			mismatches++
			if mismatches <= maxMismatchesShown {
				log.Print(report.Mismatch(i+1, golden[i], actual))
			}
		}
	}

	return total, mismatches, nil
}

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: goldencheck <rom> <golden.log>")
	}

	romPath := os.Args[1]
	total, mismatches, err := run(romPath, os.Args[2])
	if err != nil {
		log.Fatalf("goldencheck failed with an error: %v", err)
	}

	log.Print(report.Summary(romPath, total, mismatches))
	if mismatches != 0 {
		os.Exit(1)
	}
}
