package lib

import (
	"bufio"
	"fmt"
	"io"
)

// Snapshot captures the processor state the tracer formats a line from.
// It is taken before the instruction executes, as spec.md §4.6 requires.
type Snapshot struct {
	PC          uint16
	A           byte
	X           byte
	Y           byte
	P           byte
	SP          byte
	Instruction Instruction
}

func (cpu *CPU) Snapshot(instruction Instruction) Snapshot {
	return Snapshot{
		PC:          cpu.PC,
		A:           cpu.A,
		X:           cpu.X,
		Y:           cpu.Y,
		P:           cpu.liveStatus(),
		SP:          cpu.SP,
		Instruction: instruction,
	}
}

// Format renders a snapshot as one nestest-compatible trace line:
//
//	PPPP  B0 B1 B2  MMM  A:AA X:XX Y:YY P:PP SP:SS
//
// Instruction bytes shorter than three are padded with blanks so every
// line's mnemonic column lines up, matching the golden nestest.log layout.
func (snapshot Snapshot) Format() string {
	var bytesField [3]string
	for i := 0; i < 3; i++ {
		if i < len(snapshot.Instruction.Bytes) {
			bytesField[i] = fmt.Sprintf("%02X", snapshot.Instruction.Bytes[i])
		} else {
			bytesField[i] = "  "
		}
	}

	return fmt.Sprintf("%04X  %s %s %s  %s  A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		snapshot.PC,
		bytesField[0], bytesField[1], bytesField[2],
		snapshot.Instruction.Mnemonic,
		snapshot.A, snapshot.X, snapshot.Y, snapshot.P, snapshot.SP)
}

// Tracer writes one formatted line per retired instruction to an
// underlying writer, buffering but preserving instruction order (spec.md
// §5: no reordering, no suspension points).
type Tracer struct {
	writer *bufio.Writer
}

func NewTracer(w io.Writer) *Tracer {
	return &Tracer{writer: bufio.NewWriter(w)}
}

func (tracer *Tracer) Write(snapshot Snapshot) error {
	_, err := fmt.Fprintln(tracer.writer, snapshot.Format())
	return err
}

func (tracer *Tracer) Flush() error {
	return tracer.writer.Flush()
}
