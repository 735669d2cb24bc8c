package lib

import "fmt"

// Stack lives at $0100 + SP; SP wraps modulo 256 on push/pull.
const stackBase uint16 = 0x0100

// CPU holds the 6502's visible register state. Bit U of P always reads as
// 1 and bit B always reads as 0 in the live register; B is materialized
// only when P is pushed to the stack (PHP, BRK).
type CPU struct {
	A  byte
	X  byte
	Y  byte
	PC uint16
	SP byte
	P  byte

	Bus *Bus

	// Halted is set once the fetch/decode loop hits the BAD-opcode
	// sentinel; Step becomes a no-op once this is true.
	Halted bool
}

// NewCPU constructs a processor wired to bus and puts it in the startup
// state nestest expects: PC=$C000, A=X=Y=$00, SP=$FD, P=$24 (I=1, U=1).
// Real hardware instead loads PC from the reset vector at $FFFC/$FFFD;
// Reset implements that path for callers that want it.
func NewCPU(bus *Bus) *CPU {
	cpu := &CPU{Bus: bus}
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xfd
	cpu.P = FlagInterruptDisable | FlagUnused
	cpu.PC = 0xc000
	return cpu
}

// Reset restores startup register values and loads PC from the reset
// vector, the behavior a real 6502 performs on power-on/reset.
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xfd
	cpu.P = FlagInterruptDisable | FlagUnused
	cpu.PC = cpu.Bus.Read16(ResetVector)
	cpu.Halted = false
}

func (cpu *CPU) GetCarryFlag() bool    { return getFlag(cpu.P, FlagCarry) }
func (cpu *CPU) GetZeroFlag() bool     { return getFlag(cpu.P, FlagZero) }
func (cpu *CPU) GetNegativeFlag() bool { return getFlag(cpu.P, FlagNegative) }
func (cpu *CPU) GetOverflowFlag() bool { return getFlag(cpu.P, FlagOverflow) }
func (cpu *CPU) GetDecimalFlag() bool  { return getFlag(cpu.P, FlagDecimal) }
func (cpu *CPU) GetInterruptDisableFlag() bool {
	return getFlag(cpu.P, FlagInterruptDisable)
}

func (cpu *CPU) SetCarryFlag(on bool)    { cpu.P = setFlag(cpu.P, FlagCarry, on) }
func (cpu *CPU) SetZeroFlag(on bool)     { cpu.P = setFlag(cpu.P, FlagZero, on) }
func (cpu *CPU) SetNegativeFlag(on bool) { cpu.P = setFlag(cpu.P, FlagNegative, on) }
func (cpu *CPU) SetOverflowFlag(on bool) { cpu.P = setFlag(cpu.P, FlagOverflow, on) }
func (cpu *CPU) SetDecimalFlag(on bool)  { cpu.P = setFlag(cpu.P, FlagDecimal, on) }
func (cpu *CPU) SetInterruptDisableFlag(on bool) {
	cpu.P = setFlag(cpu.P, FlagInterruptDisable, on)
}

// updateZN sets Z and N from the 8-bit result of a load, transfer, or
// arithmetic-logic operation (spec.md §4.5).
func (cpu *CPU) updateZN(result byte) {
	cpu.SetZeroFlag(result == 0)
	cpu.SetNegativeFlag(result&0x80 != 0)
}

// liveStatus is P as a live register always observes it: U forced to 1,
// B forced to 0.
func (cpu *CPU) liveStatus() byte {
	return setFlag(setFlag(cpu.P, FlagUnused, true), FlagBreak, false)
}

// Status exposes liveStatus to callers outside the package, such as a
// debugger UI rendering the register panel.
func (cpu *CPU) Status() byte {
	return cpu.liveStatus()
}

func (cpu *CPU) push(value byte) {
	cpu.Bus.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop() byte {
	cpu.SP++
	return cpu.Bus.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(byte(value >> 8))
	cpu.push(byte(value))
}

func (cpu *CPU) popWord() uint16 {
	low := cpu.pop()
	high := cpu.pop()
	return littleEndian(low, high)
}

// Step fetches, decodes, and executes one instruction, returning a
// snapshot of the processor as it stood immediately before execution (the
// form the tracer needs, spec.md §4.6) plus the retired instruction's raw
// bytes. The unknown ("BAD") opcode sets Halted and returns without
// mutating any other state.
func (cpu *CPU) Step() (Snapshot, error) {
	opcode := cpu.Bus.Read(cpu.PC)
	entry, ok := opcodeTable[opcode]
	if !ok {
		cpu.Halted = true
		return Snapshot{}, fmt.Errorf("unknown opcode 0x%02x at 0x%04x", opcode, cpu.PC)
	}

	raw := make([]byte, entry.Length)
	for i := 0; i < int(entry.Length); i++ {
		raw[i] = cpu.Bus.Read(cpu.PC + uint16(i))
	}

	instruction := Instruction{Mnemonic: entry.Mnemonic, Bytes: raw, Length: entry.Length}
	snapshot := cpu.Snapshot(instruction)

	operand := resolveOperand(cpu, cpu.Bus, entry.Mode, raw)

	if !entry.ControlFlow {
		cpu.PC += uint16(entry.Length)
	}

	entry.Operation(cpu, operand)

	return snapshot, nil
}

// Instruction is the retired-instruction record used for tracing: its
// mnemonic and raw bytes (length 1-3).
type Instruction struct {
	Mnemonic string
	Bytes    []byte
	Length   byte
}
