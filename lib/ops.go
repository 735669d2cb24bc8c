package lib

// Each operation receives the CPU and the already-resolved operand for its
// addressing mode (spec.md §4.5's per-opcode-family flag policy). Control
// transfer operations (JMP, JSR, RTS, RTI, BRK, taken branches) manage PC
// themselves; every other operation leaves PC where Step already advanced
// it to.

// addWithCarry implements the 6502's binary (non-decimal) add: used
// directly by ADC, and by SBC via the invert-operand trick the hardware
// itself uses (spec.md §4.5: "SBC: equivalent to ADC with M replaced by
// M XOR 0xFF").
func addWithCarry(cpu *CPU, value byte) {
	carry := byte(0)
	if cpu.GetCarryFlag() {
		carry = 1
	}
	a := cpu.A
	sum := uint16(a) + uint16(value) + uint16(carry)
	result := byte(sum)

	cpu.SetCarryFlag(sum > 0xff)
	cpu.SetOverflowFlag((a^result)&(value^result)&0x80 != 0)
	cpu.A = result
	cpu.updateZN(result)
}

func opADC(cpu *CPU, op operand) { addWithCarry(cpu, op.Load()) }
func opSBC(cpu *CPU, op operand) { addWithCarry(cpu, op.Load()^0xff) }

func opAND(cpu *CPU, op operand) {
	cpu.A &= op.Load()
	cpu.updateZN(cpu.A)
}

func opORA(cpu *CPU, op operand) {
	cpu.A |= op.Load()
	cpu.updateZN(cpu.A)
}

func opEOR(cpu *CPU, op operand) {
	cpu.A ^= op.Load()
	cpu.updateZN(cpu.A)
}

func opASL(cpu *CPU, op operand) {
	value := op.Load()
	cpu.SetCarryFlag(value&0x80 != 0)
	result := value << 1
	op.Store(result)
	cpu.updateZN(result)
}

func opLSR(cpu *CPU, op operand) {
	value := op.Load()
	cpu.SetCarryFlag(value&0x01 != 0)
	result := value >> 1
	op.Store(result)
	cpu.updateZN(result)
}

func opROL(cpu *CPU, op operand) {
	value := op.Load()
	oldCarry := byte(0)
	if cpu.GetCarryFlag() {
		oldCarry = 1
	}
	cpu.SetCarryFlag(value&0x80 != 0)
	result := (value << 1) | oldCarry
	op.Store(result)
	cpu.updateZN(result)
}

func opROR(cpu *CPU, op operand) {
	value := op.Load()
	oldCarry := byte(0)
	if cpu.GetCarryFlag() {
		oldCarry = 0x80
	}
	cpu.SetCarryFlag(value&0x01 != 0)
	result := (value >> 1) | oldCarry
	op.Store(result)
	cpu.updateZN(result)
}

func opBIT(cpu *CPU, op operand) {
	value := op.Load()
	cpu.SetZeroFlag(cpu.A&value == 0)
	cpu.SetOverflowFlag(value&0x40 != 0)
	cpu.SetNegativeFlag(value&0x80 != 0)
}

func compare(cpu *CPU, register byte, value byte) {
	diff := register - value
	cpu.SetCarryFlag(register >= value)
	cpu.SetZeroFlag(register == value)
	cpu.SetNegativeFlag(diff&0x80 != 0)
}

func opCMP(cpu *CPU, op operand) { compare(cpu, cpu.A, op.Load()) }
func opCPX(cpu *CPU, op operand) { compare(cpu, cpu.X, op.Load()) }
func opCPY(cpu *CPU, op operand) { compare(cpu, cpu.Y, op.Load()) }

func opDEC(cpu *CPU, op operand) {
	result := op.Load() - 1
	op.Store(result)
	cpu.updateZN(result)
}

func opINC(cpu *CPU, op operand) {
	result := op.Load() + 1
	op.Store(result)
	cpu.updateZN(result)
}

func opDEX(cpu *CPU, op operand) { cpu.X--; cpu.updateZN(cpu.X) }
func opDEY(cpu *CPU, op operand) { cpu.Y--; cpu.updateZN(cpu.Y) }
func opINX(cpu *CPU, op operand) { cpu.X++; cpu.updateZN(cpu.X) }
func opINY(cpu *CPU, op operand) { cpu.Y++; cpu.updateZN(cpu.Y) }

func opLDA(cpu *CPU, op operand) { cpu.A = op.Load(); cpu.updateZN(cpu.A) }
func opLDX(cpu *CPU, op operand) { cpu.X = op.Load(); cpu.updateZN(cpu.X) }
func opLDY(cpu *CPU, op operand) { cpu.Y = op.Load(); cpu.updateZN(cpu.Y) }

func opSTA(cpu *CPU, op operand) { op.Store(cpu.A) }
func opSTX(cpu *CPU, op operand) { op.Store(cpu.X) }
func opSTY(cpu *CPU, op operand) { op.Store(cpu.Y) }

func opTAX(cpu *CPU, op operand) { cpu.X = cpu.A; cpu.updateZN(cpu.X) }
func opTAY(cpu *CPU, op operand) { cpu.Y = cpu.A; cpu.updateZN(cpu.Y) }
func opTXA(cpu *CPU, op operand) { cpu.A = cpu.X; cpu.updateZN(cpu.A) }
func opTYA(cpu *CPU, op operand) { cpu.A = cpu.Y; cpu.updateZN(cpu.A) }
func opTSX(cpu *CPU, op operand) { cpu.X = cpu.SP; cpu.updateZN(cpu.X) }
func opTXS(cpu *CPU, op operand) { cpu.SP = cpu.X }

func opCLC(cpu *CPU, op operand) { cpu.SetCarryFlag(false) }
func opSEC(cpu *CPU, op operand) { cpu.SetCarryFlag(true) }
func opCLI(cpu *CPU, op operand) { cpu.SetInterruptDisableFlag(false) }
func opSEI(cpu *CPU, op operand) { cpu.SetInterruptDisableFlag(true) }
func opCLV(cpu *CPU, op operand) { cpu.SetOverflowFlag(false) }
func opCLD(cpu *CPU, op operand) { cpu.SetDecimalFlag(false) }
func opSED(cpu *CPU, op operand) { cpu.SetDecimalFlag(true) }

func opNOP(cpu *CPU, op operand) {}

func opPHA(cpu *CPU, op operand) { cpu.push(cpu.A) }
func opPHP(cpu *CPU, op operand) { cpu.push(cpu.P | FlagBreak | FlagUnused) }

func opPLA(cpu *CPU, op operand) {
	cpu.A = cpu.pop()
	cpu.updateZN(cpu.A)
}

func opPLP(cpu *CPU, op operand) {
	cpu.P = cpu.pop()
	cpu.P = setFlag(cpu.P, FlagBreak, false)
	cpu.P = setFlag(cpu.P, FlagUnused, true)
}

func opJMP(cpu *CPU, op operand) { cpu.PC = op.address }

func opJSR(cpu *CPU, op operand) {
	cpu.pushWord(cpu.PC + 2)
	cpu.PC = op.address
}

func opRTS(cpu *CPU, op operand) {
	cpu.PC = cpu.popWord() + 1
}

func opRTI(cpu *CPU, op operand) {
	cpu.P = cpu.pop()
	cpu.P = setFlag(cpu.P, FlagBreak, false)
	cpu.P = setFlag(cpu.P, FlagUnused, true)
	cpu.PC = cpu.popWord()
}

func opBRK(cpu *CPU, op operand) {
	cpu.PC += 2
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.P | FlagBreak | FlagUnused)
	cpu.SetInterruptDisableFlag(true)
	cpu.PC = cpu.Bus.Read16(IRQVector)
}

func branch(cpu *CPU, op operand, taken bool) {
	if !taken {
		return
	}
	offset := int8(op.Load())
	cpu.PC = uint16(int32(cpu.PC) + int32(offset))
}

func opBCC(cpu *CPU, op operand) { branch(cpu, op, !cpu.GetCarryFlag()) }
func opBCS(cpu *CPU, op operand) { branch(cpu, op, cpu.GetCarryFlag()) }
func opBNE(cpu *CPU, op operand) { branch(cpu, op, !cpu.GetZeroFlag()) }
func opBEQ(cpu *CPU, op operand) { branch(cpu, op, cpu.GetZeroFlag()) }
func opBPL(cpu *CPU, op operand) { branch(cpu, op, !cpu.GetNegativeFlag()) }
func opBMI(cpu *CPU, op operand) { branch(cpu, op, cpu.GetNegativeFlag()) }
func opBVC(cpu *CPU, op operand) { branch(cpu, op, !cpu.GetOverflowFlag()) }
func opBVS(cpu *CPU, op operand) { branch(cpu, op, cpu.GetOverflowFlag()) }
