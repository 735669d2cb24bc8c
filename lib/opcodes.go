package lib

// opcodeEntry is one row of the 256-entry decode table: opcode byte maps
// to a mnemonic, addressing mode, instruction byte length, and the
// operation that executes it (spec.md §9 Design Notes' recommended
// factoring over a nested opcode/mode switch).
type opcodeEntry struct {
	Mnemonic string
	Mode     AddressingMode
	Length   byte
	// ControlFlow opcodes (JMP, JSR, RTS, RTI, BRK) set PC themselves;
	// Step does not auto-advance PC for them.
	ControlFlow bool
	Operation   func(*CPU, operand)
}

func entry(mnemonic string, mode AddressingMode, length byte, op func(*CPU, operand)) opcodeEntry {
	return opcodeEntry{Mnemonic: mnemonic, Mode: mode, Length: length, Operation: op}
}

func controlFlowEntry(mnemonic string, mode AddressingMode, length byte, op func(*CPU, operand)) opcodeEntry {
	return opcodeEntry{Mnemonic: mnemonic, Mode: mode, Length: length, ControlFlow: true, Operation: op}
}

// opcodeTable covers every documented 6502 opcode plus the illegal-NOP
// family nestest exercises (spec.md §4.5). Every other byte value is
// absent and decodes as the BAD halt sentinel.
var opcodeTable = map[byte]opcodeEntry{
	0x00: controlFlowEntry("BRK", ModeImplied, 1, opBRK),
	0x01: entry("ORA", ModeIndirectX, 2, opORA),
	0x05: entry("ORA", ModeZeroPage, 2, opORA),
	0x06: entry("ASL", ModeZeroPage, 2, opASL),
	0x08: entry("PHP", ModeImplied, 1, opPHP),
	0x09: entry("ORA", ModeImmediate, 2, opORA),
	0x0a: entry("ASL", ModeAccumulator, 1, opASL),
	0x0d: entry("ORA", ModeAbsolute, 3, opORA),
	0x0e: entry("ASL", ModeAbsolute, 3, opASL),
	0x10: entry("BPL", ModeRelative, 2, opBPL),
	0x11: entry("ORA", ModeIndirectY, 2, opORA),
	0x15: entry("ORA", ModeZeroPageX, 2, opORA),
	0x16: entry("ASL", ModeZeroPageX, 2, opASL),
	0x18: entry("CLC", ModeImplied, 1, opCLC),
	0x19: entry("ORA", ModeAbsoluteY, 3, opORA),
	0x1d: entry("ORA", ModeAbsoluteX, 3, opORA),
	0x1e: entry("ASL", ModeAbsoluteX, 3, opASL),
	0x20: controlFlowEntry("JSR", ModeAbsolute, 3, opJSR),
	0x21: entry("AND", ModeIndirectX, 2, opAND),
	0x24: entry("BIT", ModeZeroPage, 2, opBIT),
	0x25: entry("AND", ModeZeroPage, 2, opAND),
	0x26: entry("ROL", ModeZeroPage, 2, opROL),
	0x28: entry("PLP", ModeImplied, 1, opPLP),
	0x29: entry("AND", ModeImmediate, 2, opAND),
	0x2a: entry("ROL", ModeAccumulator, 1, opROL),
	0x2c: entry("BIT", ModeAbsolute, 3, opBIT),
	0x2d: entry("AND", ModeAbsolute, 3, opAND),
	0x2e: entry("ROL", ModeAbsolute, 3, opROL),
	0x30: entry("BMI", ModeRelative, 2, opBMI),
	0x31: entry("AND", ModeIndirectY, 2, opAND),
	0x35: entry("AND", ModeZeroPageX, 2, opAND),
	0x36: entry("ROL", ModeZeroPageX, 2, opROL),
	0x38: entry("SEC", ModeImplied, 1, opSEC),
	0x39: entry("AND", ModeAbsoluteY, 3, opAND),
	0x3d: entry("AND", ModeAbsoluteX, 3, opAND),
	0x3e: entry("ROL", ModeAbsoluteX, 3, opROL),
	0x40: controlFlowEntry("RTI", ModeImplied, 1, opRTI),
	0x41: entry("EOR", ModeIndirectX, 2, opEOR),
	0x45: entry("EOR", ModeZeroPage, 2, opEOR),
	0x46: entry("LSR", ModeZeroPage, 2, opLSR),
	0x48: entry("PHA", ModeImplied, 1, opPHA),
	0x49: entry("EOR", ModeImmediate, 2, opEOR),
	0x4a: entry("LSR", ModeAccumulator, 1, opLSR),
	0x4c: controlFlowEntry("JMP", ModeAbsolute, 3, opJMP),
	0x4d: entry("EOR", ModeAbsolute, 3, opEOR),
	0x4e: entry("LSR", ModeAbsolute, 3, opLSR),
	0x50: entry("BVC", ModeRelative, 2, opBVC),
	0x51: entry("EOR", ModeIndirectY, 2, opEOR),
	0x55: entry("EOR", ModeZeroPageX, 2, opEOR),
	0x56: entry("LSR", ModeZeroPageX, 2, opLSR),
	0x58: entry("CLI", ModeImplied, 1, opCLI),
	0x59: entry("EOR", ModeAbsoluteY, 3, opEOR),
	0x5d: entry("EOR", ModeAbsoluteX, 3, opEOR),
	0x5e: entry("LSR", ModeAbsoluteX, 3, opLSR),
	0x60: controlFlowEntry("RTS", ModeImplied, 1, opRTS),
	0x61: entry("ADC", ModeIndirectX, 2, opADC),
	0x65: entry("ADC", ModeZeroPage, 2, opADC),
	0x66: entry("ROR", ModeZeroPage, 2, opROR),
	0x68: entry("PLA", ModeImplied, 1, opPLA),
	0x69: entry("ADC", ModeImmediate, 2, opADC),
	0x6a: entry("ROR", ModeAccumulator, 1, opROR),
	0x6c: controlFlowEntry("JMP", ModeIndirect, 3, opJMP),
	0x6d: entry("ADC", ModeAbsolute, 3, opADC),
	0x6e: entry("ROR", ModeAbsolute, 3, opROR),
	0x70: entry("BVS", ModeRelative, 2, opBVS),
	0x71: entry("ADC", ModeIndirectY, 2, opADC),
	0x75: entry("ADC", ModeZeroPageX, 2, opADC),
	0x76: entry("ROR", ModeZeroPageX, 2, opROR),
	0x78: entry("SEI", ModeImplied, 1, opSEI),
	0x79: entry("ADC", ModeAbsoluteY, 3, opADC),
	0x7d: entry("ADC", ModeAbsoluteX, 3, opADC),
	0x7e: entry("ROR", ModeAbsoluteX, 3, opROR),

	0x80: entry("NOP", ModeImmediate, 2, opNOP),
	0x81: entry("STA", ModeIndirectX, 2, opSTA),
	0x82: entry("NOP", ModeImmediate, 2, opNOP),
	0x84: entry("STY", ModeZeroPage, 2, opSTY),
	0x85: entry("STA", ModeZeroPage, 2, opSTA),
	0x86: entry("STX", ModeZeroPage, 2, opSTX),
	0x88: entry("DEY", ModeImplied, 1, opDEY),
	0x89: entry("NOP", ModeImmediate, 2, opNOP),
	0x8a: entry("TXA", ModeImplied, 1, opTXA),
	0x8c: entry("STY", ModeAbsolute, 3, opSTY),
	0x8d: entry("STA", ModeAbsolute, 3, opSTA),
	0x8e: entry("STX", ModeAbsolute, 3, opSTX),
	0x90: entry("BCC", ModeRelative, 2, opBCC),
	0x91: entry("STA", ModeIndirectY, 2, opSTA),
	0x94: entry("STY", ModeZeroPageX, 2, opSTY),
	0x95: entry("STA", ModeZeroPageX, 2, opSTA),
	0x96: entry("STX", ModeZeroPageY, 2, opSTX),
	0x98: entry("TYA", ModeImplied, 1, opTYA),
	0x99: entry("STA", ModeAbsoluteY, 3, opSTA),
	0x9a: entry("TXS", ModeImplied, 1, opTXS),
	0x9d: entry("STA", ModeAbsoluteX, 3, opSTA),

	0xa0: entry("LDY", ModeImmediate, 2, opLDY),
	0xa1: entry("LDA", ModeIndirectX, 2, opLDA),
	0xa2: entry("LDX", ModeImmediate, 2, opLDX),
	0xa4: entry("LDY", ModeZeroPage, 2, opLDY),
	0xa5: entry("LDA", ModeZeroPage, 2, opLDA),
	0xa6: entry("LDX", ModeZeroPage, 2, opLDX),
	0xa8: entry("TAY", ModeImplied, 1, opTAY),
	0xa9: entry("LDA", ModeImmediate, 2, opLDA),
	0xaa: entry("TAX", ModeImplied, 1, opTAX),
	0xac: entry("LDY", ModeAbsolute, 3, opLDY),
	0xad: entry("LDA", ModeAbsolute, 3, opLDA),
	0xae: entry("LDX", ModeAbsolute, 3, opLDX),
	0xb0: entry("BCS", ModeRelative, 2, opBCS),
	0xb1: entry("LDA", ModeIndirectY, 2, opLDA),
	0xb4: entry("LDY", ModeZeroPageX, 2, opLDY),
	0xb5: entry("LDA", ModeZeroPageX, 2, opLDA),
	0xb6: entry("LDX", ModeZeroPageY, 2, opLDX),
	0xb8: entry("CLV", ModeImplied, 1, opCLV),
	0xb9: entry("LDA", ModeAbsoluteY, 3, opLDA),
	0xba: entry("TSX", ModeImplied, 1, opTSX),
	0xbc: entry("LDY", ModeAbsoluteX, 3, opLDY),
	0xbd: entry("LDA", ModeAbsoluteX, 3, opLDA),
	0xbe: entry("LDX", ModeAbsoluteY, 3, opLDX),

	0xc0: entry("CPY", ModeImmediate, 2, opCPY),
	0xc1: entry("CMP", ModeIndirectX, 2, opCMP),
	0xc2: entry("NOP", ModeImmediate, 2, opNOP),
	0xc4: entry("CPY", ModeZeroPage, 2, opCPY),
	0xc5: entry("CMP", ModeZeroPage, 2, opCMP),
	0xc6: entry("DEC", ModeZeroPage, 2, opDEC),
	0xc8: entry("INY", ModeImplied, 1, opINY),
	0xc9: entry("CMP", ModeImmediate, 2, opCMP),
	0xca: entry("DEX", ModeImplied, 1, opDEX),
	0xcc: entry("CPY", ModeAbsolute, 3, opCPY),
	0xcd: entry("CMP", ModeAbsolute, 3, opCMP),
	0xce: entry("DEC", ModeAbsolute, 3, opDEC),
	0xd0: entry("BNE", ModeRelative, 2, opBNE),
	0xd1: entry("CMP", ModeIndirectY, 2, opCMP),
	0xd5: entry("CMP", ModeZeroPageX, 2, opCMP),
	0xd6: entry("DEC", ModeZeroPageX, 2, opDEC),
	0xd8: entry("CLD", ModeImplied, 1, opCLD),
	0xd9: entry("CMP", ModeAbsoluteY, 3, opCMP),
	0xdd: entry("CMP", ModeAbsoluteX, 3, opCMP),
	0xde: entry("DEC", ModeAbsoluteX, 3, opDEC),

	0xe0: entry("CPX", ModeImmediate, 2, opCPX),
	0xe1: entry("SBC", ModeIndirectX, 2, opSBC),
	0xe2: entry("NOP", ModeImmediate, 2, opNOP),
	0xe4: entry("CPX", ModeZeroPage, 2, opCPX),
	0xe5: entry("SBC", ModeZeroPage, 2, opSBC),
	0xe6: entry("INC", ModeZeroPage, 2, opINC),
	0xe8: entry("INX", ModeImplied, 1, opINX),
	0xe9: entry("SBC", ModeImmediate, 2, opSBC),
	0xea: entry("NOP", ModeImplied, 1, opNOP),
	0xec: entry("CPX", ModeAbsolute, 3, opCPX),
	0xed: entry("SBC", ModeAbsolute, 3, opSBC),
	0xee: entry("INC", ModeAbsolute, 3, opINC),
	0xf0: entry("BEQ", ModeRelative, 2, opBEQ),
	0xf1: entry("SBC", ModeIndirectY, 2, opSBC),
	0xf5: entry("SBC", ModeZeroPageX, 2, opSBC),
	0xf6: entry("INC", ModeZeroPageX, 2, opINC),
	0xf8: entry("SED", ModeImplied, 1, opSED),
	0xf9: entry("SBC", ModeAbsoluteY, 3, opSBC),
	0xfd: entry("SBC", ModeAbsoluteX, 3, opSBC),
	0xfe: entry("INC", ModeAbsoluteX, 3, opINC),

	// Illegal-NOP family (spec.md §4.5): padding-only opcodes that nestest
	// exercises but that have no effect beyond advancing PC.
	0x1a: entry("NOP", ModeImplied, 1, opNOP),
	0x3a: entry("NOP", ModeImplied, 1, opNOP),
	0x5a: entry("NOP", ModeImplied, 1, opNOP),
	0x7a: entry("NOP", ModeImplied, 1, opNOP),
	0xda: entry("NOP", ModeImplied, 1, opNOP),
	0xfa: entry("NOP", ModeImplied, 1, opNOP),

	0x04: entry("NOP", ModeZeroPage, 2, opNOP),
	0x44: entry("NOP", ModeZeroPage, 2, opNOP),
	0x64: entry("NOP", ModeZeroPage, 2, opNOP),
	0x14: entry("NOP", ModeZeroPageX, 2, opNOP),
	0x34: entry("NOP", ModeZeroPageX, 2, opNOP),
	0x54: entry("NOP", ModeZeroPageX, 2, opNOP),
	0x74: entry("NOP", ModeZeroPageX, 2, opNOP),
	0xd4: entry("NOP", ModeZeroPageX, 2, opNOP),
	0xf4: entry("NOP", ModeZeroPageX, 2, opNOP),

	0x0c: entry("NOP", ModeAbsolute, 3, opNOP),
	0x1c: entry("NOP", ModeAbsoluteX, 3, opNOP),
	0x3c: entry("NOP", ModeAbsoluteX, 3, opNOP),
	0x5c: entry("NOP", ModeAbsoluteX, 3, opNOP),
	0x7c: entry("NOP", ModeAbsoluteX, 3, opNOP),
	0xdc: entry("NOP", ModeAbsoluteX, 3, opNOP),
	0xfc: entry("NOP", ModeAbsoluteX, 3, opNOP),
}
