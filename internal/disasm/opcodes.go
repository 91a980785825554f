package disasm

const (
	OpRTI byte = 0x40
	OpRTS byte = 0x60
)

type opcodeEntry struct {
	op   byte
	mn   string
	mode string
}

// Documented NMOS 6502 opcodes. Everything else is treated as undefined.
var officialOpcodes = []opcodeEntry{
	{0x00, "BRK", "imp"}, {0x01, "ORA", "inx"}, {0x05, "ORA", "zpg"}, {0x06, "ASL", "zpg"},
	{0x08, "PHP", "imp"}, {0x09, "ORA", "imm"}, {0x0A, "ASL", "acc"}, {0x0D, "ORA", "abs"},
	{0x0E, "ASL", "abs"},
	{0x10, "BPL", "rel"}, {0x11, "ORA", "iny"}, {0x15, "ORA", "zpx"}, {0x16, "ASL", "zpx"},
	{0x18, "CLC", "imp"}, {0x19, "ORA", "aby"}, {0x1D, "ORA", "abx"}, {0x1E, "ASL", "abx"},
	{0x20, "JSR", "abs"}, {0x21, "AND", "inx"}, {0x24, "BIT", "zpg"}, {0x25, "AND", "zpg"},
	{0x26, "ROL", "zpg"}, {0x28, "PLP", "imp"}, {0x29, "AND", "imm"}, {0x2A, "ROL", "acc"},
	{0x2C, "BIT", "abs"}, {0x2D, "AND", "abs"}, {0x2E, "ROL", "abs"},
	{0x30, "BMI", "rel"}, {0x31, "AND", "iny"}, {0x35, "AND", "zpx"}, {0x36, "ROL", "zpx"},
	{0x38, "SEC", "imp"}, {0x39, "AND", "aby"}, {0x3D, "AND", "abx"}, {0x3E, "ROL", "abx"},
	{0x40, "RTI", "imp"}, {0x41, "EOR", "inx"}, {0x45, "EOR", "zpg"}, {0x46, "LSR", "zpg"},
	{0x48, "PHA", "imp"}, {0x49, "EOR", "imm"}, {0x4A, "LSR", "acc"}, {0x4C, "JMP", "abs"},
	{0x4D, "EOR", "abs"}, {0x4E, "LSR", "abs"},
	{0x50, "BVC", "rel"}, {0x51, "EOR", "iny"}, {0x55, "EOR", "zpx"}, {0x56, "LSR", "zpx"},
	{0x58, "CLI", "imp"}, {0x59, "EOR", "aby"}, {0x5D, "EOR", "abx"}, {0x5E, "LSR", "abx"},
	{0x60, "RTS", "imp"}, {0x61, "ADC", "inx"}, {0x65, "ADC", "zpg"}, {0x66, "ROR", "zpg"},
	{0x68, "PLA", "imp"}, {0x69, "ADC", "imm"}, {0x6A, "ROR", "acc"}, {0x6C, "JMP", "ind"},
	{0x6D, "ADC", "abs"}, {0x6E, "ROR", "abs"},
	{0x70, "BVS", "rel"}, {0x71, "ADC", "iny"}, {0x75, "ADC", "zpx"}, {0x76, "ROR", "zpx"},
	{0x78, "SEI", "imp"}, {0x79, "ADC", "aby"}, {0x7D, "ADC", "abx"}, {0x7E, "ROR", "abx"},
	{0x81, "STA", "inx"}, {0x84, "STY", "zpg"}, {0x85, "STA", "zpg"}, {0x86, "STX", "zpg"},
	{0x88, "DEY", "imp"}, {0x8A, "TXA", "imp"}, {0x8C, "STY", "abs"}, {0x8D, "STA", "abs"},
	{0x8E, "STX", "abs"},
	{0x90, "BCC", "rel"}, {0x91, "STA", "iny"}, {0x94, "STY", "zpx"}, {0x95, "STA", "zpx"},
	{0x96, "STX", "zpy"}, {0x98, "TYA", "imp"}, {0x99, "STA", "aby"}, {0x9A, "TXS", "imp"},
	{0x9D, "STA", "abx"},
	{0xA0, "LDY", "imm"}, {0xA1, "LDA", "inx"}, {0xA2, "LDX", "imm"}, {0xA4, "LDY", "zpg"},
	{0xA5, "LDA", "zpg"}, {0xA6, "LDX", "zpg"}, {0xA8, "TAY", "imp"}, {0xA9, "LDA", "imm"},
	{0xAA, "TAX", "imp"}, {0xAC, "LDY", "abs"}, {0xAD, "LDA", "abs"}, {0xAE, "LDX", "abs"},
	{0xB0, "BCS", "rel"}, {0xB1, "LDA", "iny"}, {0xB4, "LDY", "zpx"}, {0xB5, "LDA", "zpx"},
	{0xB6, "LDX", "zpy"}, {0xB8, "CLV", "imp"}, {0xB9, "LDA", "aby"}, {0xBA, "TSX", "imp"},
	{0xBC, "LDY", "abx"}, {0xBD, "LDA", "abx"}, {0xBE, "LDX", "aby"},
	{0xC0, "CPY", "imm"}, {0xC1, "CMP", "inx"}, {0xC4, "CPY", "zpg"}, {0xC5, "CMP", "zpg"},
	{0xC6, "DEC", "zpg"}, {0xC8, "INY", "imp"}, {0xC9, "CMP", "imm"}, {0xCA, "DEX", "imp"},
	{0xCC, "CPY", "abs"}, {0xCD, "CMP", "abs"}, {0xCE, "DEC", "abs"},
	{0xD0, "BNE", "rel"}, {0xD1, "CMP", "iny"}, {0xD5, "CMP", "zpx"}, {0xD6, "DEC", "zpx"},
	{0xD8, "CLD", "imp"}, {0xD9, "CMP", "aby"}, {0xDD, "CMP", "abx"}, {0xDE, "DEC", "abx"},
	{0xE0, "CPX", "imm"}, {0xE1, "SBC", "inx"}, {0xE4, "CPX", "zpg"}, {0xE5, "SBC", "zpg"},
	{0xE6, "INC", "zpg"}, {0xE8, "INX", "imp"}, {0xE9, "SBC", "imm"}, {0xEA, "NOP", "imp"},
	{0xEC, "CPX", "abs"}, {0xED, "SBC", "abs"}, {0xEE, "INC", "abs"},
	{0xF0, "BEQ", "rel"}, {0xF1, "SBC", "iny"}, {0xF5, "SBC", "zpx"}, {0xF6, "INC", "zpx"},
	{0xF8, "SED", "imp"}, {0xF9, "SBC", "aby"}, {0xFD, "SBC", "abx"}, {0xFE, "INC", "abx"},
}

var (
	opMnemonic [256]string
	opMode     [256]string
	opSize     [256]uint8
)

func init() {
	for i := range opMnemonic {
		opMnemonic[i] = "???"
	}
	for _, e := range officialOpcodes {
		opMnemonic[e.op] = e.mn
		opMode[e.op] = e.mode
		opSize[e.op] = uint8(modeSize(e.mode))
	}
}

func modeSize(mode string) int {
	switch mode {
	case "imp", "acc":
		return 1
	case "imm", "inx", "iny", "rel", "zpg", "zpx", "zpy":
		return 2
	case "abs", "abx", "aby", "ind":
		return 3
	default:
		return 0
	}
}

// InstructionSize returns the encoded length of the instruction starting
// with opcode, or 0 when the opcode is undefined.
func InstructionSize(opcode byte) int {
	return int(opSize[opcode])
}

// IsReturn reports whether opcode ends a subroutine or interrupt handler.
func IsReturn(opcode byte) bool {
	return opcode == OpRTS || opcode == OpRTI
}

// SizeTable is the fixed opcode size lookup.
type SizeTable struct{}

func (SizeTable) InstructionSize(opcode byte) int {
	return InstructionSize(opcode)
}
