package disasm

import "testing"

type flatMem [0x10000]byte

func (m *flatMem) ReadByte(addr uint16) byte { return m[addr] }

func TestInstructionSize(t *testing.T) {
	tests := []struct {
		op   byte
		want int
	}{
		{0x00, 1}, // BRK
		{0x60, 1}, // RTS
		{0x0A, 1}, // ASL A
		{0xA9, 2}, // LDA #
		{0xD0, 2}, // BNE
		{0xB1, 2}, // LDA (zp),Y
		{0x20, 3}, // JSR
		{0x6C, 3}, // JMP ()
		{0xBD, 3}, // LDA abs,X
		{0x02, 0}, // KIL
		{0x80, 0}, // unofficial NOP #
		{0xFF, 0}, // ISC abs,X
		{0x9E, 0}, // SHX
	}
	for _, tt := range tests {
		if got := InstructionSize(tt.op); got != tt.want {
			t.Errorf("InstructionSize(%02X) = %d, want %d", tt.op, got, tt.want)
		}
	}
}

func TestOfficialOpcodeCount(t *testing.T) {
	n := 0
	for op := 0; op < 256; op++ {
		if InstructionSize(byte(op)) != 0 {
			n++
		}
	}
	if n != 151 {
		t.Fatalf("defined opcodes = %d, want 151", n)
	}
}

func TestFormatInstruction(t *testing.T) {
	mem := &flatMem{}
	mem[0x0010] = 0x05
	mem[0x0011] = 0x02
	mem[0x0012] = 0x03
	mem[0x0300] = 0x00
	mem[0x0301] = 0xC0
	mem[0x0305] = 0x7F
	f := &Formatter{Mem: mem, X: 5, Y: 1}

	tests := []struct {
		name string
		addr uint16
		raw  []byte
		want string
	}{
		{"implied", 0x8000, []byte{0x60}, "RTS"},
		{"accumulator", 0x8000, []byte{0x0A}, "ASL"},
		{"immediate", 0x8000, []byte{0xA9, 0x10}, "LDA #$10"},
		{"zero page", 0x8000, []byte{0xA5, 0x10}, "LDA $10 = #$05"},
		{"zero page x", 0x8000, []byte{0xB5, 0x0B}, "LDA $0B,X @ $10 = #$05"},
		{"absolute", 0x8000, []byte{0xAD, 0x05, 0x03}, "LDA $0305 = #$7F"},
		{"jump", 0x8000, []byte{0x4C, 0x00, 0xC0}, "JMP $C000"},
		{"subroutine", 0x8000, []byte{0x20, 0x34, 0x12}, "JSR $1234"},
		{"absolute x", 0x8000, []byte{0x9D, 0x00, 0x03}, "STA $0300,X @ $0305 = #$7F"},
		{"indirect y", 0x8000, []byte{0xB1, 0x11}, "LDA ($11),Y @ $0303 = #$00"},
		{"indirect x", 0x8000, []byte{0xA1, 0x0C}, "LDA ($0C,X) @ $0302 = #$00"},
		{"indirect", 0x8000, []byte{0x6C, 0x00, 0x03}, "JMP ($0300) = $C000"},
		{"branch forward", 0xC000, []byte{0xD0, 0x0E}, "BNE $C010"},
		{"branch back", 0xC010, []byte{0xF0, 0xFE}, "BEQ $C010"},
		{"undefined", 0x8000, []byte{0x02}, ".DB $02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatInstruction(tt.addr, tt.raw); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripAnnotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LDA $10 = #$05", "LDA $10"},
		{"STA $0300,X @ $0305 = #$7F", "STA $0300,X"},
		{"JMP ($0300) = $C000", "JMP ($0300)"},
		{"LDA #$10", "LDA #$10"},
		{"RTS", "RTS"},
		{"@", ""},
	}
	for _, tt := range tests {
		if got := StripAnnotation(tt.in); got != tt.want {
			t.Errorf("StripAnnotation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsReturn(t *testing.T) {
	if !IsReturn(0x60) || !IsReturn(0x40) {
		t.Fatal("RTS and RTI must be returns")
	}
	if IsReturn(0x4C) {
		t.Fatal("JMP is not a return")
	}
}
