package disasm

import (
	"fmt"
	"strings"
)

// Reader gives side-effect free access to the CPU address space.
type Reader interface {
	ReadByte(addr uint16) byte
}

// Formatter renders single instructions in trace-log style. Memory operands
// are annotated with the effective address after "@" and the value read
// after "=", using the index registers held in X and Y.
type Formatter struct {
	Mem Reader
	X   byte
	Y   byte
}

func NewFormatter(mem Reader) *Formatter {
	return &Formatter{Mem: mem}
}

// InstructionSize lets a Formatter serve as the walker's size table as well.
func (f *Formatter) InstructionSize(opcode byte) int {
	return InstructionSize(opcode)
}

// FormatInstruction renders the instruction at addr whose encoding is raw.
// A short raw slice is padded with zero operand bytes.
func (f *Formatter) FormatInstruction(addr uint16, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	op := raw[0]
	mn := opMnemonic[op]
	mode := opMode[op]
	if mode == "" {
		return fmt.Sprintf(".DB $%02X", op)
	}
	byteAt := func(i int) byte {
		if i >= len(raw) {
			return 0
		}
		return raw[i]
	}
	word := uint16(byteAt(1)) | uint16(byteAt(2))<<8
	switch mode {
	case "imp", "acc":
		return mn
	case "imm":
		return fmt.Sprintf("%s #$%02X", mn, byteAt(1))
	case "rel":
		target := uint16((int(addr) + 2 + int(int8(byteAt(1)))) & 0xFFFF)
		return fmt.Sprintf("%s $%04X", mn, target)
	case "zpg":
		zp := byteAt(1)
		return fmt.Sprintf("%s $%02X = #$%02X", mn, zp, f.read(uint16(zp)))
	case "zpx", "zpy":
		zp := byteAt(1)
		idx, reg := f.index(mode)
		ea := uint16(zp + idx)
		return fmt.Sprintf("%s $%02X,%s @ $%02X = #$%02X", mn, zp, reg, ea, f.read(ea))
	case "abs":
		if mn == "JMP" || mn == "JSR" {
			return fmt.Sprintf("%s $%04X", mn, word)
		}
		return fmt.Sprintf("%s $%04X = #$%02X", mn, word, f.read(word))
	case "abx", "aby":
		idx, reg := f.index(mode)
		ea := word + uint16(idx)
		return fmt.Sprintf("%s $%04X,%s @ $%04X = #$%02X", mn, word, reg, ea, f.read(ea))
	case "inx":
		zp := byteAt(1)
		ea := f.zpWord(zp + f.X)
		return fmt.Sprintf("%s ($%02X,X) @ $%04X = #$%02X", mn, zp, ea, f.read(ea))
	case "iny":
		zp := byteAt(1)
		ea := f.zpWord(zp) + uint16(f.Y)
		return fmt.Sprintf("%s ($%02X),Y @ $%04X = #$%02X", mn, zp, ea, f.read(ea))
	case "ind":
		// the pointer high byte never crosses a page
		hiAddr := (word & 0xFF00) | uint16(byte(word)+1)
		target := uint16(f.read(word)) | uint16(f.read(hiAddr))<<8
		return fmt.Sprintf("%s ($%04X) = $%04X", mn, word, target)
	}
	return mn
}

func (f *Formatter) index(mode string) (byte, string) {
	if strings.HasSuffix(mode, "y") {
		return f.Y, "Y"
	}
	return f.X, "X"
}

func (f *Formatter) zpWord(zp byte) uint16 {
	return uint16(f.read(uint16(zp))) | uint16(f.read(uint16(zp+1)))<<8
}

func (f *Formatter) read(addr uint16) byte {
	if f.Mem == nil {
		return 0
	}
	return f.Mem.ReadByte(addr)
}

// StripAnnotation removes the trace annotation from formatted text: the
// text is cut at "@" and then at "=", dropping the marker and the
// character before it.
func StripAnnotation(text string) string {
	for _, marker := range []string{"@", "="} {
		if i := strings.Index(text, marker); i >= 0 {
			cut := i - 1
			if cut < 0 {
				cut = 0
			}
			text = text[:cut]
		}
	}
	return text
}
