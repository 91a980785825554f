package symbols

import (
	"strconv"
	"strings"
)

var registerNames = map[uint16]string{
	0x2000: "PPU_CTRL",
	0x2001: "PPU_MASK",
	0x2002: "PPU_STATUS",
	0x2003: "PPU_OAM_ADDR",
	0x2004: "PPU_OAM_DATA",
	0x2005: "PPU_SCROLL",
	0x2006: "PPU_ADDRESS",
	0x2007: "PPU_DATA",
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400A: "TRI_LO",
	0x400B: "TRI_HI",
	0x400C: "NOISE_VOL",
	0x400E: "NOISE_LO",
	0x400F: "NOISE_HI",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",
	0x4014: "OAM_DMA",
	0x4015: "APU_STATUS",
	0x4016: "JOY1",
	0x4017: "JOY2",
}

// RegisterName returns the name of the hardware register at addr.
func RegisterName(addr uint16) (string, bool) {
	name, ok := registerNames[addr]
	return name, ok
}

// SubstituteRegisterNames replaces absolute register operands such as
// $2002 with their names.
func SubstituteRegisterNames(text string) string {
	return replaceOperands(text, func(addr uint16, digits int) (string, bool) {
		if digits != 4 {
			return "", false
		}
		return RegisterName(addr)
	})
}

func (s *Store) SubstituteRegisterNames(text string) string {
	return SubstituteRegisterNames(text)
}

// SubstituteRegionNames replaces address operands that resolve to a named
// symbol of region r.
func (s *Store) SubstituteRegionNames(r Region, text string) string {
	if r.table.Len() == 0 {
		return text
	}
	return replaceOperands(text, func(addr uint16, _ int) (string, bool) {
		if !s.owns(r, addr) {
			return "", false
		}
		sym, ok := r.table.Lookup(addr)
		if !ok || sym.Name == "" {
			return "", false
		}
		return sym.Name, true
	})
}

// replaceOperands calls resolve for every $XX or $XXXX operand that is not
// an immediate value and substitutes the returned name.
func replaceOperands(text string, resolve func(addr uint16, digits int) (string, bool)) string {
	if !strings.Contains(text, "$") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '$' || (i > 0 && text[i-1] == '#') {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(text) && isHexDigit(text[j]) {
			j++
		}
		digits := j - i - 1
		if digits == 2 || digits == 4 {
			v, _ := strconv.ParseUint(text[i+1:j], 16, 16)
			if name, ok := resolve(uint16(v), digits); ok {
				b.WriteString(name)
				i = j
				continue
			}
		}
		b.WriteString(text[i:j])
		i = j
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
