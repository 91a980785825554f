// Package dumper writes a static disassembly listing of a range of the 6502
// address space.
//
// The walk is linear: every address is decoded as an instruction start
// unless it was consumed as an operand of the previous instruction. A
// symbol found where an operand byte would be ends the current instruction
// early, so the labelled address is decoded as an instruction of its own:
//
//	 00:8000: 2C          INTERRUPTED
//	my_subroutine:
//	 00:8001: A9 10       LDA #$10
//	 00:8003: 60          RTS ---------------------------------------------
package dumper

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"gonesdump/internal/disasm"
	"gonesdump/internal/logging"
	"gonesdump/internal/symbols"
)

const (
	MaxAddress = 0xFFFF
	ROMStart   = 0x8000

	// MaxLineLength bounds the dash-padded text after a return opcode.
	MaxLineLength = 80

	maxInstructionBytes = 3
	byteColumn          = "   "

	markUndefined   = "UNDEFINED"
	markOverflow    = "OVERFLOW"
	markInterrupted = "INTERRUPTED"
)

type Memory interface {
	ReadByte(addr uint16) byte
}

// SizeTable returns the instruction length for an opcode, 0 if undefined.
type SizeTable interface {
	InstructionSize(opcode byte) int
}

type Formatter interface {
	FormatInstruction(addr uint16, raw []byte) string
}

// Mapper supplies the file offset and bank of ROM-mapped addresses.
type Mapper interface {
	FileOffset(addr uint16) (int, bool)
	Bank(addr uint16) int
}

type Symbols interface {
	Lookup(addr uint16) (symbols.Symbol, bool)
	SubstituteRegisterNames(text string) string
	Regions() []symbols.Region
	SubstituteRegionNames(r symbols.Region, text string) string
}

type Config struct {
	Memory    Memory
	Sizes     SizeTable
	Formatter Formatter
	Mapper    Mapper

	// Symbols enables label and comment lines, operand interruption and
	// name substitution. Nil disables all of them.
	Symbols Symbols

	ShowFileOffsets bool
	RegisterNames   bool

	Logger *log.Logger
}

type Dumper struct {
	cfg Config
	log *log.Logger
}

func New(cfg Config) *Dumper {
	if cfg.Sizes == nil {
		cfg.Sizes = disasm.SizeTable{}
	}
	if cfg.Formatter == nil {
		cfg.Formatter = disasm.NewFormatter(cfg.Memory)
	}
	lg := cfg.Logger
	if lg == nil {
		lg = logging.Discard()
	}
	return &Dumper{cfg: cfg, log: lg}
}

// Summary counts what a walk emitted.
type Summary struct {
	Lines       int // instruction and data lines, labels and comments excluded
	Undefined   int
	Interrupted int
	Overflow    int
}

// Dump writes the listing for the instructions starting in [start, end] to
// w. end is the last instruction start; operands may spill past it. The walk
// stops for good when an instruction would run past $FFFF.
func (d *Dumper) Dump(w io.Writer, start, end int) (Summary, error) {
	out := &lineWriter{w: w}
	var sum Summary
	addr := start
	for addr <= end && addr <= MaxAddress && out.err == nil {
		insAddr := uint16(addr)
		d.writeSymbolLines(out, insAddr)

		var line strings.Builder
		line.WriteString(d.addressColumn(insAddr))

		opcode := d.cfg.Memory.ReadByte(insAddr)
		size := d.cfg.Sizes.InstructionSize(opcode)
		switch {
		case size <= 0:
			fmt.Fprintf(&line, "%02X        %s", opcode, markUndefined)
			out.line(line.String())
			sum.Lines++
			sum.Undefined++
			addr++
			continue

		case addr+size-1 > MaxAddress:
			for a := addr; a <= MaxAddress; a++ {
				if a != addr {
					line.Reset()
					line.WriteString(d.addressColumn(uint16(a)))
				}
				fmt.Fprintf(&line, "%02X        %s", d.cfg.Memory.ReadByte(uint16(a)), markOverflow)
				out.line(line.String())
				sum.Lines++
				sum.Overflow++
			}
			return sum, out.err
		}

		ins := d.scan(insAddr, size)
		for _, b := range ins.raw {
			fmt.Fprintf(&line, "%02X ", b)
		}
		for n := len(ins.raw); n < maxInstructionBytes; n++ {
			line.WriteString(byteColumn)
		}
		if ins.state == interrupted {
			line.WriteString(" " + markInterrupted)
			sum.Interrupted++
		} else {
			line.WriteString(" " + d.instructionText(insAddr, ins.raw))
		}
		out.line(line.String())
		sum.Lines++
		addr += len(ins.raw)
	}
	return sum, out.err
}

func (d *Dumper) writeSymbolLines(out *lineWriter, addr uint16) {
	if d.cfg.Symbols == nil {
		return
	}
	sym, ok := d.cfg.Symbols.Lookup(addr)
	if !ok {
		return
	}
	if sym.Name != "" {
		out.line(sym.Name + ":")
	}
	for _, c := range sym.CommentLines() {
		out.line("; " + c)
	}
}

// addressColumn renders the leading column: the file offset or bank:address
// for ROM, a blank bank for everything below $8000.
func (d *Dumper) addressColumn(addr uint16) string {
	if addr >= ROMStart && d.cfg.Mapper != nil {
		if d.cfg.ShowFileOffsets {
			if off, ok := d.cfg.Mapper.FileOffset(addr); ok {
				return fmt.Sprintf("  %06X: ", off)
			}
		}
		return fmt.Sprintf(" %02X:%04X: ", d.cfg.Mapper.Bank(addr)&0xFF, addr)
	}
	if addr >= ROMStart {
		return fmt.Sprintf(" %02X:%04X: ", 0, addr)
	}
	return fmt.Sprintf("   :%04X: ", addr)
}

func (d *Dumper) instructionText(addr uint16, raw []byte) string {
	text := disasm.StripAnnotation(d.cfg.Formatter.FormatInstruction(addr, raw))
	if s := d.cfg.Symbols; s != nil {
		if d.cfg.RegisterNames {
			text = s.SubstituteRegisterNames(text)
		}
		for _, r := range s.Regions() {
			text = s.SubstituteRegionNames(r, text)
		}
	}
	if disasm.IsReturn(raw[0]) {
		text = padReturn(text)
	}
	return text
}

// padReturn marks the end of a subroutine with a run of dashes.
func padReturn(text string) string {
	text += " "
	if n := MaxLineLength - 1 - len(text); n > 0 {
		text += strings.Repeat("-", n)
	}
	if len(text) > MaxLineLength-1 {
		text = text[:MaxLineLength-1]
	}
	return text
}

// lineWriter keeps the first write error and drops everything after it.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}
