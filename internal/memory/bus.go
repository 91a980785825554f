// Package memory models the 6502 address space as seen by a static
// disassembler: RAM, cartridge SRAM and PRG ROM windows, together with the
// bank and file offset of every ROM-mapped address.
package memory

import (
	"errors"
	"fmt"

	"gonesdump/internal/ines"
)

const (
	AddressSpace    = 0x10000
	ROMStart        = 0x8000
	PageSize        = 0x2000
	DefaultBankSize = 0x4000

	ramSize   = 0x0800
	ramEnd    = 0x2000
	sramStart = 0x6000
	sramSize  = 0x2000
	slotCount = 4
)

var (
	ErrBankSize = errors.New("bank size must be 0x2000 or 0x4000")
	ErrPRGSize  = errors.New("PRG size must be a non-zero multiple of 8 KB")
	ErrPRGPage  = errors.New("PRG page out of range")
)

// Space is a read-only CPU address space with ROM mapping metadata.
type Space interface {
	ReadByte(addr uint16) byte
	FileOffset(addr uint16) (int, bool)
	Bank(addr uint16) int
}

// Bus maps PRG ROM into four 8 KB windows at $8000, $A000, $C000 and $E000.
// Reads never have side effects; hardware registers read as zero.
type Bus struct {
	ram       [ramSize]byte
	sram      [sramSize]byte
	prg       []byte
	prgFile   int
	slots     [slotCount]int
	bankSize  int
	pageCount int
}

type Option func(*Bus) error

// WithBankSize selects the unit used to number ROM banks.
func WithBankSize(size int) Option {
	return func(b *Bus) error {
		if size != 0x2000 && size != 0x4000 {
			return ErrBankSize
		}
		b.bankSize = size
		return nil
	}
}

// WithPRGMap places the given 8 KB PRG pages in the windows starting at
// $8000. Fewer than four pages leave the remaining windows untouched.
func WithPRGMap(pages []int) Option {
	return func(b *Bus) error {
		if len(pages) > slotCount {
			return fmt.Errorf("PRG map has %d pages, at most %d fit", len(pages), slotCount)
		}
		for i, p := range pages {
			if p < 0 || p >= b.pageCount {
				return fmt.Errorf("page %d: %w (have %d)", p, ErrPRGPage, b.pageCount)
			}
			b.slots[i] = p * PageSize
		}
		return nil
	}
}

// WithRAM preloads internal RAM from a snapshot.
func WithRAM(data []byte) Option {
	return func(b *Bus) error {
		copy(b.ram[:], data)
		return nil
	}
}

// WithSRAM preloads cartridge RAM at $6000.
func WithSRAM(data []byte) Option {
	return func(b *Bus) error {
		copy(b.sram[:], data)
		return nil
	}
}

// NewBus creates a bus over prg, whose first byte sits at prgFileOffset in
// the image file. The default layout puts the first 16 KB at $8000 and the
// last 16 KB at $C000, which mirrors a single 16 KB bank.
func NewBus(prg []byte, prgFileOffset int, opts ...Option) (*Bus, error) {
	if len(prg) == 0 || len(prg)%PageSize != 0 {
		return nil, ErrPRGSize
	}
	b := &Bus{
		prg:       prg,
		prgFile:   prgFileOffset,
		bankSize:  DefaultBankSize,
		pageCount: len(prg) / PageSize,
	}
	first := 0
	last := len(prg) - 2*PageSize
	if last < 0 {
		last = 0
	}
	b.slots = [slotCount]int{first, first + PageSize, last, last + PageSize}
	if len(prg) == PageSize {
		b.slots = [slotCount]int{0, 0, 0, 0}
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func FromROM(rom *ines.ROM, opts ...Option) (*Bus, error) {
	return NewBus(rom.PRG, rom.PRGOffset(), opts...)
}

func (b *Bus) ReadByte(addr uint16) byte {
	switch {
	case addr >= ROMStart:
		off, _ := b.PRGOffset(addr)
		return b.prg[off]
	case addr < ramEnd:
		return b.ram[addr%ramSize]
	case addr >= sramStart:
		return b.sram[addr-sramStart]
	}
	return 0
}

// PRGOffset returns the position of addr within PRG ROM.
func (b *Bus) PRGOffset(addr uint16) (int, bool) {
	if addr < ROMStart {
		return 0, false
	}
	rel := int(addr) - ROMStart
	return b.slots[rel/PageSize] + rel%PageSize, true
}

// FileOffset returns the position of addr within the ROM image file.
func (b *Bus) FileOffset(addr uint16) (int, bool) {
	off, ok := b.PRGOffset(addr)
	if !ok {
		return 0, false
	}
	return b.prgFile + off, true
}

// Bank returns the ROM bank mapped at addr, or -1 outside ROM.
func (b *Bus) Bank(addr uint16) int {
	off, ok := b.PRGOffset(addr)
	if !ok {
		return -1
	}
	return off / b.bankSize
}

func (b *Bus) BankSize() int {
	return b.bankSize
}

// BankCount is the number of ROM banks in PRG.
func (b *Bus) BankCount() int {
	return (len(b.prg) + b.bankSize - 1) / b.bankSize
}

// Read copies length bytes starting at addr, wrapping at the top of the
// address space.
func Read(space Space, addr uint16, length int) []byte {
	if length < 0 {
		length = 0
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = space.ReadByte(uint16((int(addr) + i) & 0xFFFF))
	}
	return out
}
