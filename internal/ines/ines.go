// Package ines reads NES ROM images in the iNES format.
//
// Reference: https://www.nesdev.org/wiki/INES
package ines

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGUnit     = 16 * 1024
	CHRUnit     = 8 * 1024
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

var (
	ErrBadMagic  = errors.New("invalid .nes file: missing magic number")
	ErrTruncated = errors.New("truncated .nes file")
	ErrNoPRG     = errors.New(".nes file has no PRG ROM")
)

type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "horizontal"
	}
}

type header struct {
	Magic   [4]byte
	SizePRG byte // 16 KB units
	SizeCHR byte // 8 KB units
	Flags6  byte
	Flags7  byte
	_       [8]byte
}

type ROM struct {
	Mapper    int
	Mirroring Mirroring
	Battery   bool
	Trainer   []byte
	PRG       []byte
	CHR       []byte
}

// Load reads the ROM image at path.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rom, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

func Parse(r io.Reader) (*ROM, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	if h.SizePRG == 0 {
		return nil, ErrNoPRG
	}
	rom := &ROM{
		Mapper:  int(h.Flags6>>4) | int(h.Flags7&0xF0),
		Battery: h.Flags6&0x02 != 0,
	}
	switch {
	case h.Flags6&0x08 != 0:
		rom.Mirroring = MirrorFourScreen
	case h.Flags6&0x01 != 0:
		rom.Mirroring = MirrorVertical
	}
	if h.Flags6&0x04 != 0 {
		rom.Trainer = make([]byte, TrainerSize)
		if err := readSection(r, rom.Trainer, "trainer"); err != nil {
			return nil, err
		}
	}
	rom.PRG = make([]byte, int(h.SizePRG)*PRGUnit)
	if err := readSection(r, rom.PRG, "PRG"); err != nil {
		return nil, err
	}
	rom.CHR = make([]byte, int(h.SizeCHR)*CHRUnit)
	if err := readSection(r, rom.CHR, "CHR"); err != nil {
		return nil, err
	}
	return rom, nil
}

func readSection(r io.Reader, buf []byte, name string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("reading %s: %w", name, ErrTruncated)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// PRGOffset is the position of the first PRG byte within the image file.
func (r *ROM) PRGOffset() int {
	return HeaderSize + len(r.Trainer)
}

// PRGBanks returns the PRG size in 16 KB units.
func (r *ROM) PRGBanks() int {
	return len(r.PRG) / PRGUnit
}

func (r *ROM) CHRBanks() int {
	return len(r.CHR) / CHRUnit
}
