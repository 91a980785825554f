package memory

import "fmt"

// Flat is a raw binary image loaded at a fixed base address. File offsets
// are relative to the start of the image.
type Flat struct {
	base     int
	data     []byte
	bankSize int
}

func NewFlat(base uint16, data []byte, bankSize int) (*Flat, error) {
	if bankSize != 0x2000 && bankSize != 0x4000 {
		return nil, ErrBankSize
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	if room := AddressSpace - int(base); len(data) > room {
		data = data[:room]
	}
	return &Flat{base: int(base), data: data, bankSize: bankSize}, nil
}

func (f *Flat) offset(addr uint16) (int, bool) {
	off := int(addr) - f.base
	if off < 0 || off >= len(f.data) {
		return 0, false
	}
	return off, true
}

func (f *Flat) ReadByte(addr uint16) byte {
	if off, ok := f.offset(addr); ok {
		return f.data[off]
	}
	return 0
}

func (f *Flat) FileOffset(addr uint16) (int, bool) {
	return f.offset(addr)
}

func (f *Flat) Bank(addr uint16) int {
	off, ok := f.offset(addr)
	if !ok {
		return -1
	}
	return off / f.bankSize
}

func (f *Flat) BankCount() int {
	return (len(f.data) + f.bankSize - 1) / f.bankSize
}
