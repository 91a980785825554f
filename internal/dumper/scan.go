package dumper

import "fmt"

type scanState int

const (
	scanning scanState = iota
	interrupted
)

// instruction is the outcome of scanning one instruction.
type instruction struct {
	raw   []byte
	state scanState
}

// scan consumes up to size bytes starting at addr. Before each operand byte
// it checks for a symbol at that address; finding one moves the scan to the
// interrupted state and the instruction ends with the bytes read so far.
func (d *Dumper) scan(addr uint16, size int) instruction {
	ins := instruction{raw: make([]byte, 0, size), state: scanning}
	for i := 0; i < size && ins.state == scanning; i++ {
		at := addr + uint16(i)
		ins.raw = append(ins.raw, d.cfg.Memory.ReadByte(at))
		if i == size-1 || d.cfg.Symbols == nil {
			continue
		}
		next := at + 1
		if sym, ok := d.cfg.Symbols.Lookup(next); ok {
			ins.state = interrupted
			d.log.Warn("operand address carries a symbol",
				"addr", fmt.Sprintf("$%04X", next),
				"symbol", sym.Name,
				"instruction", fmt.Sprintf("$%04X", addr))
		}
	}
	return ins
}
