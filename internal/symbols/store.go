package symbols

import (
	"fmt"
	"sort"
)

const romStart = 0x8000

// Banker reports which ROM bank is mapped at a CPU address.
type Banker interface {
	Bank(addr uint16) int
}

// Store combines the RAM name list with one name list per ROM bank. ROM
// addresses resolve through the bank currently mapped at them.
type Store struct {
	ram    *Table
	banks  map[int]*Table
	banker Banker
}

func NewStore(banker Banker) *Store {
	return &Store{
		ram:    NewTable(),
		banks:  make(map[int]*Table),
		banker: banker,
	}
}

// Load reads the RAM name list and the name list of every bank below
// bankCount that exists next to romPath.
func Load(romPath string, bankCount int, banker Banker) (*Store, error) {
	s := NewStore(banker)
	ram, err := loadNameFile(RAMFile(romPath))
	if err != nil {
		return nil, err
	}
	if ram != nil {
		s.SetRAM(ram)
	}
	for bank := 0; bank < bankCount; bank++ {
		t, err := loadNameFile(BankFile(romPath, bank))
		if err != nil {
			return nil, err
		}
		if t != nil {
			s.SetBank(bank, t)
		}
	}
	return s, nil
}

func (s *Store) SetRAM(t *Table) {
	s.ram = t
}

func (s *Store) SetBank(bank int, t *Table) {
	s.banks[bank] = t
}

// Len is the total number of symbols held.
func (s *Store) Len() int {
	n := s.ram.Len()
	for _, t := range s.banks {
		n += t.Len()
	}
	return n
}

func (s *Store) tableFor(addr uint16) *Table {
	if addr < romStart {
		return s.ram
	}
	if s.banker == nil {
		return nil
	}
	return s.banks[s.banker.Bank(addr)]
}

// Lookup returns the symbol at addr, if any.
func (s *Store) Lookup(addr uint16) (Symbol, bool) {
	return s.tableFor(addr).Lookup(addr)
}

// Region is one name list together with the addresses it describes.
type Region struct {
	Name  string
	Bank  int
	table *Table
}

// Regions returns the RAM region followed by the ROM bank regions in
// ascending bank order.
func (s *Store) Regions() []Region {
	out := []Region{{Name: "RAM", Bank: -1, table: s.ram}}
	banks := make([]int, 0, len(s.banks))
	for b := range s.banks {
		banks = append(banks, b)
	}
	sort.Ints(banks)
	for _, b := range banks {
		out = append(out, Region{Name: fmt.Sprintf("bank %02X", b), Bank: b, table: s.banks[b]})
	}
	return out
}

// owns reports whether addr resolves to the region in the current mapping.
func (s *Store) owns(r Region, addr uint16) bool {
	if r.Bank < 0 {
		return addr < romStart
	}
	return addr >= romStart && s.banker != nil && s.banker.Bank(addr) == r.Bank
}

// Entry is a listed symbol with the region it came from.
type Entry struct {
	Region string
	Symbol
}

// List returns every symbol, region by region.
func (s *Store) List() []Entry {
	var out []Entry
	for _, r := range s.Regions() {
		for _, sym := range r.table.Symbols() {
			out = append(out, Entry{Region: r.Name, Symbol: sym})
		}
	}
	return out
}
