package symbols

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// fixedBanker maps $8000-$BFFF to bank lo and $C000-$FFFF to bank hi.
type fixedBanker struct{ lo, hi int }

func (b fixedBanker) Bank(addr uint16) int {
	switch {
	case addr < 0x8000:
		return -1
	case addr < 0xC000:
		return b.lo
	}
	return b.hi
}

const bankNameList = `# not an entry
$C000#Reset#Power-on entry
$C010#loop#
$C020##Waits for vblank\
then clears the flag\
and returns
$C030#NMI
$C040/3#Table#Lookup table
`

func TestParseNameList(t *testing.T) {
	tbl, err := ParseNameList(strings.NewReader(bankNameList))
	if err != nil {
		t.Fatalf("ParseNameList failed: %v", err)
	}
	want := []Symbol{
		{0xC000, "Reset", "Power-on entry"},
		{0xC010, "loop", ""},
		{0xC020, "", "Waits for vblank\r\nthen clears the flag\r\nand returns"},
		{0xC030, "NMI", ""},
		{0xC040, "Table", "Lookup table"},
		{0xC041, "Table+1", ""},
		{0xC042, "Table+2", ""},
	}
	if got := tbl.Symbols(); !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols =\n%v\nwant\n%v", got, want)
	}
}

func TestParseNameListErrors(t *testing.T) {
	for _, in := range []string{"$ZZZZ#bad#\n", "$C000/0#empty#\n", "$C000/x#bad#\n"} {
		if _, err := ParseNameList(strings.NewReader(in)); err == nil {
			t.Errorf("ParseNameList(%q) succeeded", in)
		}
	}
}

func TestCommentLines(t *testing.T) {
	tests := []struct {
		comment string
		want    []string
	}{
		{"", nil},
		{"single", []string{"single"}},
		{"line1\r\nline2", []string{"line1", "line2"}},
		{"a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"trailing\r\n", []string{"trailing", ""}},
		{"bare\nnewline", []string{"bare\nnewline"}},
	}
	for _, tt := range tests {
		sym := Symbol{Comment: tt.comment}
		if got := sym.CommentLines(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CommentLines(%q) = %q, want %q", tt.comment, got, tt.want)
		}
		// restartable: a second call yields the same sequence
		if again := sym.CommentLines(); !reflect.DeepEqual(again, sym.CommentLines()) {
			t.Errorf("CommentLines(%q) not repeatable", tt.comment)
		}
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(fixedBanker{lo: 0, hi: 3})
	ram := NewTable()
	ram.Add(Symbol{Address: 0x0010, Name: "ptr"})
	ram.Add(Symbol{Address: 0x0300, Name: "buffer", Comment: "sprite staging"})
	s.SetRAM(ram)
	b0 := NewTable()
	b0.Add(Symbol{Address: 0x8000, Name: "init"})
	b0.Add(Symbol{Address: 0xC000, Name: "wrong_bank"})
	s.SetBank(0, b0)
	b3 := NewTable()
	b3.Add(Symbol{Address: 0xC000, Name: "Reset"})
	b3.Add(Symbol{Address: 0xC008, Comment: "unnamed"})
	s.SetBank(3, b3)
	return s
}

func TestStoreLookup(t *testing.T) {
	s := newTestStore(t)
	if sym, ok := s.Lookup(0xC000); !ok || sym.Name != "Reset" {
		t.Errorf("Lookup($C000) = %v,%v", sym, ok)
	}
	if sym, ok := s.Lookup(0x8000); !ok || sym.Name != "init" {
		t.Errorf("Lookup($8000) = %v,%v", sym, ok)
	}
	if sym, ok := s.Lookup(0x0300); !ok || sym.Comment != "sprite staging" {
		t.Errorf("Lookup($0300) = %v,%v", sym, ok)
	}
	if _, ok := s.Lookup(0xC001); ok {
		t.Error("Lookup($C001) found a symbol")
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
}

func TestRegions(t *testing.T) {
	s := newTestStore(t)
	var names []string
	for _, r := range s.Regions() {
		names = append(names, r.Name)
	}
	if want := []string{"RAM", "bank 00", "bank 03"}; !reflect.DeepEqual(names, want) {
		t.Errorf("regions = %v, want %v", names, want)
	}
}

func TestSubstitution(t *testing.T) {
	s := newTestStore(t)
	apply := func(text string) string {
		text = s.SubstituteRegisterNames(text)
		for _, r := range s.Regions() {
			text = s.SubstituteRegionNames(r, text)
		}
		return text
	}
	tests := []struct {
		in   string
		want string
	}{
		{"STA $2000", "STA PPU_CTRL"},
		{"LDA $2002", "LDA PPU_STATUS"},
		{"STA $4014", "STA OAM_DMA"},
		{"LDA ($10),Y", "LDA (ptr),Y"},
		{"STA $0300,X", "STA buffer,X"},
		{"LDA #$10", "LDA #$10"},
		{"JMP $C000", "JMP Reset"},
		{"JSR $8000", "JSR init"},
		{"JMP $C008", "JMP $C008"},
		{"LDA $03001", "LDA $03001"},
		{"RTS", "RTS"},
	}
	for _, tt := range tests {
		if got := apply(tt.in); got != tt.want {
			t.Errorf("substitute(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	s := newTestStore(t)
	tests := []struct {
		query string
		addr  uint16
		ok    bool
	}{
		{"Reset", 0xC000, true},
		{"res", 0xC000, true},
		{"staging", 0x0300, true},
		{"; sprite staging", 0x0300, true},
		{"bank", 0xC000, true},
		{"nothing", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		e, ok := s.Find(tt.query)
		if ok != tt.ok || (ok && e.Address != tt.addr) {
			t.Errorf("Find(%q) = $%04X,%v want $%04X,%v", tt.query, e.Address, ok, tt.addr, tt.ok)
		}
	}
	if addr, ok := s.FindOrAddress("$1234"); !ok || addr != 0x1234 {
		t.Errorf("FindOrAddress($1234) = %04X,%v", addr, ok)
	}
	if addr, ok := s.FindOrAddress("init"); !ok || addr != 0x8000 {
		t.Errorf("FindOrAddress(init) = %04X,%v", addr, ok)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	rom := filepath.Join(dir, "game.nes")
	if err := os.WriteFile(RAMFile(rom), []byte("$0010#ptr#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(BankFile(rom, 3), []byte(bankNameList), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(rom, 4, fixedBanker{lo: 0, hi: 3})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sym, ok := s.Lookup(0xC010); !ok || sym.Name != "loop" {
		t.Errorf("Lookup($C010) = %v,%v", sym, ok)
	}
	if sym, ok := s.Lookup(0x0010); !ok || sym.Name != "ptr" {
		t.Errorf("Lookup($0010) = %v,%v", sym, ok)
	}
	if len(s.Regions()) != 2 {
		t.Errorf("regions = %d, want 2", len(s.Regions()))
	}
	if filepath.Base(BankFile(rom, 10)) != "game.nes.A.nl" {
		t.Errorf("BankFile = %s", BankFile(rom, 10))
	}

	if err := os.WriteFile(BankFile(rom, 1), []byte("$XYZ#bad#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(rom, 4, fixedBanker{}); err == nil {
		t.Error("Load must fail on a malformed name list")
	}
}
