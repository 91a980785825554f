// Package symbols holds user supplied labels and comments for addresses in
// the 6502 address space, and rewrites disassembly text to use them.
package symbols

import (
	"sort"
	"strings"
)

// LineSeparator splits multi-line comments.
const LineSeparator = "\r\n"

// Symbol is a label and/or comment attached to an address.
type Symbol struct {
	Address uint16
	Name    string
	Comment string
}

// CommentLines splits the comment into its lines, in order. A comment
// without separators is a single line; an empty comment has none.
func (s Symbol) CommentLines() []string {
	if s.Comment == "" {
		return nil
	}
	return strings.Split(s.Comment, LineSeparator)
}

// Table maps addresses to symbols and keeps a sorted index of its keys.
type Table struct {
	entries map[uint16]Symbol
	idx     []uint16
}

func NewTable() *Table {
	return &Table{entries: make(map[uint16]Symbol)}
}

// Add stores sym, replacing any symbol already at its address.
func (t *Table) Add(sym Symbol) {
	if _, ok := t.entries[sym.Address]; !ok {
		t.idx = append(t.idx, sym.Address)
		sort.Slice(t.idx, func(i, j int) bool { return t.idx[i] < t.idx[j] })
	}
	t.entries[sym.Address] = sym
}

func (t *Table) Lookup(addr uint16) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	sym, ok := t.entries[addr]
	return sym, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.idx)
}

// Symbols returns every symbol in address order.
func (t *Table) Symbols() []Symbol {
	if t == nil {
		return nil
	}
	out := make([]Symbol, 0, len(t.idx))
	for _, addr := range t.idx {
		out = append(out, t.entries[addr])
	}
	return out
}
