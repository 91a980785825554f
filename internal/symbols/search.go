package symbols

import (
	"regexp"
	"strconv"
	"strings"
)

var plainHexAddrRe = regexp.MustCompile(`^\$?[0-9A-Fa-f]{1,4}$`)

// Find looks a symbol up by name or comment text. Exact matches win over
// prefix matches, which win over substring matches; ties go to the lowest
// address.
func (s *Store) Find(query string) (Entry, bool) {
	q := strings.TrimSpace(query)
	q = strings.TrimPrefix(q, ";")
	q = strings.TrimSpace(q)
	if q == "" {
		return Entry{}, false
	}
	q = strings.ToLower(q)

	const (
		none = iota
		contains
		prefix
		exact
	)
	best := none
	var found Entry
	for _, e := range s.List() {
		rank := none
		for _, text := range []string{e.Name, e.Comment} {
			t := strings.ToLower(text)
			r := none
			switch {
			case t == "":
			case t == q:
				r = exact
			case strings.HasPrefix(t, q):
				r = prefix
			case strings.Contains(t, q):
				r = contains
			}
			if r > rank {
				rank = r
			}
		}
		if rank == none {
			continue
		}
		if rank > best || (rank == best && e.Address < found.Address) {
			best = rank
			found = e
		}
	}
	return found, best != none
}

// FindOrAddress resolves query as a symbol first and as a plain hex address
// second.
func (s *Store) FindOrAddress(query string) (uint16, bool) {
	if e, ok := s.Find(query); ok {
		return e.Address, true
	}
	q := strings.TrimSpace(query)
	if !plainHexAddrRe.MatchString(q) {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(q, "$"), 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
