package symbols

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// ParseNameList reads a name list. Each entry has the form
//
//	$ADDR#Name#Comment
//	$ADDR/LEN#Name#Comment
//
// where ADDR and LEN are hex. A comment ending in a backslash continues on
// the next line. Lines not starting with '$' are ignored.
func ParseNameList(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}
	for {
		line, ok := next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "$") {
			continue
		}
		start := lineNo
		fields := strings.SplitN(line[1:], "#", 3)
		addr, length, err := parseNameListAddress(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", start, err)
		}
		var name, comment string
		if len(fields) > 1 {
			name = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			comment = fields[2]
			for strings.HasSuffix(comment, `\`) {
				comment = strings.TrimSuffix(comment, `\`)
				more, ok := next()
				if !ok {
					break
				}
				comment += LineSeparator + more
			}
		}
		for i := 0; i < length && int(addr)+i <= 0xFFFF; i++ {
			sym := Symbol{Address: addr + uint16(i), Name: name}
			if i == 0 {
				sym.Comment = comment
			} else if name != "" {
				sym.Name = fmt.Sprintf("%s+%d", name, i)
			}
			t.Add(sym)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseNameListAddress(text string) (uint16, int, error) {
	addrText, lenText, hasLen := strings.Cut(text, "/")
	addr, err := strconv.ParseUint(strings.TrimSpace(addrText), 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address %q", addrText)
	}
	length := 1
	if hasLen {
		n, err := strconv.ParseUint(strings.TrimSpace(lenText), 16, 16)
		if err != nil || n == 0 {
			return 0, 0, fmt.Errorf("invalid array length %q", lenText)
		}
		length = int(n)
	}
	return uint16(addr), length, nil
}

// RAMFile names the RAM name list belonging to a ROM image.
func RAMFile(romPath string) string {
	return romPath + ".ram.nl"
}

// BankFile names the name list for one ROM bank.
func BankFile(romPath string, bank int) string {
	return fmt.Sprintf("%s.%X.nl", romPath, bank)
}

// loadNameFile parses path, returning a nil table when it does not exist.
func loadNameFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	t, err := ParseNameList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
