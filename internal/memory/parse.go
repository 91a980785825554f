package memory

import (
	"fmt"
	"strconv"
	"strings"
)

func trimHexPrefix(value string) string {
	text := strings.TrimSpace(strings.ToLower(value))
	text = strings.TrimPrefix(text, "$")
	return strings.TrimPrefix(text, "0x")
}

func ParseHex(value string) (uint16, error) {
	v, err := strconv.ParseUint(trimHexPrefix(value), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("Invalid hex value: %s", value)
	}
	return uint16(v), nil
}

// ParseAddress parses a range bound. Unlike ParseHex it accepts values past
// the top of the address space so callers can pass them through unchanged.
func ParseAddress(value string) (int, error) {
	v, err := strconv.ParseUint(trimHexPrefix(value), 16, 24)
	if err != nil {
		return 0, fmt.Errorf("Invalid address: %s", value)
	}
	return int(v), nil
}

// ParsePageList parses a comma separated list of 8 KB PRG page indices.
func ParsePageList(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("PRG map is empty.")
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 0, 32)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("Invalid PRG page: %s", f)
		}
		out = append(out, int(v))
	}
	return out, nil
}
