package memory

import (
	"encoding/json"
	"fmt"
	"strings"
)

func DumpJSON(address uint16, buffer []byte) (string, error) {
	type payload struct {
		Address uint16 `json:"address"`
		Buffer  []byte `json:"buffer"`
	}
	encoded, err := json.Marshal(payload{Address: address, Buffer: buffer})
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DumpHuman renders buffer as classic hex dump rows of columns bytes each.
func DumpHuman(address uint16, buffer []byte, columns int, showHex bool, showASCII bool) string {
	if columns <= 0 {
		columns = 16
	}
	lines := make([]string, 0, (len(buffer)/columns)+1)
	for offset := 0; offset < len(buffer); offset += columns {
		addr := uint16((int(address) + offset) & 0xFFFF)
		end := offset + columns
		if end > len(buffer) {
			end = len(buffer)
		}
		chunk := buffer[offset:end]
		parts := []string{fmt.Sprintf("%04X:", addr)}
		if showHex {
			hex := make([]string, len(chunk))
			for i, b := range chunk {
				hex[i] = fmt.Sprintf("%02X", b)
			}
			hexWidth := columns*3 - 1
			hexText := strings.Join(hex, " ")
			if len(hexText) < hexWidth {
				hexText += strings.Repeat(" ", hexWidth-len(hexText))
			}
			parts = append(parts, hexText)
		}
		if showASCII {
			parts = append(parts, formatASCIIChunk(chunk))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	return strings.Join(lines, "\n")
}

func formatASCIIChunk(chunk []byte) string {
	var ascii strings.Builder
	ascii.Grow(len(chunk))
	for _, b := range chunk {
		if b >= 32 && b <= 126 {
			ascii.WriteByte(b)
		} else {
			ascii.WriteByte('.')
		}
	}
	return ascii.String()
}
