package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"gonesdump/internal/ines"
	"gonesdump/internal/memory"
)

var (
	helpHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	helpCmdStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	helpFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpDimStyle  = lipgloss.NewStyle().Faint(true)
	errBadgeStyle = lipgloss.NewStyle().Bold(true).
			Background(lipgloss.Color("1")).
			Foreground(lipgloss.Color("15"))
)

// image is a ROM or raw binary mapped into the CPU address space.
type image struct {
	path      string
	space     memory.Space
	bankCount int
	rom       *ines.ROM
}

func loadImage(args ImageArgs) (*image, error) {
	size, err := memory.ParseHex(args.BankSize)
	if err != nil {
		return nil, err
	}
	bankSize := int(size)
	if args.Raw {
		base, err := memory.ParseHex(args.Base)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(args.ROM)
		if err != nil {
			return nil, err
		}
		flat, err := memory.NewFlat(base, data, bankSize)
		if err != nil {
			return nil, err
		}
		return &image{path: args.ROM, space: flat, bankCount: flat.BankCount()}, nil
	}

	rom, err := ines.Load(args.ROM)
	if err != nil {
		return nil, err
	}
	opts := []memory.Option{memory.WithBankSize(bankSize)}
	if args.PRGMap != "" {
		pages, err := memory.ParsePageList(args.PRGMap)
		if err != nil {
			return nil, err
		}
		opts = append(opts, memory.WithPRGMap(pages))
	}
	if args.RAM != "" {
		data, err := os.ReadFile(args.RAM)
		if err != nil {
			return nil, err
		}
		opts = append(opts, memory.WithRAM(data))
	}
	if args.SRAM != "" {
		data, err := os.ReadFile(args.SRAM)
		if err != nil {
			return nil, err
		}
		opts = append(opts, memory.WithSRAM(data))
	}
	bus, err := memory.FromROM(rom, opts...)
	if err != nil {
		return nil, err
	}
	return &image{path: args.ROM, space: bus, bankCount: bus.BankCount(), rom: rom}, nil
}

func colorizedHelpPrinter(base kong.HelpPrinter) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		out := ctx.Stdout
		var buf bytes.Buffer
		ctx.Stdout = &buf
		err := base(options, ctx)
		ctx.Stdout = out
		if err != nil {
			return err
		}
		text := buf.String()
		if !helpColorEnabled() {
			_, werr := io.WriteString(out, text)
			return werr
		}
		_, werr := io.WriteString(out, colorizeHelpText(text))
		return werr
	}
}

func helpColorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NESDUMP_HELP_COLOR"))) {
	case "always":
		return true
	case "never":
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func colorizeHelpText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if strings.HasPrefix(trim, "Usage:") ||
			trim == "Commands:" ||
			trim == "Arguments:" ||
			trim == "Flags:" {
			lines[i] = helpHeadStyle.Render(trim)
			continue
		}
		if strings.HasPrefix(trim, "Run \"") {
			lines[i] = helpDimStyle.Render(line)
			continue
		}
		if leading <= 6 && strings.HasPrefix(trim, "-") {
			lines[i] = colorizeHelpLeadingToken(line, helpFlagStyle)
			continue
		}
		if leading == 2 && trim != "" && !strings.HasPrefix(trim, "-") &&
			(strings.Contains(trim, "  ") || strings.Contains(trim, "(")) {
			lines[i] = colorizeHelpLeadingToken(line, helpCmdStyle)
		}
	}
	return strings.Join(lines, "\n")
}

func colorizeHelpLeadingToken(line string, style lipgloss.Style) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	trim := strings.TrimSpace(line)
	sep := strings.Index(trim, "  ")
	if sep < 0 {
		return indent + style.Render(trim)
	}
	return indent + style.Render(trim[:sep]) + trim[sep:]
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, formatCliError(err))
	return 1
}

func formatCliError(err error) string {
	if err == nil {
		return ""
	}
	return formatCliBadge("ERR", err.Error())
}

func formatCliBadge(code string, msg string) string {
	if cliColorEnabled() {
		return errBadgeStyle.Render(" "+code+" ") + " " + msg
	}
	return "[" + code + "] " + msg
}

func cliColorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NESDUMP_COLOR"))) {
	case "always":
		return true
	case "never":
		return false
	}
	return helpColorEnabled()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
