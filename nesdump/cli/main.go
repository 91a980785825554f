package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gonesdump/internal/logging"
)

func Main(argv []string) int {
	args, parsed, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 2
	}
	if cliColorEnabled() {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	lg := logging.NewLogger(args.LogLevel)
	defer lg.Close()

	selected := parsed.Selected()
	if selected == nil {
		return 2
	}
	switch normalizeSelectedPath(selected.Path()) {
	case "dump":
		return cmdDump(lg, args.Dump)
	case "mem read":
		return cmdReadMem(args.Mem.Read)
	case "sym", "sym ls":
		return cmdSymList(lg, args.Sym.LS.ImageArgs)
	case "sym find":
		return cmdSymFind(lg, args.Sym.Find)
	case "info":
		return cmdInfo(args.Info.ImageArgs)
	default:
		return 2
	}
}

func normalizeSelectedPath(path string) string {
	path = cliPathAliasPattern.ReplaceAllString(path, "")
	return strings.Join(strings.Fields(strings.ReplaceAll(path, ".", " ")), " ")
}

func parseCLI(argv []string) (cliArgs, *kong.Context, error) {
	var args cliArgs
	parser, err := kong.New(
		&args,
		kong.Name("gonesdump"),
		kong.Description("Static 6502 code dumper for NES ROM images."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		}),
		kong.Help(colorizedHelpPrinter(kong.DefaultHelpPrinter)),
		kong.ShortHelp(colorizedHelpPrinter(kong.DefaultShortHelpPrinter)),
		kong.Configuration(kong.JSON, "~/.config/gonesdump.json", ".gonesdump.json"),
	)
	if err != nil {
		return args, nil, err
	}
	parsed, err := parser.Parse(argv)
	if err != nil {
		return args, nil, err
	}
	return args, parsed, nil
}
