package cli

import "regexp"

type cliArgs struct {
	LogLevel string      `name:"log-level" env:"NESDUMP_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level."`
	Dump     cliDumpCmd  `cmd:"" aliases:"d" help:"Disassemble an address range into a text listing."`
	Mem      cliMemCmd   `cmd:"" help:"Memory commands."`
	Sym      cliSymCmd   `cmd:"" name:"sym" help:"Symbol (.nl name list) commands."`
	Info     cliImageCmd `cmd:"" help:"Show ROM image details."`
}

// ImageArgs selects the image and how it is mapped into the address
// space. Shared by every command that reads memory.
type ImageArgs struct {
	ROM      string `arg:"" name:"rom" type:"existingfile" help:"ROM image (.nes), or a raw binary with --raw."`
	Raw      bool   `name:"raw" help:"Treat the image as a raw binary loaded at --base."`
	Base     string `name:"base" default:"8000" help:"Load address of a --raw image (hex: 0xNNNN, $NNNN, NNNN)."`
	BankSize string `name:"bank-size" default:"4000" enum:"2000,4000" env:"NESDUMP_BANK_SIZE" help:"ROM bank size in hex (2000 or 4000)."`
	PRGMap   string `name:"prg-map" help:"8 KB PRG pages at $8000,$A000,$C000,$E000 (e.g. 0,1,6,7)."`
	RAM      string `name:"ram" type:"existingfile" help:"Internal RAM snapshot (2 KB)."`
	SRAM     string `name:"sram" type:"existingfile" help:"Cartridge RAM snapshot at $6000 (8 KB)."`
}

type cliImageCmd struct {
	ImageArgs `embed:""`
}

type cliDumpCmd struct {
	ImageArgs `embed:""`

	Start     string `short:"s" default:"8000" help:"Address of the first instruction (hex)."`
	End       string `short:"e" default:"FFFF" help:"Address of the last instruction (hex)."`
	Output    string `short:"o" type:"path" help:"Write the listing to a file instead of stdout."`
	NoSymbols bool   `name:"no-symbols" env:"NESDUMP_NO_SYMBOLS" help:"Ignore .nl name lists next to the image."`
	Offsets   bool   `name:"offsets" env:"NESDUMP_OFFSETS" help:"Show file offsets instead of bank:address for ROM."`
	RegNames  bool   `name:"regnames" negatable:"" default:"true" env:"NESDUMP_REGNAMES" help:"Name hardware register operands."`
}

type cliMemCmd struct {
	Read cliReadMemCmd `cmd:"" aliases:"r" help:"Hex dump memory through the mapped image."`
}

type cliReadMemCmd struct {
	ImageArgs `embed:""`

	Addr    string `arg:"" help:"Address (hex: 0xNNNN, $NNNN, NNNN)."`
	Length  string `arg:"" help:"Length (hex: 0xNNNN, $NNNN, NNNN)."`
	JSON    bool   `name:"json" help:"Output JSON with address and buffer."`
	Columns *int   `short:"c" name:"columns" help:"Bytes per line (default: 16)."`
	NoHex   bool   `name:"nohex" help:"Hide hex column."`
	NoASCII bool   `name:"noascii" help:"Hide ASCII column."`
}

type cliSymCmd struct {
	LS   cliImageCmd   `cmd:"" default:"withargs" name:"ls" help:"List loaded symbols."`
	Find cliSymFindCmd `cmd:"" aliases:"f" help:"Find a symbol by name, comment or address."`
}

type cliSymFindCmd struct {
	ImageArgs `embed:""`

	Query []string `arg:"" help:"Name, comment text or hex address."`
}

var cliPathAliasPattern = regexp.MustCompile(`\s*\([^)]*\)`)
