package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonesdump/internal/disasm"
	"gonesdump/internal/dumper"
	"gonesdump/internal/logging"
	"gonesdump/internal/memory"
	"gonesdump/internal/symbols"
)

func cmdDump(lg *logging.LoggerCloser, args cliDumpCmd) int {
	start, err := memory.ParseAddress(args.Start)
	if err != nil {
		return fail(err)
	}
	end, err := memory.ParseAddress(args.End)
	if err != nil {
		return fail(err)
	}
	img, err := loadImage(args.ImageArgs)
	if err != nil {
		return fail(err)
	}
	cfg := dumper.Config{
		Memory:          img.space,
		Sizes:           disasm.SizeTable{},
		Formatter:       disasm.NewFormatter(img.space),
		Mapper:          img.space,
		ShowFileOffsets: args.Offsets,
		RegisterNames:   args.RegNames,
		Logger:          lg.Logger,
	}
	if !args.NoSymbols {
		store, err := symbols.Load(img.path, img.bankCount, img.space)
		if err != nil {
			return fail(err)
		}
		lg.Debug("Loaded name lists", "symbols", store.Len())
		cfg.Symbols = store
	}

	var out io.Writer = os.Stdout
	target := "stdout"
	var file *os.File
	if args.Output != "" {
		file, err = os.Create(args.Output)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		out = file
		target = args.Output
	}
	bw := bufio.NewWriter(out)

	lg.Infof("Dumping $%04X - $%04X to %q...", start, end, target)
	sum, err := dumper.New(cfg).Dump(bw, start, end)
	if err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return fail(fmt.Errorf("close %s: %w", args.Output, err))
		}
	}
	lg.Info("Done.",
		"lines", sum.Lines,
		"undefined", sum.Undefined,
		"interrupted", sum.Interrupted,
		"overflow", sum.Overflow)
	return 0
}
