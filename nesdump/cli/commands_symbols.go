package cli

import (
	"fmt"
	"strings"

	"gonesdump/internal/logging"
	"gonesdump/internal/symbols"
)

func loadSymbols(lg *logging.LoggerCloser, args ImageArgs) (*symbols.Store, error) {
	img, err := loadImage(args)
	if err != nil {
		return nil, err
	}
	store, err := symbols.Load(img.path, img.bankCount, img.space)
	if err != nil {
		return nil, err
	}
	lg.Debug("Loaded name lists", "rom", img.path, "symbols", store.Len())
	return store, nil
}

func cmdSymList(lg *logging.LoggerCloser, args ImageArgs) int {
	store, err := loadSymbols(lg, args)
	if err != nil {
		return fail(err)
	}
	for _, e := range store.List() {
		fmt.Println(formatSymbolEntry(e))
	}
	return 0
}

func cmdSymFind(lg *logging.LoggerCloser, args cliSymFindCmd) int {
	store, err := loadSymbols(lg, args.ImageArgs)
	if err != nil {
		return fail(err)
	}
	query := strings.Join(args.Query, " ")
	if e, ok := store.Find(query); ok {
		fmt.Println(formatSymbolEntry(e))
		return 0
	}
	addr, ok := store.FindOrAddress(query)
	if !ok {
		return fail(fmt.Errorf("Symbol not found: %s", query))
	}
	sym, ok := store.Lookup(addr)
	if !ok {
		return fail(fmt.Errorf("No symbol at $%04X.", addr))
	}
	fmt.Printf("%04X  %s\n", addr, sym.Name)
	return 0
}

func formatSymbolEntry(e symbols.Entry) string {
	line := fmt.Sprintf("%-8s %04X  %s", e.Region, e.Address, e.Name)
	if lines := e.CommentLines(); len(lines) > 0 {
		line += "  ; " + strings.Join(lines, " / ")
	}
	return line
}
