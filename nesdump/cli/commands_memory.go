package cli

import (
	"fmt"

	"gonesdump/internal/memory"
)

func cmdReadMem(args cliReadMemCmd) int {
	addr, err := memory.ParseHex(args.Addr)
	if err != nil {
		return fail(err)
	}
	length, err := memory.ParseHex(args.Length)
	if err != nil {
		return fail(err)
	}
	img, err := loadImage(args.ImageArgs)
	if err != nil {
		return fail(err)
	}
	data := memory.Read(img.space, addr, int(length))
	if args.JSON {
		text, err := memory.DumpJSON(addr, data)
		if err != nil {
			return fail(err)
		}
		fmt.Println(text)
		return 0
	}
	cols := 16
	if args.Columns != nil {
		cols = *args.Columns
	}
	text := memory.DumpHuman(addr, data, cols, !args.NoHex, !args.NoASCII)
	if text != "" {
		fmt.Println(text)
	}
	return 0
}
