package cli

import "fmt"

var vectorNames = []struct {
	name string
	addr uint16
}{
	{"NMI", 0xFFFA},
	{"RESET", 0xFFFC},
	{"IRQ", 0xFFFE},
}

func cmdInfo(args ImageArgs) int {
	img, err := loadImage(args)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Image:      %s\n", img.path)
	if rom := img.rom; rom != nil {
		fmt.Printf("Mapper:     %d\n", rom.Mapper)
		fmt.Printf("Mirroring:  %s\n", rom.Mirroring)
		fmt.Printf("Battery:    %s\n", yesNo(rom.Battery))
		fmt.Printf("Trainer:    %s\n", yesNo(len(rom.Trainer) > 0))
		fmt.Printf("PRG:        %d x 16 KB\n", rom.PRGBanks())
		fmt.Printf("CHR:        %d x 8 KB\n", rom.CHRBanks())
		fmt.Printf("PRG offset: $%X\n", rom.PRGOffset())
	} else {
		fmt.Printf("Raw image:  yes\n")
	}
	fmt.Printf("Banks:      %d\n", img.bankCount)
	for _, v := range vectorNames {
		target := uint16(img.space.ReadByte(v.addr)) | uint16(img.space.ReadByte(v.addr+1))<<8
		if bank := img.space.Bank(target); bank >= 0 {
			fmt.Printf("%-11s $%04X (bank %02X)\n", v.name+":", target, bank)
		} else {
			fmt.Printf("%-11s $%04X\n", v.name+":", target)
		}
	}
	return 0
}
