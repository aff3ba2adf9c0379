package nes

// PPUBus is the PPU-side 16 KiB address space: pattern tables via the
// mapper's CHR, nametables collapsed through the cartridge's mirroring
// mode, and palette RAM with its universal-background aliasing.
// https://www.nesdev.org/wiki/PPU_memory_map
type PPUBus struct {
	vram   *RAM // up to 4 KiB of nametable RAM
	mapper *Mapper
	palette [32]byte
}

// NewPPUBus creates a new Bus for the PPU. vram is sized at 4 KiB so it can
// hold a FourScreen cartridge's full nametable set; Horizontal/Vertical/
// SingleScreen cartridges only ever address a subset of it.
func NewPPUBus(vram *RAM, mapper *Mapper) *PPUBus {
	return &PPUBus{vram: vram, mapper: mapper}
}

// nametableIndex collapses a $2000-$2FFF address into the physical vram
// offset, per the cartridge's mirroring mode.
func (b *PPUBus) nametableIndex(address uint16) uint16 {
	switch b.mapper.Mirroring() {
	case MirrorHorizontal:
		if address <= 0x27FF {
			return (address & 0x23FF) - 0x2000
		}
		return (address & 0x2BFF) - 0x2000
	case MirrorVertical:
		return (address & 0x27FF) - 0x2000
	case MirrorSingleScreen:
		return (address & 0x23FF) - 0x2000
	default: // MirrorFourScreen: no mapper-provided nametable RAM, fall back to internal.
		return address - 0x2000
	}
}

func (b *PPUBus) paletteIndex(address uint16) uint16 {
	i := (address - 0x3F00) % 32
	switch i {
	case 0x10, 0x14, 0x18, 0x1C:
		i -= 0x10
	}
	return i
}

// read reads data.
// Address        Size	  Description
// -------------------------------------
// $0000-$0FFF	  $1000	  Pattern table 0
// $1000-$1FFF	  $1000	  Pattern table 1
// $2000-$23FF	  $0400	  Nametable 0
// $2400-$27FF	  $0400	  Nametable 1
// $2800-$2BFF	  $0400	  Nametable 2
// $2C00-$2FFF	  $0400	  Nametable 3
// $3000-$3EFF	  $0F00	  Mirrors of $2000-$2EFF
// $3F00-$3F1F	  $0020	  Palette RAM indexes
// $3F20-$3FFF	  $00E0	  Mirrors of $3F00-$3F1F
// $4000-$FFFF	          Mirror of $0000-$3FFF
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) byte {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		return b.mapper.ReadCHR(address)
	case address < 0x3000:
		return b.vram.read(b.nametableIndex(address))
	case address < 0x3F00:
		return b.vram.read(b.nametableIndex(address - 0x1000))
	default:
		return b.palette[b.paletteIndex(address)]
	}
}

// write writes data.
func (b *PPUBus) write(address uint16, data byte) {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		b.mapper.WriteCHR(address, data)
	case address < 0x3000:
		b.vram.write(b.nametableIndex(address), data)
	case address < 0x3F00:
		b.vram.write(b.nametableIndex(address-0x1000), data)
	default:
		b.palette[b.paletteIndex(address)] = data
	}
}
