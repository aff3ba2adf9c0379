package nes

// RAM is a flat byte-addressed memory block shared by the CPU's 2 KiB
// internal WRAM and the PPU's 4 KiB nametable RAM. Callers are
// responsible for mirroring/masking the address before calling in; RAM
// itself never panics on the addresses it is actually given.
type RAM struct {
	data []byte
}

// NewRAM creates a RAM of the given size in bytes.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}
