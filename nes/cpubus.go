package nes

import "github.com/golang/glog"

// CPUBus is the CPU-side address-space fabric: 64 KiB routed to internal
// RAM, the PPU register window, the controller ports, and the mapper.
// https://www.nesdev.org/wiki/CPU_memory_map
type CPUBus struct {
	wram       *RAM
	ppu        *PPU
	mapper     *Mapper
	controller *Controller
}

// NewCPUBus creates a new Bus for CPU.
// CPU memory map
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x4013,0x4015,0x4018-0x401F	APU/test registers (tolerated no-ops)
// 0x4014	OAM DMA port
// 0x4016 - 0x4017	Controller ports
// 0x4020 - 0xFFFF	Mapper (SRAM, expansion ROM, PRG)
func NewCPUBus(wram *RAM, ppu *PPU, mapper *Mapper, controller *Controller) *CPUBus {
	return &CPUBus{wram, ppu, mapper, controller}
}

func (b *CPUBus) readPPURegister(address uint16) byte {
	switch address & 0x2007 {
	case 0x2002:
		return b.ppu.readPPUSTATUS()
	case 0x2004:
		return b.ppu.readOAMDATA()
	case 0x2007:
		return b.ppu.readPPUDATA()
	default:
		// Write-only register: open-bus value.
		return 0
	}
}

// read reads a byte.
func (b *CPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address & 0x07FF)
	case address < 0x4000:
		return b.readPPURegister(address)
	case address == 0x4016:
		return b.controller.read()
	case address == 0x4017:
		return 0 // controller 2, unmodeled
	case address < 0x4020:
		glog.V(1).Infof("cpubus: unimplemented read at 0x%04x\n", address)
		return 0
	default:
		return b.mapper.Read(address)
	}
}

// writeOAMDMA copies a full page into the PPU's primary OAM, as triggered
// by a CPU write to $4014.
func (b *CPUBus) writeOAMDMA(data [256]byte) {
	b.ppu.writeOAMDMA(data)
}

// read16 reads 2 bytes, little-endian.
func (b *CPUBus) read16(address uint16) uint16 {
	l := uint16(b.read(address))
	h := uint16(b.read(address+1)) << 8
	return h | l
}

func (b *CPUBus) writeToPPURegisters(address uint16, data byte) {
	switch address & 0x2007 {
	case 0x2000:
		b.ppu.writePPUCTRL(data)
	case 0x2001:
		b.ppu.writePPUMASK(data)
	case 0x2002:
		// read-only, writes discarded.
	case 0x2003:
		b.ppu.writeOAMADDR(data)
	case 0x2004:
		b.ppu.writeOAMDATA(data)
	case 0x2005:
		b.ppu.writePPUSCROLL(data)
	case 0x2006:
		b.ppu.writePPUADDR(data)
	case 0x2007:
		b.ppu.writePPUDATA(data)
	}
}

// write writes a byte.
func (b *CPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address&0x07FF, data)
	case address < 0x4000:
		b.writeToPPURegisters(address, data)
	case address == 0x4014:
		// Handled by CPU.write, which needs its own cycle parity for the
		// DMA stall count; reaching here is a routing bug.
		glog.Fatalf("cpubus: $4014 (OAMDMA) must be intercepted by the CPU, not the bus")
	case address == 0x4016:
		b.controller.write(data)
	case address == 0x4017:
		// controller 2 strobe, unmodeled: no-op.
	case address < 0x4020:
		glog.V(1).Infof("cpubus: unimplemented write at 0x%04x = 0x%02x\n", address, data)
	default:
		b.mapper.Write(address, data)
	}
}
