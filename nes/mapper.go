package nes

import "github.com/golang/glog"

// bankMapper is the polymorphic cartridge-specific address translator: bank
// switching and PRG/CHR indexing. It only ever sees the CPU $8000-$FFFF
// window (SRAM and expansion-ROM are handled by the outer Mapper) and the
// full PPU $0000-$1FFF CHR window.
type bankMapper interface {
	readPRG(cpuAddr uint16) byte
	writePRG(cpuAddr uint16, data byte)
	readCHR(ppuAddr uint16) byte
	writeCHR(ppuAddr uint16, data byte)
}

// Mapper is the cartridge's bank-switching hardware: an address translator
// for PRG and CHR space, plus the SRAM window and mirroring passthrough
// every mapper shares regardless of its own bank-switching scheme.
// https://www.nesdev.org/wiki/Mapper
type Mapper struct {
	cartridge *Cartridge
	banks     bankMapper
}

// NewMapper builds the Mapper for the cartridge's declared mapper id.
func NewMapper(cartridge *Cartridge) (*Mapper, error) {
	var banks bankMapper
	switch cartridge.MapperID() {
	case 0:
		banks = newMapper0(cartridge)
	case 2:
		banks = newMapper2(cartridge)
	default:
		return nil, &unsupportedMapperError{id: cartridge.MapperID()}
	}
	return &Mapper{cartridge: cartridge, banks: banks}, nil
}

type unsupportedMapperError struct{ id byte }

func (e *unsupportedMapperError) Error() string {
	return "nes: unsupported mapper id"
}

func (e *unsupportedMapperError) Unwrap() error { return ErrRomUnsupportedMapper }

// Read dispatches a CPU address to SRAM, the mapper's PRG window, or a
// no-op for the unimplemented expansion-ROM window. Addresses below
// $4020 reaching here are a bus-routing bug: the CPU bus must have routed
// them to WRAM/PPU/controller/APU already.
func (m *Mapper) Read(cpuAddr uint16) byte {
	switch {
	case cpuAddr < 0x4020:
		glog.Fatalf("mapper: bus-routing bug, address 0x%04x must not reach the mapper", cpuAddr)
		return 0
	case cpuAddr < 0x6000:
		return 0 // expansion ROM, unimplemented
	case cpuAddr < 0x8000:
		return m.cartridge.ReadSRAM(cpuAddr - 0x6000)
	default:
		return m.banks.readPRG(cpuAddr)
	}
}

func (m *Mapper) Write(cpuAddr uint16, data byte) {
	switch {
	case cpuAddr < 0x4020:
		glog.Fatalf("mapper: bus-routing bug, address 0x%04x must not reach the mapper", cpuAddr)
	case cpuAddr < 0x6000:
		// expansion ROM, unimplemented: no-op.
	case cpuAddr < 0x8000:
		m.cartridge.WriteSRAM(cpuAddr-0x6000, data)
	default:
		m.banks.writePRG(cpuAddr, data)
	}
}

func (m *Mapper) ReadCHR(ppuAddr uint16) byte         { return m.banks.readCHR(ppuAddr) }
func (m *Mapper) WriteCHR(ppuAddr uint16, data byte)  { m.banks.writeCHR(ppuAddr, data) }
func (m *Mapper) Mirroring() Mirroring                { return m.cartridge.Mirroring() }
