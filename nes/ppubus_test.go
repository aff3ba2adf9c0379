package nes

import "testing"

func newTestPPUBus(t *testing.T, mirror Mirroring) *PPUBus {
	t.Helper()
	c := cartridgeWithMapper(t, 0, 1, 1)
	c.mirror = mirror
	mapper, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	return NewPPUBus(NewRAM(0x1000), mapper)
}

func TestPPUBusHorizontalMirroring(t *testing.T) {
	b := newTestPPUBus(t, MirrorHorizontal)
	b.write(0x2000, 0x11)
	if got := b.read(0x2400); got != 0x11 {
		t.Fatalf("0x2400 (same horizontal pair as 0x2000): got=0x%02x, want=0x11", got)
	}
	if got := b.read(0x2800); got == 0x11 {
		t.Fatalf("0x2800 should not mirror 0x2000 under horizontal mirroring")
	}
}

func TestPPUBusVerticalMirroring(t *testing.T) {
	b := newTestPPUBus(t, MirrorVertical)
	b.write(0x2000, 0x22)
	if got := b.read(0x2800); got != 0x22 {
		t.Fatalf("0x2800 (same vertical pair as 0x2000): got=0x%02x, want=0x22", got)
	}
	if got := b.read(0x2400); got == 0x22 {
		t.Fatalf("0x2400 should not mirror 0x2000 under vertical mirroring")
	}
}

func TestPPUBusNametableMirrorsIntoUpperRange(t *testing.T) {
	b := newTestPPUBus(t, MirrorHorizontal)
	b.write(0x2000, 0x33)
	if got := b.read(0x3000); got != 0x33 {
		t.Fatalf("0x3000 should mirror 0x2000: got=0x%02x, want=0x33", got)
	}
}

func TestPPUBusPaletteMod32(t *testing.T) {
	b := newTestPPUBus(t, MirrorHorizontal)
	b.write(0x3F05, 0x44)
	if got := b.read(0x3F25); got != 0x44 {
		t.Fatalf("0x3F25 should mirror 0x3F05 (mod 32): got=0x%02x, want=0x44", got)
	}
}

func TestPPUBusUniversalBackgroundAliasing(t *testing.T) {
	b := newTestPPUBus(t, MirrorHorizontal)
	b.write(0x3F00, 0x0F)
	if got := b.read(0x3F10); got != 0x0F {
		t.Fatalf("0x3F10 should alias the universal background color at 0x3F00: got=0x%02x, want=0x0f", got)
	}
	if got := b.read(0x3F14); got != 0x00 {
		t.Fatalf("0x3F14 should alias 0x3F04, untouched: got=0x%02x, want=0x00", got)
	}
}

func TestPPUBusCHRRoutesThroughMapper(t *testing.T) {
	c := cartridgeWithMapper(t, 0, 1, 0) // chrBanks=0: CHR-RAM, writable
	mapper, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	b := NewPPUBus(NewRAM(0x1000), mapper)
	b.write(0x0010, 0x55)
	if got := b.read(0x0010); got != 0x55 {
		t.Fatalf("CHR round trip through mapper: got=0x%02x, want=0x55", got)
	}
}
