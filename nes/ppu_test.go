package nes

import "testing"

func newTestPPU(t *testing.T) *PPU {
	t.Helper()
	c := cartridgeWithMapper(t, 0, 1, 0)
	mapper, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	return NewPPU(NewPPUBus(NewRAM(0x1000), mapper))
}

func TestPPUStepAdvancesCycle(t *testing.T) {
	p := newTestPPU(t)
	p.Reset()
	p.Step()
	if p.cycle != 1 || p.scanline != 240 {
		t.Fatalf("cycle/scanline: got=(%d,%d), want=(1,240)", p.cycle, p.scanline)
	}
}

func TestPPUFrameWrapSwapsBuffersAndReportsOnce(t *testing.T) {
	p := newTestPPU(t)
	p.cycle = 340
	p.scanline = 261
	p.front[0] = 0xAA
	p.back[0] = 0xBB
	startFrame := p.frame

	p.Step()

	if p.cycle != 0 || p.scanline != 0 {
		t.Fatalf("cycle/scanline after wrap: got=(%d,%d), want=(0,0)", p.cycle, p.scanline)
	}
	if p.frame != startFrame+1 {
		t.Fatalf("frame count: got=%d, want=%d", p.frame, startFrame+1)
	}
	if p.front[0] != 0xBB {
		t.Fatalf("front buffer should be the old back buffer after swap: got=0x%02x, want=0xbb", p.front[0])
	}
	if _, ok := p.Frame(); !ok {
		t.Fatalf("Frame() should report a new frame exactly at (0,0)")
	}

	p.Step()
	if _, ok := p.Frame(); ok {
		t.Fatalf("Frame() should not report a new frame again until the next wrap")
	}
}

func TestPPUOAMDMARoundTrip(t *testing.T) {
	p := newTestPPU(t)
	var data [256]byte
	data[4] = 0x99
	p.writeOAMDMA(data)
	p.writeOAMADDR(4)
	if got := p.readOAMDATA(); got != 0x99 {
		t.Fatalf("readOAMDATA: got=0x%02x, want=0x99", got)
	}
}

func TestPPUOAMDMAStartsFromOAMADDRAndWraps(t *testing.T) {
	p := newTestPPU(t)
	p.writeOAMADDR(0xFE)
	var data [256]byte
	data[0] = 0x11 // lands at primaryOAM[0xFE]
	data[1] = 0x22 // lands at primaryOAM[0xFF]
	data[2] = 0x33 // wraps around to primaryOAM[0x00]
	p.writeOAMDMA(data)

	p.writeOAMADDR(0xFE)
	if got := p.readOAMDATA(); got != 0x11 {
		t.Fatalf("primaryOAM[0xFE]: got=0x%02x, want=0x11", got)
	}
	p.writeOAMADDR(0xFF)
	if got := p.readOAMDATA(); got != 0x22 {
		t.Fatalf("primaryOAM[0xFF]: got=0x%02x, want=0x22", got)
	}
	p.writeOAMADDR(0x00)
	if got := p.readOAMDATA(); got != 0x33 {
		t.Fatalf("primaryOAM[0x00] after wraparound: got=0x%02x, want=0x33", got)
	}
}

func TestPPURenderBackgroundPixelHonorsFineXScroll(t *testing.T) {
	p := newTestPPU(t)
	p.showBackground = true
	p.cycle = 1 // x = cycle-1 = 0, so shift is driven entirely by fine X
	p.tileDataBuffer[4] = 0x80 // bit 7 set, every other bit clear
	p.tileDataBuffer[5] = 0x00

	p.x = 0
	if got := p.renderBackgroundPixel(); got != 1 {
		t.Fatalf("fine X=0: got=%d, want=1 (bit 7 of tileDataBuffer[4] sampled)", got)
	}

	p.x = 1
	if got := p.renderBackgroundPixel(); got != 0 {
		t.Fatalf("fine X=1: got=%d, want=0 (fine X should shift sampling to bit 6)", got)
	}
}

func TestPPUNMIEdgeFiresAfterTenDotDelay(t *testing.T) {
	p := newTestPPU(t)
	p.nmiOutput = true
	p.nmiOccurred = true // a rising edge the first time stepNMIEdge observes it

	for i := 0; i < 9; i++ {
		if p.stepNMIEdge() {
			t.Fatalf("stepNMIEdge fired early on dot %d, want dot 10", i+1)
		}
	}
	if !p.stepNMIEdge() {
		t.Fatalf("stepNMIEdge should fire exactly 10 dots after the rising edge")
	}
}

func TestPPUNMIEdgeDoesNotRefireWithoutANewEdge(t *testing.T) {
	p := newTestPPU(t)
	p.nmiOutput = true
	p.nmiOccurred = true
	for i := 0; i < 10; i++ {
		p.stepNMIEdge()
	}
	if p.stepNMIEdge() {
		t.Fatalf("stepNMIEdge should stay quiet without a fresh rising edge")
	}
}

func TestPPUSpriteHeightReflectsPPUCTRL(t *testing.T) {
	p := newTestPPU(t)
	if p.spriteHeight() != 8 {
		t.Fatalf("spriteHeight default: got=%d, want=8", p.spriteHeight())
	}
	p.writePPUCTRL(1 << 5)
	if p.spriteHeight() != 16 {
		t.Fatalf("spriteHeight after PPUCTRL bit 5: got=%d, want=16", p.spriteHeight())
	}
}

func TestPPUStatusReadClearsVBlankAndWriteToggle(t *testing.T) {
	p := newTestPPU(t)
	p.nmiOccurred = true
	p.w = true
	status := p.readPPUSTATUS()
	if status&0x80 == 0 {
		t.Fatalf("PPUSTATUS bit 7: want set on the read that observes vblank")
	}
	if p.nmiOccurred {
		t.Fatalf("reading PPUSTATUS should clear nmiOccurred")
	}
	if p.w {
		t.Fatalf("reading PPUSTATUS should clear the write toggle")
	}
}
