package nes

import "testing"

func TestControllerShiftRegisterReadsAA(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonB, false)
	c.SetButton(ButtonSelect, true)
	c.SetButton(ButtonStart, false)
	c.SetButton(ButtonUp, true)
	c.SetButton(ButtonDown, false)
	c.SetButton(ButtonLeft, true)
	c.SetButton(ButtonRight, false)

	c.write(1) // strobe high
	c.write(0) // strobe low, latch the current button state

	want := []byte{1, 0, 1, 0, 1, 0, 1, 0}
	for i, w := range want {
		if got := c.read(); got != w {
			t.Fatalf("read #%d: got=%d, want=%d", i, got, w)
		}
	}
	// Reads past the 8th report 0 rather than wrapping back to button A.
	if got := c.read(); got != 0 {
		t.Fatalf("read #9: got=%d, want=0", got)
	}
}

func TestControllerStrobeHighAlwaysReportsButtonA(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.write(1) // strobe stays high
	for i := 0; i < 3; i++ {
		if got := c.read(); got != 1 {
			t.Fatalf("read while strobing: got=%d, want=1", got)
		}
	}
}
