package nes

// Console wires a CPU, PPU, and Controller to one cartridge and steps them
// in lockstep. It is the interface through which the presentation shell
// and the CLI drive the emulator.
type Console interface {
	Reset()
	Step() (int, error)
	Frame() (*Frame, bool)
	SetButton(Button, bool)
}

// NesConsole is the normal, full-speed Console.
type NesConsole struct {
	cpu        *CPU
	ppu        *PPU
	controller *Controller
	mapper     *Mapper
}

// NewConsole creates a console wired to cartridge. If debug is true, Step
// instead drives an interactive stdin debugger (see DebugConsole).
func NewConsole(cartridge *Cartridge, debug bool) (Console, error) {
	mapper, err := NewMapper(cartridge)
	if err != nil {
		return nil, err
	}
	controller := NewController()
	ppuBus := NewPPUBus(NewRAM(0x1000), mapper)
	ppu := NewPPU(ppuBus)
	cpuBus := NewCPUBus(NewRAM(0x0800), ppu, mapper, controller)
	cpu := NewCPU(cpuBus)
	console := &NesConsole{cpu: cpu, ppu: ppu, controller: controller, mapper: mapper}
	if debug {
		return &DebugConsole{NesConsole: console}, nil
	}
	return console, nil
}

func (c *NesConsole) Reset() {
	c.cpu.Reset()
	c.ppu.Reset()
}

// Step executes one CPU instruction (or stall/interrupt cycle) and
// advances the PPU 3 dots per CPU cycle, the fixed NTSC clock ratio.
func (c *NesConsole) Step() (int, error) {
	cycles, err := c.cpu.Step()
	if err != nil {
		return cycles, err
	}
	for i := 0; i < cycles*3; i++ {
		if c.ppu.Step() {
			c.cpu.TriggerNMI()
		}
	}
	return cycles, nil
}

// Frame returns the most recently completed frame and whether it is new
// since the last call.
func (c *NesConsole) Frame() (*Frame, bool) {
	return c.ppu.Frame()
}

func (c *NesConsole) SetButton(b Button, pressed bool) {
	c.controller.SetButton(b, pressed)
}

// StepFrame runs the console until exactly one new frame has been
// produced; used by headless callers (tests, main.go's -headless mode) that
// don't run their own display loop.
func StepFrame(c Console) error {
	for {
		if _, err := c.Step(); err != nil {
			return err
		}
		if _, ok := c.Frame(); ok {
			return nil
		}
	}
}
