// Command gones runs the NES emulator: load an iNES ROM, wire it to a
// Console, and drive either the GLFW/OpenGL presentation loop or the
// interactive stdin debugger.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/makoto-kob/gones/nes"
	"github.com/makoto-kob/gones/ui"
)

func main() {
	romFile := flag.String("rom", "", "path to an iNES (.nes) ROM image")
	scale := flag.Int("scale", 3, "window scale factor, 256x240 times this value")
	debug := flag.Bool("debug", false, "run the interactive stdin debugger instead of the GUI")
	headless := flag.Bool("headless", false, "run without a window, for CI/smoke-testing a ROM")
	frames := flag.Int("frames", 60, "frames to run in -headless mode before exiting")
	flag.Parse()

	if *romFile == "" {
		glog.Fatalln("-rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		glog.Fatalf("reading rom: %v", err)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Fatalf("parsing rom: %v", err)
	}

	console, err := nes.NewConsole(cartridge, *debug)
	if err != nil {
		glog.Fatalf("creating console: %v", err)
	}
	console.Reset()

	if *headless {
		for i := 0; i < *frames; i++ {
			if err := nes.StepFrame(console); err != nil {
				glog.Fatalf("stepping: %v", err)
			}
		}
		glog.Infof("ran %d frames headlessly", *frames)
		return
	}

	if *debug {
		for {
			if _, err := console.Step(); err != nil {
				glog.Errorf("debugger: %v", err)
				return
			}
		}
	}

	ui.Start(console, nes.FrameWidth**scale, nes.FrameHeight**scale)
}
