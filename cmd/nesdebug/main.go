// nesdebug is an interactive terminal debugger for the processor core: a
// register/flag panel, a disassembly window showing retired instructions,
// and step/continue/breakpoint keybindings, built on gocui the way the
// teacher's cmd/nes intended its unfinished debug package to be driven.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/awesome-gocui/gocui"

	"nestrace/internal/debugger"
	nes "nestrace/lib"
)

type app struct {
	debugger *debugger.Debugger
	lastErr  error
}

func (a *app) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("registers", 0, 0, maxX-1, 4, 0); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "registers"
	}

	if v, err := g.SetView("trace", 0, 5, maxX-1, maxY-4, 0); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "trace"
		v.Autoscroll = true
	}

	if v, err := g.SetView("help", 0, maxY-3, maxX-1, maxY-1, 0); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "keys"
		fmt.Fprintln(v, "s: step  c: continue  b: breakpoint at PC  q: quit")
	}

	a.redraw(g)
	return nil
}

func (a *app) redraw(g *gocui.Gui) {
	cpu := a.debugger.CPU

	if v, err := g.View("registers"); err == nil {
		v.Clear()
		fmt.Fprintf(v, "PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X  breakpoints:%v  halted:%v\n",
			cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.Status(), len(a.debugger.Breakpoints), cpu.Halted)
		if a.lastErr != nil {
			fmt.Fprintf(v, "error: %v\n", a.lastErr)
		}
	}

	if v, err := g.View("trace"); err == nil {
		v.Clear()
		for _, snapshot := range a.debugger.History {
			fmt.Fprintln(v, snapshot.Format())
		}
	}
}

func (a *app) step(g *gocui.Gui, _ *gocui.View) error {
	if a.debugger.CPU.Halted {
		return nil
	}
	if _, err := a.debugger.Step(); err != nil {
		a.lastErr = err
	}
	a.redraw(g)
	return nil
}

func (a *app) hitBreakpoint() bool {
	for _, breakpoint := range a.debugger.Breakpoints {
		if breakpoint.Hit(a.debugger.CPU) {
			return true
		}
	}
	return false
}

// continueRun steps past the instruction sitting at the current PC (so a
// breakpoint set on the stopped-at address doesn't immediately re-trigger)
// and then runs until the next breakpoint or a halt.
func (a *app) continueRun(g *gocui.Gui, _ *gocui.View) error {
	if !a.debugger.CPU.Halted {
		if _, err := a.debugger.Step(); err != nil {
			a.lastErr = err
			a.redraw(g)
			return nil
		}
	}

	for !a.debugger.CPU.Halted && !a.hitBreakpoint() {
		if _, err := a.debugger.Step(); err != nil {
			a.lastErr = err
			break
		}
	}
	a.redraw(g)
	return nil
}

func (a *app) addBreakpoint(g *gocui.Gui, _ *gocui.View) error {
	a.debugger.AddPCBreakpoint(a.debugger.CPU.PC)
	a.redraw(g)
	return nil
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func main() {
	romPath := flag.String("rom", "nestest.nes", "path to an iNES rom file")
	flag.Parse()

	cartridge, err := nes.ParseCartridge(*romPath)
	if err != nil {
		log.Fatalf("could not load %v: %v", *romPath, err)
	}

	bus := nes.NewBus(cartridge)
	cpu := nes.NewCPU(bus)

	a := &app{debugger: debugger.New(cpu)}

	g, err := gocui.NewGui(gocui.OutputNormal, false)
	if err != nil {
		log.Fatalf("could not start terminal UI: %v", err)
	}
	defer g.Close()

	g.SetManagerFunc(a.layout)

	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{'s', a.step},
		{'c', a.continueRun},
		{'b', a.addBreakpoint},
	}
	for _, binding := range bindings {
		if err := g.SetKeybinding("", binding.key, gocui.ModNone, binding.handler); err != nil {
			log.Fatalf("could not bind key: %v", err)
		}
	}

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Fatalf("terminal UI exited with an error: %v", err)
	}
}
