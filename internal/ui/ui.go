package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nestic/internal/cpu"
	"github.com/nevisdale/nestic/internal/nes"
)

// P - pause
// R - one step and stop
// N - raise NMI
// Backspace - reset
// Esc - quit

const (
	// NTSC CPU cycles in one 60Hz frame
	cyclesPerFrame = 29781

	historySize = 7
	aheadSize   = 8

	screenScale   = 2
	panelWidth    = 300
	panelHeight   = 300
	memPanelWidth = 400
)

type UI struct {
	sys *nes.System

	paused  bool
	history []uint16 // PCs of the last executed instructions
	lastErr error
}

func New(sys *nes.System, paused bool) *UI {
	return &UI{
		sys:    sys,
		paused: paused,
	}
}

func (ui *UI) step() {
	c := ui.sys.CPU()
	if c.State() != cpu.Running {
		return
	}

	pc := c.Registers().PC
	if err := ui.sys.Step(); err != nil {
		ui.lastErr = err
		log.Printf("step failed: %s", err)
		return
	}

	ui.history = append(ui.history, pc)
	if len(ui.history) > historySize {
		ui.history = ui.history[1:]
	}
	if c.State() != cpu.Running {
		res := c.Result()
		log.Printf("cpu halted at $%04X: %s", res.PC, res.Reason)
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.paused = true
		ui.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		ui.sys.CPU().NMI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ui.sys.Reset()
		ui.history = ui.history[:0]
		ui.lastErr = nil
	}

	if ui.paused {
		return nil
	}

	c := ui.sys.CPU()
	target := c.Cycles() + cyclesPerFrame
	for c.State() == cpu.Running && c.Cycles() < target {
		ui.step()
	}
	return nil
}

func (ui *UI) status() string {
	c := ui.sys.CPU()
	if c.State() == cpu.Running {
		if ui.paused {
			return "paused"
		}
		return "running"
	}
	return fmt.Sprintf("halted (%s)", c.Reason())
}

func (ui *UI) Draw(screen *ebiten.Image) {
	c := ui.sys.CPU()
	r := c.Registers()

	var info strings.Builder
	fmt.Fprintf(&info, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&info, " STATE: %s\n", ui.status())
	fmt.Fprintf(&info, " STATUS: %s\n", r.P)
	fmt.Fprintf(&info, " PC: $%04X\n", r.PC)
	fmt.Fprintf(&info, " A: $%02X [%03d]", r.A, r.A)
	fmt.Fprintf(&info, " X: $%02X [%03d]", r.X, r.X)
	fmt.Fprintf(&info, " Y: $%02X [%03d]\n", r.Y, r.Y)
	fmt.Fprintf(&info, " SP: $%02X\n", r.SP)
	fmt.Fprintf(&info, " CYC: %d STEPS: %d\n", c.Cycles(), c.Steps())
	if ui.lastErr != nil {
		var opErr *cpu.UnimplementedOpcodeError
		if errors.As(ui.lastErr, &opErr) {
			fmt.Fprintf(&info, " ERR: opcode $%02X\n", opErr.Opcode)
		} else {
			fmt.Fprintf(&info, " ERR: %s\n", ui.lastErr)
		}
	}
	info.WriteString("\n")

	for _, pc := range ui.history {
		info.WriteString("  " + c.Disassemble(pc, 1)[0].String() + "\n")
	}
	for i, ins := range c.Disassemble(r.PC, aheadSize) {
		marker := "  "
		if i == 0 {
			marker = "> "
		}
		info.WriteString(marker + ins.String() + "\n")
	}

	vector.DrawFilledRect(screen, 0, 0, panelWidth, panelHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, info.String(), 0, 0)

	vector.DrawFilledRect(screen, panelWidth, 0, memPanelWidth, panelHeight, color.RGBA{30, 30, 30, 255}, false)
	ebitenutil.DebugPrintAt(screen, ui.zeroPage(), panelWidth+4, 0)
}

// zeroPage dumps $0000-$00FF, 16 bytes per row.
func (ui *UI) zeroPage() string {
	b := ui.sys.Bus()
	var sb strings.Builder
	sb.WriteString("      00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n")
	for row := uint16(0); row < 0x100; row += 0x10 {
		fmt.Fprintf(&sb, "$%04X", row)
		for i := uint16(0); i < 0x10; i++ {
			fmt.Fprintf(&sb, " %02X", b.Read8(row+i))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return panelWidth + memPanelWidth, panelHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((panelWidth+memPanelWidth)*screenScale, panelHeight*screenScale)
	ebiten.SetWindowTitle("nestic")
	ebiten.SetTPS(60)

	err := ebiten.RunGame(ui)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
