package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/nevisdale/nestic/internal/cpu"
	"github.com/nevisdale/nestic/internal/nes"
	"github.com/nevisdale/nestic/internal/ui"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

type config struct {
	romPath    string
	binPath    string
	base       string
	pc         string
	trace      bool
	steps      uint64
	step       bool
	withUI     bool
	withProf   bool
	dumpMatrix bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.romPath, "rom", "", "path to an iNES rom")
	flag.StringVar(&cfg.binPath, "bin", "", "path to a raw program image")
	flag.StringVar(&cfg.base, "base", "0600", "load address of -bin, hex")
	flag.StringVar(&cfg.pc, "pc", "", "start address, hex (default: reset vector)")
	flag.BoolVar(&cfg.trace, "trace", false, "print a nestest style trace line per instruction")
	flag.Uint64Var(&cfg.steps, "steps", 0, "stop after n instructions (0: no limit)")
	flag.BoolVar(&cfg.step, "step", false, "step interactively: space/enter step, c continue or pause, q quit")
	flag.BoolVar(&cfg.withUI, "ui", false, "open the debugger window")
	flag.BoolVar(&cfg.withProf, "profile", false, "write a cpu profile to the working directory")
	flag.BoolVar(&cfg.dumpMatrix, "opcodes", false, "print the opcode matrix as csv and exit")
	flag.Parse()
	return cfg
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func main() {
	cfg := parseFlags()

	if cfg.dumpMatrix {
		if err := cpu.NewTable().WriteCSV(os.Stdout); err != nil {
			log.Fatalf("couldn't write opcode matrix: %s\n", err)
		}
		return
	}

	if cfg.withProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var opts []nes.Option
	if cfg.pc != "" {
		pc, err := parseAddr(cfg.pc)
		if err != nil {
			log.Fatalf("-pc: %s\n", err)
		}
		opts = append(opts, nes.WithResetPC(pc))
	}
	if cfg.steps > 0 {
		opts = append(opts, nes.WithMaxSteps(cfg.steps))
	}
	if cfg.trace && !cfg.step {
		opts = append(opts, nes.WithTracer(func(t cpu.Trace) {
			fmt.Fprintln(out, t)
		}))
	}

	sys := nes.NewSystem(opts...)
	if err := load(sys, cfg); err != nil {
		log.Fatalf("%s\n", err)
	}

	if cfg.withUI {
		if err := ui.RunUI(ui.New(sys, cfg.step)); err != nil {
			log.Fatalf("ui: %s\n", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.step {
		if err := stepInteractive(ctx, sys, cfg.steps); err != nil {
			log.Fatalf("%s\n", err)
		}
		return
	}

	if _, err := sys.Run(ctx); err != nil && !errors.Is(err, cpu.ErrUnimplementedOpcode) {
		out.Flush()
		log.Fatalf("%s\n", err)
	}
}

func load(sys *nes.System, cfg config) error {
	switch {
	case cfg.romPath != "":
		cart, err := nes.NewCartFromFile(cfg.romPath)
		if err != nil {
			return fmt.Errorf("couldn't load rom: %w", err)
		}
		log.Printf("loaded %s: %s", cfg.romPath, cart)
		return sys.LoadCart(cart)

	case cfg.binPath != "":
		base, err := parseAddr(cfg.base)
		if err != nil {
			return fmt.Errorf("-base: %w", err)
		}
		image, err := os.ReadFile(cfg.binPath)
		if err != nil {
			return fmt.Errorf("couldn't read program: %w", err)
		}
		return sys.LoadProgram(base, image)
	}
	return errors.New("one of -rom or -bin is required")
}

// readKeys forwards single key presses until stdin fails, then closes keys.
func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			return
		}
		keys <- buf[0]
	}
}

// stepInteractive reads single key presses from a raw terminal.
func stepInteractive(ctx context.Context, sys *nes.System, limit uint64) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("-step needs a terminal on stdin")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("couldn't switch the terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	keys := make(chan byte)
	go readKeys(os.Stdin, keys)

	c := sys.CPU()
	continuing := false
	for c.State() == cpu.Running {
		if ctx.Err() != nil {
			return nil
		}
		if limit > 0 && c.Steps() >= limit {
			c.Halt()
			break
		}

		// raw mode needs an explicit carriage return
		fmt.Fprintf(os.Stdout, "%s\r\n", c.Trace())

		if continuing {
			// poll between steps so q and c still work while running
			select {
			case key, ok := <-keys:
				if !ok {
					return nil
				}
				switch key {
				case 'q', 3:
					return nil
				case 'c', ' ':
					continuing = false
					continue
				}
			default:
			}
		} else {
			var key byte
			select {
			case <-ctx.Done():
				return nil
			case k, ok := <-keys:
				if !ok {
					return nil
				}
				key = k
			}
			switch key {
			case 'q', 3: // ctrl+c does not raise SIGINT in raw mode
				return nil
			case 'c':
				continuing = true
			case ' ', '\r', '\n':
			default:
				continue
			}
		}

		if err := sys.Step(); err != nil {
			fmt.Fprintf(os.Stdout, "%s\r\n", err)
			return nil
		}
	}

	res := c.Result()
	fmt.Fprintf(os.Stdout, "halted at $%04X: %s (steps: %d, cycles: %d)\r\n", res.PC, res.Reason, res.Steps, res.Cycles)
	return nil
}
