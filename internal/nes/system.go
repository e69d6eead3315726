package nes

import (
	"context"
	"fmt"
	"log"

	"github.com/nevisdale/nestic/internal/bus"
	"github.com/nevisdale/nestic/internal/cpu"
)

const resetVectorAddr = uint16(0xfffc)

// System wires a CPU to a bus and a cartridge and drives it.
type System struct {
	bus    *bus.Bus
	cpu    *cpu.CPU
	cart   *Cart
	mapper Mapper

	maxSteps uint64
	cpuOpts  []cpu.Option
}

type Option func(*System)

// WithResetPC starts execution at pc instead of the reset vector.
func WithResetPC(pc uint16) Option {
	return func(s *System) {
		s.cpuOpts = append(s.cpuOpts, cpu.WithResetPC(pc))
	}
}

// WithTracer calls fn before every instruction.
func WithTracer(fn func(cpu.Trace)) Option {
	return func(s *System) {
		s.cpuOpts = append(s.cpuOpts, cpu.WithTracer(fn))
	}
}

// WithMaxSteps stops Run after n instructions. Zero means no limit.
func WithMaxSteps(n uint64) Option {
	return func(s *System) {
		s.maxSteps = n
	}
}

func WithHaltOnBreak(v bool) Option {
	return func(s *System) {
		s.cpuOpts = append(s.cpuOpts, cpu.WithHaltOnBreak(v))
	}
}

// WithCPUOptions passes options straight to the CPU.
func WithCPUOptions(opts ...cpu.Option) Option {
	return func(s *System) {
		s.cpuOpts = append(s.cpuOpts, opts...)
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{}
	for _, opt := range opts {
		opt(s)
	}
	s.bus = bus.New()
	s.cpu = cpu.NewCPU(s.bus, s.cpuOpts...)
	return s
}

// LoadCart places the cartridge program on the bus and resets the CPU.
// A previously loaded cart is removed first.
func (s *System) LoadCart(cart *Cart) error {
	m, err := Place(s.bus, cart)
	if err != nil {
		return fmt.Errorf("couldn't load cart: %w", err)
	}
	s.ejectCart()
	s.cart, s.mapper = cart, m
	s.cpu.Reset()
	return nil
}

func (s *System) ejectCart() {
	if s.mapper != nil {
		s.bus.Detach(s.mapper)
	}
	s.cart, s.mapper = nil, nil
}

// LoadProgram copies a raw image to base and resets the CPU. When the image
// does not reach the reset vector, the vector is pointed at base. A loaded
// cart is removed so the image is visible in cartridge space.
func (s *System) LoadProgram(base uint16, image []uint8) error {
	if err := s.bus.Load(base, image); err != nil {
		return fmt.Errorf("couldn't load program: %w", err)
	}
	s.ejectCart()
	if int(base)+len(image) <= int(resetVectorAddr) {
		s.bus.Write16(resetVectorAddr, base)
	}
	s.cpu.Reset()
	return nil
}

func (s *System) Reset() {
	s.cpu.Reset()
}

func (s *System) Step() error {
	return s.cpu.Step()
}

// Run executes until the CPU halts, the step limit is reached or ctx is done.
// Reaching the limit halts the CPU with cpu.HaltStopped.
func (s *System) Run(ctx context.Context) (cpu.Result, error) {
	for s.cpu.State() == cpu.Running {
		if err := ctx.Err(); err != nil {
			return s.cpu.Result(), err
		}
		if s.maxSteps > 0 && s.cpu.Steps() >= s.maxSteps {
			log.Printf("step limit %d reached", s.maxSteps)
			s.cpu.Halt()
			break
		}
		if err := s.cpu.Step(); err != nil {
			res := s.cpu.Result()
			logHalt(res)
			return res, fmt.Errorf("run: %w", err)
		}
	}

	res := s.cpu.Result()
	logHalt(res)
	return res, nil
}

func logHalt(res cpu.Result) {
	log.Printf("cpu halted at $%04X: %s (steps: %d, cycles: %d)", res.PC, res.Reason, res.Steps, res.Cycles)
}

func (s *System) CPU() *cpu.CPU {
	return s.cpu
}

func (s *System) Bus() *bus.Bus {
	return s.bus
}

func (s *System) Cart() *Cart {
	return s.cart
}
