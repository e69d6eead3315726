package cpu

import (
	"context"
	"fmt"
)

type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

const (
	// The stack is located in the fixed memory page $0100 to $01FF.
	stackStartAddr = uint16(0x100)

	vectorNMI   = uint16(0xfffa)
	vectorReset = uint16(0xfffc)
	vectorIRQ   = uint16(0xfffe)

	resetSP     = uint8(0xfd)
	resetCycles = 7
)

type State uint8

const (
	Halted State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "halted"
}

type HaltReason uint8

const (
	HaltNone          HaltReason = iota // not halted, or never reset
	HaltBreak                           // BRK executed
	HaltJam                             // one of the JAM opcodes locked the processor
	HaltUnimplemented                   // the table has no handler for the opcode
	HaltStopped                         // Halt was called from outside
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltBreak:
		return "break"
	case HaltJam:
		return "jam"
	case HaltUnimplemented:
		return "unimplemented opcode"
	case HaltStopped:
		return "stopped"
	}
	return fmt.Sprintf("HaltReason(%d)", uint8(r))
}

// Registers is a copy of the register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  Status
}

// Result describes where a run ended.
type Result struct {
	State  State
	Reason HaltReason
	PC     uint16
	Steps  uint64
	Cycles uint64
}

type CPU struct {
	a     uint8      // used to perform arithmetic and logical operations
	x     uint8      // used primarily for indexing and temporary storage
	y     uint8      // used mainly for indexing and temporary storage
	p     Status     // contains flags from FlagX
	sp    uint8      // stack pointer
	pc    uint16     // program counter
	mem   ReadWriter // bus to read and write data
	table *Table     // opcode -> descriptor mapping

	cycles uint64 // cycles spent since reset
	steps  uint64 // instructions executed since reset
	state  State
	reason HaltReason

	// per instruction scratch, cleared before every handler
	jumped      bool  // handler wrote PC
	pageCrossed bool  // operand resolution crossed a page
	extra       uint8 // cycles added by the handler (taken branches)

	haltOnBreak bool
	hasResetPC  bool
	resetPC     uint16
	tracer      func(Trace)
}

type Option func(*CPU)

// WithTable replaces the default opcode table.
func WithTable(t *Table) Option {
	return func(c *CPU) {
		c.table = t
	}
}

// WithTracer calls fn with the state before every instruction.
func WithTracer(fn func(Trace)) Option {
	return func(c *CPU) {
		c.tracer = fn
	}
}

// WithHaltOnBreak controls whether BRK halts the CPU after it runs. Default: true.
func WithHaltOnBreak(v bool) Option {
	return func(c *CPU) {
		c.haltOnBreak = v
	}
}

// WithResetPC makes Reset start at pc instead of reading the reset vector.
// Headless test ROMs such as nestest start at $C000.
func WithResetPC(pc uint16) Option {
	return func(c *CPU) {
		c.hasResetPC = true
		c.resetPC = pc
	}
}

// NewCPU returns a halted CPU. Call Reset before stepping.
func NewCPU(mem ReadWriter, opts ...Option) *CPU {
	c := &CPU{
		mem:         mem,
		table:       defaultTable,
		haltOnBreak: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

// read16SamePage reads a pointer whose high byte comes from the same page as
// the low byte: $10FF reads $10FF and $1000. In page zero this is the
// zero page wraparound used by (zp,X) and (zp),Y.
func (c *CPU) read16SamePage(addr uint16) uint16 {
	hi := (addr & 0xff00) | uint16(uint8(addr)+1)
	return uint16(c.read8(addr)) | uint16(c.read8(hi))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

func (c *CPU) jump(addr uint16) {
	c.pc = addr
	c.jumped = true
}

func (c *CPU) halt(reason HaltReason) {
	c.state = Halted
	c.reason = reason
}

// Reset the CPU to its initial state
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = Status(FlagU | FlagI)
	c.sp = resetSP
	if c.hasResetPC {
		c.pc = c.resetPC
	} else {
		c.pc = c.read16(vectorReset)
	}
	c.cycles = resetCycles
	c.steps = 0
	c.state = Running
	c.reason = HaltNone
}

// Halt stops the CPU after the current instruction. Reset resumes it.
func (c *CPU) Halt() {
	if c.state == Running {
		c.halt(HaltStopped)
	}
}

// Interrupt request signal
func (c *CPU) IRQ() {
	if c.state != Running || c.p.Test(FlagI) {
		return
	}
	c.interrupt(vectorIRQ)
}

// Non-maskable interrupt request signal
func (c *CPU) NMI() {
	if c.state != Running {
		return
	}
	c.interrupt(vectorNMI)
}

func (c *CPU) interrupt(vector uint16) {
	c.stackPush16(c.pc)
	c.stackPush8(uint8((c.p | Status(FlagU)) &^ Status(FlagB)))
	c.p.Set(FlagI)
	c.pc = c.read16(vector)
	c.cycles += 7
}

// Step executes exactly one instruction.
func (c *CPU) Step() error {
	if c.state != Running {
		return ErrHalted
	}
	if c.tracer != nil {
		c.tracer(c.Trace())
	}

	at := c.pc
	opcode := c.read8(c.pc)
	c.pc++
	d := c.table.Lookup(opcode)
	if !d.Implemented() {
		c.pc = at
		c.halt(HaltUnimplemented)
		return &UnimplementedOpcodeError{Opcode: opcode, PC: at}
	}

	c.jumped = false
	c.pageCrossed = false
	c.extra = 0

	d.exec(c, d.Mode)

	if !c.jumped {
		c.pc += uint16(d.Bytes - 1)
	}
	cycles := uint64(d.Cycles) + uint64(c.extra)
	if d.PageCycle && c.pageCrossed {
		cycles++
	}
	c.cycles += cycles
	c.steps++

	if opcode == opBRK && c.haltOnBreak && c.state == Running {
		c.halt(HaltBreak)
	}
	return nil
}

// StepN executes up to n instructions and returns how many ran.
// It stops early when the CPU halts.
func (c *CPU) StepN(n int) (int, error) {
	for i := 0; i < n; i++ {
		if c.state != Running {
			return i, nil
		}
		if err := c.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Run executes instructions until the CPU halts or ctx is done. Cancellation
// takes effect between instructions and leaves the CPU running, so Run can be
// called again to resume.
func (c *CPU) Run(ctx context.Context) (Result, error) {
	for c.state == Running {
		if err := ctx.Err(); err != nil {
			return c.Result(), err
		}
		if err := c.Step(); err != nil {
			return c.Result(), err
		}
	}
	return c.Result(), nil
}

func (c *CPU) Result() Result {
	return Result{
		State:  c.state,
		Reason: c.reason,
		PC:     c.pc,
		Steps:  c.steps,
		Cycles: c.cycles,
	}
}

func (c *CPU) Registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, SP: c.sp, PC: c.pc, P: c.p}
}

// SetRegisters loads the register file, for debuggers and test harnesses.
func (c *CPU) SetRegisters(r Registers) {
	c.a = r.A
	c.x = r.X
	c.y = r.Y
	c.sp = r.SP
	c.pc = r.PC
	c.p = r.P
}

func (c *CPU) State() State {
	return c.state
}

func (c *CPU) Reason() HaltReason {
	return c.reason
}

func (c *CPU) Cycles() uint64 {
	return c.cycles
}

func (c *CPU) Steps() uint64 {
	return c.steps
}
