package cpu

import (
	"fmt"
	"strings"
)

// Trace is the state of the CPU right before an instruction runs, in the
// shape of a nestest.log line.
type Trace struct {
	PC       uint16
	Bytes    []uint8
	Name     string
	Official bool
	Operand  string // operand with resolved address and value annotations
	A        uint8
	X        uint8
	Y        uint8
	P        Status
	SP       uint8
	Cycles   uint64
}

// String renders the trace line:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
func (t Trace) String() string {
	hex := make([]string, len(t.Bytes))
	for i, b := range t.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}

	marker := ' '
	if !t.Official {
		marker = '*'
	}
	asm := t.Name
	if t.Operand != "" {
		asm += " " + t.Operand
	}

	return fmt.Sprintf("%04X  %-8s %c%-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		t.PC, strings.Join(hex, " "), marker, asm, t.A, t.X, t.Y, uint8(t.P), t.SP, t.Cycles)
}

// Trace describes the instruction at PC without executing it. Operand values
// are read through the bus, so memory-mapped devices see those reads.
func (c *CPU) Trace() Trace {
	d := c.table.Lookup(c.read8(c.pc))

	t := Trace{
		PC:       c.pc,
		Bytes:    make([]uint8, d.Bytes),
		Name:     d.Name,
		Official: d.Official,
		A:        c.a,
		X:        c.x,
		Y:        c.y,
		P:        c.p,
		SP:       c.sp,
		Cycles:   c.cycles,
	}
	for i := range t.Bytes {
		t.Bytes[i] = c.read8(c.pc + uint16(i))
	}

	pc := c.pc
	c.pc++
	t.Operand = c.annotate(d)
	c.pc = pc

	return t
}

// annotate formats the operand of d the way nestest.log does. PC must point
// at the first operand byte.
func (c *CPU) annotate(d Descriptor) string {
	op := c.resolve(d.Mode)
	value := func() uint8 { return c.read8(op.addr) }

	switch d.Mode {
	case AddrModeACC:
		return "A"
	case AddrModeIMM:
		return fmt.Sprintf("#$%02X", c.read8(c.pc))
	case AddrModeZP:
		return fmt.Sprintf("$%02X = %02X", op.addr, value())
	case AddrModeZPX:
		return fmt.Sprintf("$%02X,X @ %02X = %02X", op.base, op.addr, value())
	case AddrModeZPY:
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", op.base, op.addr, value())
	case AddrModeABS:
		if d.Name == "JMP" || d.Name == "JSR" {
			return fmt.Sprintf("$%04X", op.addr)
		}
		return fmt.Sprintf("$%04X = %02X", op.addr, value())
	case AddrModeABSX:
		return fmt.Sprintf("$%04X,X @ %04X = %02X", op.base, op.addr, value())
	case AddrModeABSY:
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", op.base, op.addr, value())
	case AddrModeIND:
		return fmt.Sprintf("($%04X) = %04X", op.base, op.addr)
	case AddrModeINDX:
		zp := c.read8(c.pc)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zp, zp+c.x, op.addr, value())
	case AddrModeINDY:
		zp := c.read8(c.pc)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, op.base, op.addr, value())
	case AddrModeREL:
		return fmt.Sprintf("$%04X", op.addr)
	}
	return ""
}
