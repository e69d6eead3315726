package cpu

import "fmt"

// Instruction is one disassembled instruction.
type Instruction struct {
	Addr  uint16
	Bytes []uint8
	Desc  Descriptor
	Text  string // mnemonic and operand, e.g. "LDA ($20),Y"
}

func (i Instruction) String() string {
	return fmt.Sprintf("$%04X: %s {%s}", i.Addr, i.Text, i.Desc.Mode)
}

// Disassemble decodes n instructions starting at addr. It only reads memory.
func (c *CPU) Disassemble(addr uint16, n int) []Instruction {
	out := make([]Instruction, 0, n)
	for i := 0; i < n; i++ {
		ins := c.disassembleAt(addr)
		out = append(out, ins)
		addr += uint16(len(ins.Bytes))
	}
	return out
}

func (c *CPU) disassembleAt(addr uint16) Instruction {
	d := c.table.Lookup(c.read8(addr))
	ins := Instruction{
		Addr:  addr,
		Bytes: make([]uint8, d.Bytes),
		Desc:  d,
	}
	for i := range ins.Bytes {
		ins.Bytes[i] = c.read8(addr + uint16(i))
	}

	name := d.Name
	if !d.Official {
		name = "*" + name
	}

	var lo, word uint16
	if len(ins.Bytes) > 1 {
		lo = uint16(ins.Bytes[1])
		word = lo
	}
	if len(ins.Bytes) > 2 {
		word |= uint16(ins.Bytes[2]) << 8
	}

	switch d.Mode {
	case AddrModeACC:
		ins.Text = fmt.Sprintf("%s A", name)
	case AddrModeIMM:
		ins.Text = fmt.Sprintf("%s #$%02X", name, lo)
	case AddrModeZP:
		ins.Text = fmt.Sprintf("%s $%02X", name, lo)
	case AddrModeZPX:
		ins.Text = fmt.Sprintf("%s $%02X,X", name, lo)
	case AddrModeZPY:
		ins.Text = fmt.Sprintf("%s $%02X,Y", name, lo)
	case AddrModeABS:
		ins.Text = fmt.Sprintf("%s $%04X", name, word)
	case AddrModeABSX:
		ins.Text = fmt.Sprintf("%s $%04X,X", name, word)
	case AddrModeABSY:
		ins.Text = fmt.Sprintf("%s $%04X,Y", name, word)
	case AddrModeIND:
		ins.Text = fmt.Sprintf("%s ($%04X)", name, word)
	case AddrModeINDX:
		ins.Text = fmt.Sprintf("%s ($%02X,X)", name, lo)
	case AddrModeINDY:
		ins.Text = fmt.Sprintf("%s ($%02X),Y", name, lo)
	case AddrModeREL:
		offset := lo
		if offset&0x80 > 0 {
			offset |= 0xff00
		}
		ins.Text = fmt.Sprintf("%s $%04X", name, addr+2+offset)
	default:
		ins.Text = name
	}
	return ins
}
