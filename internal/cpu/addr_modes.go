package cpu

type AddrMode uint8

const (
	// Implied: IMP
	//
	// The operation implicitly affects registers or flags.
	// Example: CLC
	AddrModeIMP AddrMode = iota + 1

	// Accumulator: ACC
	//
	// The operand is the accumulator.
	// Example: LSR A
	AddrModeACC

	// Immediate: IMM
	//
	// The operand is the byte following the opcode.
	// Example: LDA #$10
	AddrModeIMM

	// Zero Page: ZP
	//
	// One-byte address within the first 256 bytes of memory.
	// Example: LDA $20
	AddrModeZP

	// Zero Page Indexed with X: ZPX
	//
	// One-byte address plus X. The sum wraps inside page zero.
	// Example: LDA $20,X
	AddrModeZPX

	// Zero Page Indexed with Y: ZPY
	//
	// One-byte address plus Y. The sum wraps inside page zero.
	// Example: LDX $20,Y
	AddrModeZPY

	// Absolute: ABS
	//
	// Full little-endian 16-bit address.
	// Example: LDA $1234
	AddrModeABS

	// Absolute Indexed with X: ABSX
	//
	// 16-bit address plus X, wrapping at $FFFF.
	// Reads pay one more cycle when the index crosses a page.
	// Example: LDA $1234,X
	AddrModeABSX

	// Absolute Indexed with Y: ABSY
	//
	// 16-bit address plus Y, wrapping at $FFFF.
	// Reads pay one more cycle when the index crosses a page.
	// Example: LDA $1234,Y
	AddrModeABSY

	// Indirect: IND
	//
	// The operand is a pointer to the real address. Only JMP uses it.
	// The high byte of the pointer is fetched from the same page as the low
	// byte, so JMP ($10FF) reads $10FF and $1000.
	// Example: JMP ($1234)
	AddrModeIND

	// Indexed Indirect (X): INDX
	//
	// (operand + X) wrapped in page zero points to the real address.
	// Example: LDA ($20,X)
	AddrModeINDX

	// Indirect Indexed (Y): INDY
	//
	// The zero page operand points to a base address, Y is added to it.
	// Reads pay one more cycle when the index crosses a page.
	// Example: LDA ($20),Y
	AddrModeINDY

	// Relative: REL
	//
	// Signed 8-bit offset from the address of the next instruction.
	// Example: BNE $10
	AddrModeREL
)

func (mode AddrMode) String() string {
	switch mode {
	case AddrModeIMP:
		return "IMP"
	case AddrModeACC:
		return "ACC"
	case AddrModeIMM:
		return "IMM"
	case AddrModeZP:
		return "ZP"
	case AddrModeZPX:
		return "ZPX"
	case AddrModeZPY:
		return "ZPY"
	case AddrModeABS:
		return "ABS"
	case AddrModeABSX:
		return "ABSX"
	case AddrModeABSY:
		return "ABSY"
	case AddrModeIND:
		return "IND"
	case AddrModeINDX:
		return "INDX"
	case AddrModeINDY:
		return "INDY"
	case AddrModeREL:
		return "REL"
	}
	return "???"
}

// size is the encoded length of an instruction using the mode, opcode included.
func (mode AddrMode) size() uint8 {
	switch mode {
	case AddrModeIMM, AddrModeZP, AddrModeZPX, AddrModeZPY,
		AddrModeINDX, AddrModeINDY, AddrModeREL:
		return 2
	case AddrModeABS, AddrModeABSX, AddrModeABSY, AddrModeIND:
		return 3
	}
	return 1
}

type operand struct {
	addr    uint16 // effective address, or the branch target for REL
	base    uint16 // address before indexing
	crossed bool   // indexing (or a branch) moved to a different page
}

// resolve computes the effective address for mode. PC must point at the first
// operand byte. It reads the operand bytes and, for indirect modes, the pointer,
// but it never moves PC or touches registers.
func (c *CPU) resolve(mode AddrMode) operand {
	switch mode {
	case AddrModeIMM:
		return operand{addr: c.pc, base: c.pc}

	case AddrModeZP:
		addr := uint16(c.read8(c.pc))
		return operand{addr: addr, base: addr}

	case AddrModeZPX:
		base := c.read8(c.pc)
		return operand{addr: uint16(base + c.x), base: uint16(base)}

	case AddrModeZPY:
		base := c.read8(c.pc)
		return operand{addr: uint16(base + c.y), base: uint16(base)}

	case AddrModeABS:
		addr := c.read16(c.pc)
		return operand{addr: addr, base: addr}

	case AddrModeABSX:
		base := c.read16(c.pc)
		addr := base + uint16(c.x)
		return operand{addr: addr, base: base, crossed: isDiffPage(base, addr)}

	case AddrModeABSY:
		base := c.read16(c.pc)
		addr := base + uint16(c.y)
		return operand{addr: addr, base: base, crossed: isDiffPage(base, addr)}

	case AddrModeIND:
		ptr := c.read16(c.pc)
		return operand{addr: c.read16SamePage(ptr), base: ptr}

	case AddrModeINDX:
		ptr := c.read8(c.pc) + c.x
		addr := c.read16SamePage(uint16(ptr))
		return operand{addr: addr, base: addr}

	case AddrModeINDY:
		base := c.read16SamePage(uint16(c.read8(c.pc)))
		addr := base + uint16(c.y)
		return operand{addr: addr, base: base, crossed: isDiffPage(base, addr)}

	case AddrModeREL:
		next := c.pc + 1
		offset := uint16(c.read8(c.pc))
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 bits to save the sign
		}
		addr := next + offset
		return operand{addr: addr, base: next, crossed: isDiffPage(next, addr)}
	}

	// IMP and ACC have no memory operand
	return operand{addr: c.pc, base: c.pc}
}
