package cpu

// operand resolves mode and remembers whether the access crossed a page so
// Step can charge the extra cycle for read instructions.
func (c *CPU) operand(mode AddrMode) operand {
	op := c.resolve(mode)
	c.pageCrossed = op.crossed
	return op
}

func (c *CPU) load(mode AddrMode) uint8 {
	if mode == AddrModeACC {
		return c.a
	}
	return c.read8(c.operand(mode).addr)
}

func (c *CPU) store(mode AddrMode, data uint8) {
	c.write8(c.operand(mode).addr, data)
}

// modify is the read-modify-write cycle shared by shifts, rotates, INC and DEC.
func (c *CPU) modify(mode AddrMode, fn func(uint8) uint8) uint8 {
	if mode == AddrModeACC {
		c.a = fn(c.a)
		return c.a
	}
	addr := c.operand(mode).addr
	r := fn(c.read8(addr))
	c.write8(addr, r)
	return r
}

func (c *CPU) addWithCarry(v uint8) {
	r, carry, overflow := AddWithCarry(c.a, v, c.p.Test(FlagC))
	c.p.Assign(FlagC, carry)
	c.p.Assign(FlagV, overflow)
	c.p.UpdateZN(r)
	c.a = r
}

func (c *CPU) compare(reg, v uint8) {
	c.p.Assign(FlagC, reg >= v)
	c.p.UpdateZN(reg - v)
}

func (c *CPU) shiftLeft(v uint8) uint8 {
	c.p.Assign(FlagC, v&0x80 != 0)
	return v << 1
}

func (c *CPU) shiftRight(v uint8) uint8 {
	c.p.Assign(FlagC, v&0x01 != 0)
	return v >> 1
}

func (c *CPU) rotateLeft(v uint8) uint8 {
	r := v << 1
	if c.p.Test(FlagC) {
		r |= 0x01
	}
	c.p.Assign(FlagC, v&0x80 != 0)
	return r
}

func (c *CPU) rotateRight(v uint8) uint8 {
	r := v >> 1
	if c.p.Test(FlagC) {
		r |= 0x80
	}
	c.p.Assign(FlagC, v&0x01 != 0)
	return r
}

func increment(v uint8) uint8 { return v + 1 }
func decrement(v uint8) uint8 { return v - 1 }

// Add with Carry
// A = A + M + C
//
// Flags affected: C, Z, N, V
func (c *CPU) adc(mode AddrMode) {
	c.addWithCarry(c.load(mode))
}

// Logical AND
// A = A & M
//
// Flags affected: Z, N
func (c *CPU) and(mode AddrMode) {
	c.a &= c.load(mode)
	c.p.UpdateZN(c.a)
}

// Arithmetic Shift Left
// C <- (A or M)7, (A or M) << 1
//
// Flags affected: C, Z, N
func (c *CPU) asl(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, c.shiftLeft))
}

// branch jumps to the REL target when cond holds.
//
// An additional cycles:
//
//	If the branch occurs on the same page (1 cycle)
//	If the branch occurs on a different page (2 cycles)
func (c *CPU) branch(mode AddrMode, cond bool) {
	if !cond {
		return
	}
	op := c.resolve(mode)
	c.extra++
	if op.crossed {
		c.extra++
	}
	c.jump(op.addr)
}

// Branch if Carry Clear
func (c *CPU) bcc(mode AddrMode) {
	c.branch(mode, !c.p.Test(FlagC))
}

// Branch if Carry Set
func (c *CPU) bcs(mode AddrMode) {
	c.branch(mode, c.p.Test(FlagC))
}

// Branch if Equal
func (c *CPU) beq(mode AddrMode) {
	c.branch(mode, c.p.Test(FlagZ))
}

// Bit Test
// A & M, N <- M7, V <- M6
//
// Flags affected: Z, N, V
func (c *CPU) bit(mode AddrMode) {
	v := c.load(mode)
	c.p.Assign(FlagZ, c.a&v == 0)
	c.p.Assign(FlagN, v&0x80 != 0)
	c.p.Assign(FlagV, v&0x40 != 0)
}

// Branch if Minus
func (c *CPU) bmi(mode AddrMode) {
	c.branch(mode, c.p.Test(FlagN))
}

// Branch if Not Equal
func (c *CPU) bne(mode AddrMode) {
	c.branch(mode, !c.p.Test(FlagZ))
}

// Branch if Positive
func (c *CPU) bpl(mode AddrMode) {
	c.branch(mode, !c.p.Test(FlagN))
}

// Force Interrupt
// The byte after BRK is padding, so the pushed return address skips it.
//
// Flags affected: I (B is set only in the pushed copy)
func (c *CPU) brk(AddrMode) {
	c.stackPush16(c.pc + 1)
	c.stackPush8(uint8(c.p | Status(FlagB|FlagU)))
	c.p.Set(FlagI)
	c.jump(c.read16(vectorIRQ))
}

// Branch if Overflow Clear
func (c *CPU) bvc(mode AddrMode) {
	c.branch(mode, !c.p.Test(FlagV))
}

// Branch if Overflow Set
func (c *CPU) bvs(mode AddrMode) {
	c.branch(mode, c.p.Test(FlagV))
}

// Clear Carry Flag
func (c *CPU) clc(AddrMode) {
	c.p.Clear(FlagC)
}

// Clear Decimal Mode
func (c *CPU) cld(AddrMode) {
	c.p.Clear(FlagD)
}

// Clear Interrupt Disable
func (c *CPU) cli(AddrMode) {
	c.p.Clear(FlagI)
}

// Clear Overflow Flag
func (c *CPU) clv(AddrMode) {
	c.p.Clear(FlagV)
}

// Compare
// A - M
//
// Flags affected: C, Z, N
func (c *CPU) cmp(mode AddrMode) {
	c.compare(c.a, c.load(mode))
}

// Compare X Register
func (c *CPU) cpx(mode AddrMode) {
	c.compare(c.x, c.load(mode))
}

// Compare Y Register
func (c *CPU) cpy(mode AddrMode) {
	c.compare(c.y, c.load(mode))
}

// Decrement Memory
// M - 1
//
// Flags affected: Z, N
func (c *CPU) dec(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, decrement))
}

// Decrement X Register
func (c *CPU) dex(AddrMode) {
	c.x--
	c.p.UpdateZN(c.x)
}

// Decrement Y Register
func (c *CPU) dey(AddrMode) {
	c.y--
	c.p.UpdateZN(c.y)
}

// Exclusive OR
// A ^ M
//
// Flags affected: Z, N
func (c *CPU) eor(mode AddrMode) {
	c.a ^= c.load(mode)
	c.p.UpdateZN(c.a)
}

// Increment Memory
// M + 1
//
// Flags affected: Z, N
func (c *CPU) inc(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, increment))
}

// Increment X Register
func (c *CPU) inx(AddrMode) {
	c.x++
	c.p.UpdateZN(c.x)
}

// Increment Y Register
func (c *CPU) iny(AddrMode) {
	c.y++
	c.p.UpdateZN(c.y)
}

// Jump
// PC <- address
func (c *CPU) jmp(mode AddrMode) {
	c.jump(c.resolve(mode).addr)
}

// Jump to Subroutine
// Pushes the address of the last byte of the JSR, then PC <- address.
// The target's high byte is fetched after the pushes, like the hardware does.
func (c *CPU) jsr(AddrMode) {
	lo := uint16(c.read8(c.pc))
	c.stackPush16(c.pc + 1)
	hi := uint16(c.read8(c.pc + 1))
	c.jump(lo | hi<<8)
}

// Load Accumulator
// A <- M
//
// Flags affected: Z, N
func (c *CPU) lda(mode AddrMode) {
	c.a = c.load(mode)
	c.p.UpdateZN(c.a)
}

// Load X Register
func (c *CPU) ldx(mode AddrMode) {
	c.x = c.load(mode)
	c.p.UpdateZN(c.x)
}

// Load Y Register
func (c *CPU) ldy(mode AddrMode) {
	c.y = c.load(mode)
	c.p.UpdateZN(c.y)
}

// Logical Shift Right
// C <- (A or M)0, (A or M) >> 1
//
// Flags affected: C, Z, N
func (c *CPU) lsr(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, c.shiftRight))
}

// No Operation
// The undocumented forms still read their operand.
func (c *CPU) nop(mode AddrMode) {
	if mode != AddrModeIMP {
		_ = c.load(mode)
	}
}

// Logical Inclusive OR
// A | M
//
// Flags affected: Z, N
func (c *CPU) ora(mode AddrMode) {
	c.a |= c.load(mode)
	c.p.UpdateZN(c.a)
}

// Push Accumulator
func (c *CPU) pha(AddrMode) {
	c.stackPush8(c.a)
}

// Push Processor Status
// The pushed copy has B and U set.
func (c *CPU) php(AddrMode) {
	c.stackPush8(uint8(c.p | Status(FlagB|FlagU)))
}

// Pull Accumulator
//
// Flags affected: Z, N
func (c *CPU) pla(AddrMode) {
	c.a = c.stackPop8()
	c.p.UpdateZN(c.a)
}

// Pull Processor Status
// B does not exist in the register and U always reads as 1.
func (c *CPU) plp(AddrMode) {
	c.p = (Status(c.stackPop8()) | Status(FlagU)) &^ Status(FlagB)
}

// Rotate Left
//
// Flags affected: C, Z, N
func (c *CPU) rol(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, c.rotateLeft))
}

// Rotate Right
//
// Flags affected: C, Z, N
func (c *CPU) ror(mode AddrMode) {
	c.p.UpdateZN(c.modify(mode, c.rotateRight))
}

// Return from Interrupt
// status <- stack, PC <- stack
func (c *CPU) rti(AddrMode) {
	c.p = (Status(c.stackPop8()) | Status(FlagU)) &^ Status(FlagB)
	c.jump(c.stackPop16())
}

// Return from Subroutine
// PC <- stack + 1
func (c *CPU) rts(AddrMode) {
	c.jump(c.stackPop16() + 1)
}

// Subtract with Carry
// A = A - M - (1 - C), computed as A + ^M + C
//
// Flags affected: C, Z, N, V
func (c *CPU) sbc(mode AddrMode) {
	c.addWithCarry(^c.load(mode))
}

// Set Carry Flag
func (c *CPU) sec(AddrMode) {
	c.p.Set(FlagC)
}

// Set Decimal Flag
// The 2A03 has no decimal arithmetic; the flag is only stored.
func (c *CPU) sed(AddrMode) {
	c.p.Set(FlagD)
}

// Set Interrupt Disable
func (c *CPU) sei(AddrMode) {
	c.p.Set(FlagI)
}

// Store Accumulator
func (c *CPU) sta(mode AddrMode) {
	c.store(mode, c.a)
}

// Store X Register
func (c *CPU) stx(mode AddrMode) {
	c.store(mode, c.x)
}

// Store Y Register
func (c *CPU) sty(mode AddrMode) {
	c.store(mode, c.y)
}

// Transfer Accumulator to X
func (c *CPU) tax(AddrMode) {
	c.x = c.a
	c.p.UpdateZN(c.x)
}

// Transfer Accumulator to Y
func (c *CPU) tay(AddrMode) {
	c.y = c.a
	c.p.UpdateZN(c.y)
}

// Transfer Stack Pointer to X
func (c *CPU) tsx(AddrMode) {
	c.x = c.sp
	c.p.UpdateZN(c.x)
}

// Transfer X to Accumulator
func (c *CPU) txa(AddrMode) {
	c.a = c.x
	c.p.UpdateZN(c.a)
}

// Transfer X to Stack Pointer
// Flags affected: None
func (c *CPU) txs(AddrMode) {
	c.sp = c.x
}

// Transfer Y to Accumulator
func (c *CPU) tya(AddrMode) {
	c.a = c.y
	c.p.UpdateZN(c.a)
}

// undocumented instructions

func (c *CPU) lax(mode AddrMode) {
	c.a = c.load(mode)
	c.x = c.a
	c.p.UpdateZN(c.a)
}

func (c *CPU) sax(mode AddrMode) {
	c.store(mode, c.a&c.x)
}

func (c *CPU) dcp(mode AddrMode) {
	c.compare(c.a, c.modify(mode, decrement))
}

func (c *CPU) isc(mode AddrMode) {
	c.addWithCarry(^c.modify(mode, increment))
}

func (c *CPU) slo(mode AddrMode) {
	c.a |= c.modify(mode, c.shiftLeft)
	c.p.UpdateZN(c.a)
}

func (c *CPU) rla(mode AddrMode) {
	c.a &= c.modify(mode, c.rotateLeft)
	c.p.UpdateZN(c.a)
}

func (c *CPU) sre(mode AddrMode) {
	c.a ^= c.modify(mode, c.shiftRight)
	c.p.UpdateZN(c.a)
}

func (c *CPU) rra(mode AddrMode) {
	c.addWithCarry(c.modify(mode, c.rotateRight))
}

func (c *CPU) anc(mode AddrMode) {
	c.a &= c.load(mode)
	c.p.UpdateZN(c.a)
	c.p.Assign(FlagC, c.a&0x80 != 0)
}

func (c *CPU) alr(mode AddrMode) {
	c.a = c.shiftRight(c.a & c.load(mode))
	c.p.UpdateZN(c.a)
}

// arr is AND then ROR A, with C and V taken from bits 6 and 5 of the result.
func (c *CPU) arr(mode AddrMode) {
	r := (c.a & c.load(mode)) >> 1
	if c.p.Test(FlagC) {
		r |= 0x80
	}
	c.a = r
	c.p.UpdateZN(r)
	c.p.Assign(FlagC, r&0x40 != 0)
	c.p.Assign(FlagV, (r>>6^r>>5)&0x01 != 0)
}

// sbx sets X to (A & X) - M without borrow. C works like CMP.
func (c *CPU) sbx(mode AddrMode) {
	ax := c.a & c.x
	v := c.load(mode)
	c.x = ax - v
	c.p.Assign(FlagC, ax >= v)
	c.p.UpdateZN(c.x)
}

func (c *CPU) las(mode AddrMode) {
	r := c.load(mode) & c.sp
	c.a = r
	c.x = r
	c.sp = r
	c.p.UpdateZN(r)
}

// magic is the value of the unstable A term of ANE and LXA on most 2A03 parts.
const magic = 0xee

func (c *CPU) ane(mode AddrMode) {
	c.a = (c.a | magic) & c.x & c.load(mode)
	c.p.UpdateZN(c.a)
}

func (c *CPU) lxa(mode AddrMode) {
	r := (c.a | magic) & c.load(mode)
	c.a = r
	c.x = r
	c.p.UpdateZN(r)
}

// storeHigh stores data & (high byte of the base address + 1). When the index
// crosses a page the stored value also replaces the high byte of the target.
func (c *CPU) storeHigh(mode AddrMode, data uint8) {
	op := c.resolve(mode)
	v := data & (uint8(op.base>>8) + 1)
	addr := op.addr
	if op.crossed {
		addr = uint16(v)<<8 | addr&0x00ff
	}
	c.write8(addr, v)
}

func (c *CPU) sha(mode AddrMode) {
	c.storeHigh(mode, c.a&c.x)
}

func (c *CPU) shx(mode AddrMode) {
	c.storeHigh(mode, c.x)
}

func (c *CPU) shy(mode AddrMode) {
	c.storeHigh(mode, c.y)
}

func (c *CPU) tas(mode AddrMode) {
	c.sp = c.a & c.x
	c.storeHigh(mode, c.sp)
}

// jam locks the processor on the opcode. Only a reset recovers.
func (c *CPU) jam(AddrMode) {
	c.jump(c.pc - 1)
	c.halt(HaltJam)
}
