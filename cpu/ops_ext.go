// ops_ext.go - row 0x6X: PUSHA/POPA, BOUND, PUSH imm, IMUL, string I/O
//
// INSB/INSW/OUTSB/OUTSW get four distinct table entries below rather than
// one handler keyed on an opcode-derived size bit, so the source's
// OUTS-size miscomparison (open question: `(opcode & 0x0f) == 0x0d` used
// for both IN and OUT branches) cannot recur structurally.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// opPushA pushes AX,CX,DX,BX, then SP as captured before any of the eight
// pushes, then BP,SI,DI.
func (c *CPU) opPushA() {
	spBefore := c.Regs.Word(RegSP)
	c.push16(c.Regs.Word(RegAX))
	c.push16(c.Regs.Word(RegCX))
	c.push16(c.Regs.Word(RegDX))
	c.push16(c.Regs.Word(RegBX))
	c.push16(spBefore)
	c.push16(c.Regs.Word(RegBP))
	c.push16(c.Regs.Word(RegSI))
	c.push16(c.Regs.Word(RegDI))
}

// opPopA pops in reverse, discarding the SP slot PUSHA recorded.
func (c *CPU) opPopA() {
	c.Regs.SetWord(RegDI, c.pop16())
	c.Regs.SetWord(RegSI, c.pop16())
	c.Regs.SetWord(RegBP, c.pop16())
	c.pop16()
	c.Regs.SetWord(RegBX, c.pop16())
	c.Regs.SetWord(RegDX, c.pop16())
	c.Regs.SetWord(RegCX, c.pop16())
	c.Regs.SetWord(RegAX, c.pop16())
}

// raiseInterrupt is the externalization hook for guest faults; delivery is
// out of scope for this core, so it is a no-op here.
func (c *CPU) raiseInterrupt(n byte) {}

// opBound range-checks the ModRM reg value against a (low, high) pair in
// memory. The second bound lives at addr+2, the ISA form - not the
// original's `(addr>>8)+(addr&15)` miscalculation.
func (c *CPU) opBound() {
	c.fetchModRM()
	addr := c.linearMem()

	var lowBuf, highBuf [2]byte
	c.Mem.Read(addr, lowBuf[:])
	c.Mem.Read(addr+2, highBuf[:])
	low := uint16(lowBuf[0]) | uint16(lowBuf[1])<<8
	high := uint16(highBuf[0]) | uint16(highBuf[1])<<8

	reg := c.Regs.Word(c.modReg)
	if reg < low || reg > high {
		c.raiseInterrupt(5)
	}
}

func (c *CPU) opPushImm16() { c.push16(c.fetch16()) }

// opPushImm8 pushes a single byte, decrementing SP by one - this core does
// not sign-extend PUSH imm8 to word width the way real silicon does.
func (c *CPU) opPushImm8() {
	imm := c.fetch8()
	sp := c.Regs.Word(RegSP) - 1
	c.Regs.SetWord(RegSP, sp)
	buf := [1]byte{imm}
	c.Mem.Write(Linear(c.Segs.Get(SegSS), sp), buf[:])
}

// opImul sign-extends the rm operand and an immediate of the given byte
// size to 32 bits, multiplies, and writes the low 16 bits of the product
// back to the rm operand; CF/OF are set iff the high 16 bits are non-zero.
func (c *CPU) opImul(immSize int) {
	c.fetchModRM()
	var imm int32
	if immSize == 1 {
		imm = int32(int8(c.fetch8()))
	} else {
		imm = int32(int16(c.fetch16()))
	}
	rm := int32(int16(c.readRM16()))
	product := uint32(rm * imm)
	lo := uint16(product)
	of := uint16(product>>16) != 0

	c.writeRM16(lo)
	c.Regs.Flags.SetBool(FlagCF, of)
	c.Regs.Flags.SetBool(FlagOF, of)
}

// stringIns transfers one unit from port DX into ES:DI, then steps both SI
// and DI by the unit size.
func (c *CPU) stringIns(size int) {
	if c.rep != 0 && c.Regs.Word(RegCX) == 0 {
		return
	}
	port := c.Regs.Word(RegDX)
	di := c.Regs.Word(RegDI)
	addr := Linear(c.Segs.Get(SegES), di)

	if size == 1 {
		buf := [1]byte{c.portIn(port)}
		c.Mem.Write(addr, buf[:])
	} else {
		buf := [2]byte{c.portIn(port), c.portIn(port)}
		c.Mem.Write(addr, buf[:])
	}

	delta := uint16(size)
	si := c.Regs.Word(RegSI)
	if c.Regs.Flags.DF() {
		c.Regs.SetWord(RegDI, di-delta)
		c.Regs.SetWord(RegSI, si-delta)
	} else {
		c.Regs.SetWord(RegDI, di+delta)
		c.Regs.SetWord(RegSI, si+delta)
	}
	c.stringRepStep()
}

// stringOuts transfers one unit from the effective segment:SI to port DX,
// then steps both SI and DI by the unit size.
func (c *CPU) stringOuts(size int) {
	if c.rep != 0 && c.Regs.Word(RegCX) == 0 {
		return
	}
	port := c.Regs.Word(RegDX)
	si := c.Regs.Word(RegSI)
	addr := Linear(c.Segs.Get(c.effSeg), si)

	var buf [2]byte
	c.Mem.Read(addr, buf[:size])
	c.portOut(port, buf[0])
	if size == 2 {
		c.portOut(port, buf[1])
	}

	delta := uint16(size)
	di := c.Regs.Word(RegDI)
	if c.Regs.Flags.DF() {
		c.Regs.SetWord(RegSI, si-delta)
		c.Regs.SetWord(RegDI, di-delta)
	} else {
		c.Regs.SetWord(RegSI, si+delta)
		c.Regs.SetWord(RegDI, di+delta)
	}
	c.stringRepStep()
}

// stringRepStep decrements CX and rewinds EIP to the instruction start when
// a rep prefix is active, so the outer Step call re-enters the same
// instruction for its next iteration.
func (c *CPU) stringRepStep() {
	if c.rep == 0 {
		return
	}
	c.Regs.SetWord(RegCX, c.Regs.Word(RegCX)-1)
	c.Regs.EIP = c.instrStartEIP
}

func (c *CPU) initExtOps() {
	c.opTable[0x60] = (*CPU).opPushA
	c.opTable[0x61] = (*CPU).opPopA
	c.opTable[0x62] = (*CPU).opBound
	for op := byte(0x63); op <= 0x67; op++ {
		c.opTable[op] = func(c *CPU) {}
	}
	c.opTable[0x68] = (*CPU).opPushImm16
	c.opTable[0x69] = func(c *CPU) { c.opImul(2) }
	c.opTable[0x6A] = (*CPU).opPushImm8
	c.opTable[0x6B] = func(c *CPU) { c.opImul(1) }
	c.opTable[0x6C] = func(c *CPU) { c.stringIns(1) }
	c.opTable[0x6D] = func(c *CPU) { c.stringIns(2) }
	c.opTable[0x6E] = func(c *CPU) { c.stringOuts(1) }
	c.opTable[0x6F] = func(c *CPU) { c.stringOuts(2) }
}
