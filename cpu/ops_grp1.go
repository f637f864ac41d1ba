// ops_grp1.go - row 0x8X: GRP1, TEST, XCHG, MOV, LEA, segment MOV, POP rm
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// opGrp1 dispatches ADD/OR/ADC/SBB/AND/SUB/XOR/CMP by the ModRM reg field,
// which shares AluOp's ordinal order by construction. immSize==1 with
// size==2 (opcode 0x83) sign-extends the fetched byte to a word; the
// 16-bit writeback this requires always goes through writeRM16, so the
// source's 8-bit-store-for-0x81/0x83 defect has no structural counterpart
// here.
func (c *CPU) opGrp1(size, immSize int) {
	c.fetchModRM()
	op := AluOp(c.modReg)

	var a uint32
	if size == 1 {
		a = uint32(c.readRM8())
	} else {
		a = uint32(c.readRM16())
	}

	var b uint32
	if immSize == 1 {
		imm := c.fetch8()
		if size == 2 {
			b = uint32(uint16(int16(int8(imm))))
		} else {
			b = uint32(imm)
		}
	} else {
		b = uint32(c.fetch16())
	}

	res := Eval(op, size, a, b, c.Regs.Flags.CF())
	res.Apply(&c.Regs.Flags)
	if op == AluCmp {
		return
	}
	if size == 1 {
		c.writeRM8(byte(res.Result))
	} else {
		c.writeRM16(uint16(res.Result))
	}
}

func (c *CPU) opTest(size int) {
	c.fetchModRM()
	var a, b uint32
	if size == 1 {
		a = uint32(c.readRM8())
		b = uint32(c.Regs.Byte(c.modReg))
	} else {
		a = uint32(c.readRM16())
		b = uint32(c.Regs.Word(c.modReg))
	}
	Eval(AluTest, size, a, b, false).Apply(&c.Regs.Flags)
}

func (c *CPU) opXchg(size int) {
	c.fetchModRM()
	if size == 1 {
		a := c.readRM8()
		b := c.Regs.Byte(c.modReg)
		c.writeRM8(b)
		c.Regs.SetByte(c.modReg, a)
		return
	}
	a := c.readRM16()
	b := c.Regs.Word(c.modReg)
	c.writeRM16(b)
	c.Regs.SetWord(c.modReg, a)
}

func (c *CPU) opMovRmReg(size int) {
	c.fetchModRM()
	if size == 1 {
		c.writeRM8(c.Regs.Byte(c.modReg))
	} else {
		c.writeRM16(c.Regs.Word(c.modReg))
	}
}

func (c *CPU) opMovRegRm(size int) {
	c.fetchModRM()
	if size == 1 {
		c.Regs.SetByte(c.modReg, c.readRM8())
	} else {
		c.Regs.SetWord(c.modReg, c.readRM16())
	}
}

func (c *CPU) opMovRmSeg() {
	c.fetchModRM()
	c.writeRM16(c.Segs.Get(int(c.modReg)))
}

func (c *CPU) opMovSegRm() {
	c.fetchModRM()
	c.Segs.Set(int(c.modReg), c.readRM16())
}

// opLea returns the pure 16-bit effective-address offset, not the linear
// address - the effective segment never factors in.
func (c *CPU) opLea() {
	c.fetchModRM()
	c.Regs.SetWord(c.modReg, c.effectiveOffset())
}

func (c *CPU) opPopRm() {
	c.fetchModRM()
	c.writeRM16(c.pop16())
}

func (c *CPU) initGroupOps() {
	c.opTable[0x80] = func(c *CPU) { c.opGrp1(1, 1) }
	c.opTable[0x81] = func(c *CPU) { c.opGrp1(2, 2) }
	c.opTable[0x82] = func(c *CPU) { c.opGrp1(1, 1) }
	c.opTable[0x83] = func(c *CPU) { c.opGrp1(2, 1) }
	c.opTable[0x84] = func(c *CPU) { c.opTest(1) }
	c.opTable[0x85] = func(c *CPU) { c.opTest(2) }
	c.opTable[0x86] = func(c *CPU) { c.opXchg(1) }
	c.opTable[0x87] = func(c *CPU) { c.opXchg(2) }
	c.opTable[0x88] = func(c *CPU) { c.opMovRmReg(1) }
	c.opTable[0x89] = func(c *CPU) { c.opMovRmReg(2) }
	c.opTable[0x8A] = func(c *CPU) { c.opMovRegRm(1) }
	c.opTable[0x8B] = func(c *CPU) { c.opMovRegRm(2) }
	c.opTable[0x8C] = (*CPU).opMovRmSeg
	c.opTable[0x8D] = (*CPU).opLea
	c.opTable[0x8E] = (*CPU).opMovSegRm
	c.opTable[0x8F] = (*CPU).opPopRm
}
