// ops_arith.go - rows 0x00-0x3F: ADD/OR/ADC/SBB/AND/SUB/XOR/CMP, segment push/pop, BCD
//
// Every row reduces to the same six-encoding shape (Eb,Gb / Ev,Gv / Gb,Eb /
// Gv,Ev / AL,Ib / AX,Iv) dispatched through alu.go's Eval, replacing the
// teacher's nine near-identical opADD_*/opADC_*/... families.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// aluRmReg implements the "rm <- rm op reg" encoding (low nibble 0/1).
func (c *CPU) aluRmReg(op AluOp, size int) {
	c.fetchModRM()
	var a, b uint32
	if size == 1 {
		a = uint32(c.readRM8())
		b = uint32(c.Regs.Byte(c.modReg))
	} else {
		a = uint32(c.readRM16())
		b = uint32(c.Regs.Word(c.modReg))
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

// aluRegRm implements the "reg <- reg op rm" encoding (low nibble 2/3).
func (c *CPU) aluRegRm(op AluOp, size int) {
	c.fetchModRM()
	var a, b uint32
	if size == 1 {
		a = uint32(c.Regs.Byte(c.modReg))
		b = uint32(c.readRM8())
	} else {
		a = uint32(c.Regs.Word(c.modReg))
		b = uint32(c.readRM16())
	}
	res := Eval(op, size, a, b, c.Regs.Flags.CF())
	res.Apply(&c.Regs.Flags)
	if op == AluCmp {
		return
	}
	if size == 1 {
		c.Regs.SetByte(c.modReg, byte(res.Result))
	} else {
		c.Regs.SetWord(c.modReg, uint16(res.Result))
	}
}

// aluAlImm implements the "AL/AX <- AL/AX op imm" encoding (low nibble 4/5).
func (c *CPU) aluAlImm(op AluOp, size int) {
	var a, b uint32
	if size == 1 {
		a = uint32(c.Regs.Byte(0)) // AL
		b = uint32(c.fetch8())
	} else {
		a = uint32(c.Regs.Word(RegAX))
		b = uint32(c.fetch16())
	}
	res := Eval(op, size, a, b, c.Regs.Flags.CF())
	res.Apply(&c.Regs.Flags)
	if op == AluCmp {
		return
	}
	if size == 1 {
		c.Regs.SetByte(0, byte(res.Result))
	} else {
		c.Regs.SetWord(RegAX, uint16(res.Result))
	}
}

// installAluRow wires the standard six encodings at base+0..base+5 for op.
func (c *CPU) installAluRow(base byte, op AluOp) {
	c.opTable[base+0] = func(c *CPU) { c.aluRmReg(op, 1) }
	c.opTable[base+1] = func(c *CPU) { c.aluRmReg(op, 2) }
	c.opTable[base+2] = func(c *CPU) { c.aluRegRm(op, 1) }
	c.opTable[base+3] = func(c *CPU) { c.aluRegRm(op, 2) }
	c.opTable[base+4] = func(c *CPU) { c.aluAlImm(op, 1) }
	c.opTable[base+5] = func(c *CPU) { c.aluAlImm(op, 2) }
}

func (c *CPU) opPushSeg(seg int) { c.push16(c.Segs.Get(seg)) }
func (c *CPU) opPopSeg(seg int)  { c.Segs.Set(seg, c.pop16()) }

// opDAA decimal-adjusts AL after an addition.
func (c *CPU) opDAA() {
	al := c.Regs.Byte(0)
	af := c.Regs.Flags.AF()
	cf := c.Regs.Flags.CF()

	if al&0x0F > 9 || af {
		sum := uint16(al) + 6
		cf = sum > 0xFF
		al = byte(sum)
		af = true
	}
	if al > 0x9F || cf {
		al = al + 0x60
		cf = true
	}

	c.Regs.SetByte(0, al)
	c.Regs.Flags.SetBool(FlagAF, af)
	c.Regs.Flags.SetBool(FlagCF, cf)
	c.Regs.Flags.SetBool(FlagZF, al == 0)
	c.Regs.Flags.SetBool(FlagSF, al&0x80 != 0)
	c.Regs.Flags.SetBool(FlagPF, Parity(al))
}

// opDAS decimal-adjusts AL after a subtraction, symmetric with opDAA.
func (c *CPU) opDAS() {
	al := c.Regs.Byte(0)
	af := c.Regs.Flags.AF()
	cf := c.Regs.Flags.CF()

	if al&0x0F > 9 || af {
		cf = al < 6
		al = al - 6
		af = true
	}
	if al > 0x9F || cf {
		al = al - 0x60
		cf = true
	}

	c.Regs.SetByte(0, al)
	c.Regs.Flags.SetBool(FlagAF, af)
	c.Regs.Flags.SetBool(FlagCF, cf)
	c.Regs.Flags.SetBool(FlagZF, al == 0)
	c.Regs.Flags.SetBool(FlagSF, al&0x80 != 0)
	c.Regs.Flags.SetBool(FlagPF, Parity(al))
}

// opAAA ASCII-adjusts AL/AH after an addition.
func (c *CPU) opAAA() {
	al := c.Regs.Byte(0)
	ah := c.Regs.Byte(4)
	af := false
	if al&0x0F > 9 || c.Regs.Flags.AF() {
		al += 6
		ah += 1
		af = true
	}
	al &= 0x0F
	c.Regs.SetByte(0, al)
	c.Regs.SetByte(4, ah)
	c.Regs.Flags.SetBool(FlagAF, af)
	c.Regs.Flags.SetBool(FlagCF, af)
}

// opAAS ASCII-adjusts AL/AH after a subtraction, symmetric with opAAA.
func (c *CPU) opAAS() {
	al := c.Regs.Byte(0)
	ah := c.Regs.Byte(4)
	af := false
	if al&0x0F > 9 || c.Regs.Flags.AF() {
		al -= 6
		ah -= 1
		af = true
	}
	al &= 0x0F
	c.Regs.SetByte(0, al)
	c.Regs.SetByte(4, ah)
	c.Regs.Flags.SetBool(FlagAF, af)
	c.Regs.Flags.SetBool(FlagCF, af)
}

func (c *CPU) initArithOps() {
	c.installAluRow(0x00, AluAdd)
	c.opTable[0x06] = func(c *CPU) { c.opPushSeg(SegES) }
	c.opTable[0x07] = func(c *CPU) { c.opPopSeg(SegES) }
	c.installAluRow(0x08, AluOr)
	c.opTable[0x0E] = func(c *CPU) { c.opPushSeg(SegCS) }
	c.opTable[0x0F] = func(c *CPU) { c.opPopSeg(SegCS) } // undocumented on real silicon; implemented as specified

	c.installAluRow(0x10, AluAdc)
	c.opTable[0x16] = func(c *CPU) { c.opPushSeg(SegSS) }
	c.opTable[0x17] = func(c *CPU) { c.opPopSeg(SegSS) }
	c.installAluRow(0x18, AluSbb)
	c.opTable[0x1E] = func(c *CPU) { c.opPushSeg(SegDS) }
	c.opTable[0x1F] = func(c *CPU) { c.opPopSeg(SegDS) }

	c.installAluRow(0x20, AluAnd)
	c.opTable[0x27] = (*CPU).opDAA
	c.installAluRow(0x28, AluSub)
	c.opTable[0x2F] = (*CPU).opDAS

	c.installAluRow(0x30, AluXor)
	c.opTable[0x37] = (*CPU).opAAA
	c.installAluRow(0x38, AluCmp)
	c.opTable[0x3F] = (*CPU).opAAS
}
