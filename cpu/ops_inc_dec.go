// ops_inc_dec.go - row 0x4X: INC/DEC on each 16-bit GPR
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// opIncDec applies the general arithmetic flag rule to a 1-or-subtract-1
// on reg, then restores CF to its pre-operation value - the one documented
// exception to the general flag rule for these two opcodes.
func (c *CPU) opIncDec(reg byte, isDec bool) {
	cf := c.Regs.Flags.CF()
	op := AluAdd
	if isDec {
		op = AluSub
	}
	res := Eval(op, 2, uint32(c.Regs.Word(reg)), 1, false)
	res.Apply(&c.Regs.Flags)
	c.Regs.Flags.SetBool(FlagCF, cf)
	c.Regs.SetWord(reg, uint16(res.Result))
}

func (c *CPU) initIncDecOps() {
	for i := byte(0); i < 8; i++ {
		reg := i
		c.opTable[0x40+i] = func(c *CPU) { c.opIncDec(reg, false) }
		c.opTable[0x48+i] = func(c *CPU) { c.opIncDec(reg, true) }
	}
}
