// ops_jcc.go - row 0x7X: the sixteen short conditional jumps
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu

// jccImpl always consumes the rel8 byte (advancing IP past it), then
// additionally adds it to IP when taken is true.
func (c *CPU) jccImpl(taken bool) {
	disp := int8(c.fetch8())
	if taken {
		c.Regs.SetIP16(uint16(int32(c.Regs.IP16()) + int32(disp)))
	}
}

func (c *CPU) initJccOps() {
	cond := func(pred func(*CPU) bool) func(*CPU) {
		return func(c *CPU) { c.jccImpl(pred(c)) }
	}

	c.opTable[0x70] = cond(func(c *CPU) bool { return c.Regs.Flags.OF() })
	c.opTable[0x71] = cond(func(c *CPU) bool { return !c.Regs.Flags.OF() })
	c.opTable[0x72] = cond(func(c *CPU) bool { return c.Regs.Flags.CF() })
	c.opTable[0x73] = cond(func(c *CPU) bool { return !c.Regs.Flags.CF() })
	c.opTable[0x74] = cond(func(c *CPU) bool { return c.Regs.Flags.ZF() })
	c.opTable[0x75] = cond(func(c *CPU) bool { return !c.Regs.Flags.ZF() })
	c.opTable[0x76] = cond(func(c *CPU) bool { return c.Regs.Flags.CF() || c.Regs.Flags.ZF() })
	c.opTable[0x77] = cond(func(c *CPU) bool { return !c.Regs.Flags.CF() && !c.Regs.Flags.ZF() })
	c.opTable[0x78] = cond(func(c *CPU) bool { return c.Regs.Flags.SF() })
	c.opTable[0x79] = cond(func(c *CPU) bool { return !c.Regs.Flags.SF() })
	c.opTable[0x7A] = cond(func(c *CPU) bool { return c.Regs.Flags.PF() })
	c.opTable[0x7B] = cond(func(c *CPU) bool { return !c.Regs.Flags.PF() })
	c.opTable[0x7C] = cond(func(c *CPU) bool { return c.Regs.Flags.SF() != c.Regs.Flags.OF() })
	c.opTable[0x7D] = cond(func(c *CPU) bool { return c.Regs.Flags.SF() == c.Regs.Flags.OF() })
	c.opTable[0x7E] = cond(func(c *CPU) bool {
		return c.Regs.Flags.SF() != c.Regs.Flags.OF() || c.Regs.Flags.ZF()
	})
	c.opTable[0x7F] = cond(func(c *CPU) bool {
		return c.Regs.Flags.SF() == c.Regs.Flags.OF() && !c.Regs.Flags.ZF()
	})
}
