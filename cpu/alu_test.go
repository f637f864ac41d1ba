package cpu

import "testing"

func TestEval_Add(t *testing.T) {
	r := Eval(AluAdd, 1, 0x05, 0x2A, false)
	if r.Result != 0x2F || r.CF || r.OF || r.AF || r.ZF || r.SF {
		t.Errorf("Add 0x05+0x2A = %+v", r)
	}
}

func TestEval_AddCarryOverflow(t *testing.T) {
	r := Eval(AluAdd, 1, 0x80, 0x80, false)
	if r.Result != 0 || !r.CF || !r.OF || !r.ZF || r.SF || r.AF {
		t.Errorf("Add 0x80+0x80 = %+v, want Result=0 CF=OF=ZF=1 SF=AF=0", r)
	}
}

func TestEval_Adc_UsesCarryIn(t *testing.T) {
	r := Eval(AluAdc, 1, 0x01, 0x01, true)
	if r.Result != 0x03 {
		t.Errorf("Adc 0x01+0x01+CF = %+v, want Result=0x03", r)
	}
}

func TestEval_Sub_Borrow(t *testing.T) {
	r := Eval(AluSub, 1, 0x00, 0x01, false)
	if r.Result != 0xFF || !r.CF {
		t.Errorf("Sub 0x00-0x01 = %+v, want Result=0xFF CF=1", r)
	}
}

func TestEval_Cmp_EqualOperandsSetZF(t *testing.T) {
	r := Eval(AluCmp, 1, 0x05, 0x05, false)
	if !r.ZF {
		t.Errorf("Cmp equal operands: ZF = %v, want true", r.ZF)
	}
}

func TestEval_Logical_ClearsCFAndOF(t *testing.T) {
	r := Eval(AluAnd, 2, 0xFFFF, 0xFFFF, false)
	if r.CF || r.OF {
		t.Errorf("And flags = %+v, want CF=OF=0", r)
	}
	if r.Result != 0xFFFF {
		t.Errorf("And 0xFFFF&0xFFFF = 0x%X, want 0xFFFF", r.Result)
	}
}

func TestEval_Logical_FullWidthZFSF(t *testing.T) {
	// a value whose low byte is zero but whose word is not must not report
	// ZF=1 - the source's "PF/ZF/SF derived from uint8_t width" defect this
	// core does not reproduce.
	r := Eval(AluOr, 2, 0x0100, 0x0000, false)
	if r.ZF {
		t.Error("Or 0x0100|0 at word width: ZF = true, want false")
	}

	r = Eval(AluOr, 2, 0x8000, 0x0000, false)
	if !r.SF {
		t.Error("Or 0x8000|0: SF = false, want true (bit 15 set)")
	}
}

func TestEval_Test_DisjointBitsSetZF(t *testing.T) {
	r := Eval(AluTest, 1, 0x0F, 0xF0, false)
	if !r.ZF {
		t.Errorf("Test 0x0F&0xF0: ZF = %v, want true", r.ZF)
	}
}
