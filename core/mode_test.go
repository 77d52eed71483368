package core

import "testing"

var expectedModeWords = []struct {
	port  Port
	half  ModeHalf
	value uint32
}{
	{PortA, ModeLow, 0x04A4A000},
	{PortA, ModeHigh, 0x00000043},
	{PortB, ModeLow, 0x00010010},
	{PortC, ModeLow, 0x44244424},
	{PortD, ModeLow, 0x00004200},
}

func TestModeWord(t *testing.T) {
	for _, tc := range expectedModeWords {
		value, ok := ModeWord(tc.port, tc.half)
		if !ok {
			t.Errorf("port %s %s: expected mapped pins", tc.port, tc.half)
			continue
		}
		if value != tc.value {
			t.Errorf("port %s %s: expected 0x%08X, got 0x%08X", tc.port, tc.half, tc.value, value)
		}
	}

	for _, port := range []Port{PortB, PortC, PortD} {
		if _, ok := ModeWord(port, ModeHigh); ok {
			t.Errorf("port %s H: no pins mapped, expected ok=false", port)
		}
	}
}

func TestConfigureModesWriteSemantics(t *testing.T) {
	bank := newCheckedBank(t)
	// Garbage in every half shows which registers were rewritten
	for port := range bank.Mode {
		bank.Mode[port] = [2]uint32{0xFFFFFFFF, 0xFFFFFFFF}
	}

	ConfigureModes(bank)

	if len(bank.Log) != len(expectedModeWords) {
		t.Fatalf("expected %d register accesses, got %d", len(expectedModeWords), len(bank.Log))
	}
	for i, tc := range expectedModeWords {
		op := bank.Log[i]
		if op.Kind != OpWriteMode || op.Port != tc.port || op.Half != tc.half || op.Value != tc.value {
			t.Errorf("write %d: got %+v, expected %s %s 0x%08X", i, op, tc.port, tc.half, tc.value)
		}
		// Whole-register write: unmapped pins in the half are back at reset default
		if got := bank.Mode[tc.port][tc.half]; got != tc.value {
			t.Errorf("port %s %s holds 0x%08X, expected 0x%08X", tc.port, tc.half, got, tc.value)
		}
	}

	for _, port := range []Port{PortB, PortC, PortD} {
		if got := bank.Mode[port][ModeHigh]; got != 0xFFFFFFFF {
			t.Errorf("port %s H was written (0x%08X) though no pin is mapped", port, got)
		}
	}
}

func TestConfigureModesMatchesPinTable(t *testing.T) {
	bank := newCheckedBank(t)
	ConfigureModes(bank)

	for r := PinRole(0); r < NumRoles; r++ {
		p := r.Pin()
		if got := bank.ModeOf(p.Port, p.Bit); got != p.Mode {
			t.Errorf("%s: mode %d, expected %d", r, got, p.Mode)
		}
	}
}
