package core

import "testing"

func TestPinTableNoAliasing(t *testing.T) {
	for a := PinRole(0); a < NumRoles; a++ {
		for b := a + 1; b < NumRoles; b++ {
			pa, pb := a.Pin(), b.Pin()
			if pa.Port == pb.Port && pa.Bit == pb.Bit {
				t.Errorf("%s and %s both bound to port %s pin %d", a, b, pa.Port, pa.Bit)
			}
		}
	}
}

func TestPinTableInRange(t *testing.T) {
	names := make(map[string]PinRole)
	for r := PinRole(0); r < NumRoles; r++ {
		p := r.Pin()
		if p.Port >= NumPorts {
			t.Errorf("%s: port %d out of range", r, p.Port)
		}
		if p.Bit >= MaxPinsPerPort {
			t.Errorf("%s: pin %d not covered by MODEL/MODEH", r, p.Bit)
		}
		if p.Mode == ModeDisabled {
			t.Errorf("%s: mode left disabled", r)
		}
		if p.Name == "" {
			t.Errorf("role %d has no name", r)
		}
		if other, dup := names[p.Name]; dup {
			t.Errorf("%s and %s share name %q", other, r, p.Name)
		}
		names[p.Name] = r
	}
}

func TestOwnedMask(t *testing.T) {
	testCases := []struct {
		port     Port
		expected uint32
	}{
		{PortA, 0x378},
		{PortB, 0x012},
		{PortC, 0x0FF},
		{PortD, 0x00C},
	}

	for _, tc := range testCases {
		if got := OwnedMask(tc.port); got != tc.expected {
			t.Errorf("port %s owned mask 0x%03X, expected 0x%03X", tc.port, got, tc.expected)
		}
	}

	if got := OwnedMask(NumPorts); got != 0 {
		t.Errorf("port out of range owns 0x%X", got)
	}
}

func TestPinBindings(t *testing.T) {
	testCases := []struct {
		role PinRole
		port Port
		bit  uint8
		mode Mode
	}{
		{SCL, PortA, 3, ModeWiredAndPullUp},
		{I2CEnable, PortA, 4, ModePushPull},
		{SDA, PortA, 5, ModeWiredAndPullUp},
		{DisplayReset, PortA, 6, ModePushPull},
		{NFC, PortA, 8, ModeInputPullUpFilter},
		{Power, PortA, 9, ModePushPull},
		{TouchInterrupt, PortB, 1, ModeInput},
		{BusBusy, PortB, 4, ModeInput},
		{FlashChipSelect, PortC, 0, ModePushPull},
		{EpaperMISO, PortC, 1, ModeInputPullUp},
		{EpaperMOSI, PortC, 2, ModePushPull},
		{EpaperSCK, PortC, 3, ModePushPull},
		{PsramChipSelect, PortC, 4, ModePushPull},
		{PsramMISO, PortC, 5, ModeInputPullUp},
		{PsramMOSI, PortC, 6, ModePushPull},
		{PsramSCK, PortC, 7, ModePushPull},
		{DisplayChipSelect, PortD, 2, ModeInputPullUp},
		{DisplayDataCommand, PortD, 3, ModePushPull},
	}

	if len(testCases) != NumRoles {
		t.Fatalf("expected %d bindings, table has %d", NumRoles, len(testCases))
	}
	for _, tc := range testCases {
		p := tc.role.Pin()
		if p.Port != tc.port || p.Bit != tc.bit || p.Mode != tc.mode {
			t.Errorf("%s: got port %s pin %d mode %d, expected port %s pin %d mode %d",
				tc.role, p.Port, p.Bit, p.Mode, tc.port, tc.bit, tc.mode)
		}
	}
}

func TestPortString(t *testing.T) {
	if PortA.String() != "A" || PortD.String() != "D" {
		t.Errorf("unexpected port letters %s %s", PortA, PortD)
	}
	if Port(NumPorts).String() != "?" {
		t.Errorf("out of range port should print ?")
	}
}
