package core

import "tinygo.org/x/drivers/tester"

// opDelay marks a delay call in a checkedBank log
const opDelay BankOpKind = 100

// checkedBank is a SimBank that aborts the test on out-of-range accesses
type checkedBank struct {
	*SimBank
	f tester.Failer
}

func newCheckedBank(f tester.Failer) *checkedBank {
	return &checkedBank{SimBank: NewSimBank(), f: f}
}

func (b *checkedBank) checkPort(port Port) {
	if port >= NumPorts {
		b.f.Fatalf("port %d out of range", port)
	}
}

func (b *checkedBank) WriteMode(port Port, half ModeHalf, value uint32) {
	b.checkPort(port)
	if half > ModeHigh {
		b.f.Fatalf("mode half %d out of range", half)
	}
	b.SimBank.WriteMode(port, half, value)
}

func (b *checkedBank) ReadOutput(port Port) uint32 {
	b.checkPort(port)
	return b.SimBank.ReadOutput(port)
}

func (b *checkedBank) WriteOutput(port Port, value uint32) {
	b.checkPort(port)
	b.SimBank.WriteOutput(port, value)
}

// delay logs the call in the bank's access log so ordering can be checked
func (b *checkedBank) delay(ms uint32) {
	b.Log = append(b.Log, BankOp{Kind: opDelay, Value: ms})
}
