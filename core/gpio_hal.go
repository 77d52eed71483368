package core

// ModeHalf selects which mode register of a port is written.
// MODEL covers pins 0-7 and MODEH pins 8-15, four bits per pin.
type ModeHalf uint8

const (
	ModeLow ModeHalf = iota
	ModeHigh
)

// String returns "L" or "H"
func (h ModeHalf) String() string {
	if h == ModeHigh {
		return "H"
	}
	return "L"
}

// RegisterBank is the register access interface the pin layer drives.
// Platform-specific implementations map it onto the GPIO peripheral.
//
// A bank has a single owner. Output updates are read-then-write and are not
// protected against reentrancy, so an interrupt handler touching the same
// port while a line is being driven can lose an update. Callers that share
// a bank with interrupt context must serialize access themselves, for
// example with WithInterruptsDisabled.
type RegisterBank interface {
	// WriteMode replaces the whole mode register half of a port
	WriteMode(port Port, half ModeHalf, value uint32)

	// ReadOutput returns the current data-output register of a port
	ReadOutput(port Port) uint32

	// WriteOutput replaces the data-output register of a port
	WriteOutput(port Port, value uint32)
}

// DelayFunc blocks the caller for at least ms milliseconds
type DelayFunc func(ms uint32)
