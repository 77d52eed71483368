// Mode configuration
// Programs the per-port mode registers from the pin map in bulk
package core

const (
	modeFieldBits = 4
	pinsPerHalf   = 8
)

// ModeWord computes the mode register value for one half of a port.
// Pins in the half that no role owns are left at ModeDisabled, the reset
// default. ok is false when no role lives in that half.
func ModeWord(port Port, half ModeHalf) (value uint32, ok bool) {
	for _, p := range pinTable {
		if p.Port != port || ModeHalf(p.Bit/pinsPerHalf) != half {
			continue
		}
		shift := uint32(p.Bit%pinsPerHalf) * modeFieldBits
		value |= uint32(p.Mode) << shift
		ok = true
	}
	return value, ok
}

// ConfigureModes writes every mode register half that holds at least one
// mapped pin, one whole-register write each. Halves without mapped pins are
// not touched.
//
// This must run before any line on the port is driven.
func ConfigureModes(bank RegisterBank) {
	for port := Port(0); port < NumPorts; port++ {
		for _, half := range [...]ModeHalf{ModeLow, ModeHigh} {
			if value, ok := ModeWord(port, half); ok {
				bank.WriteMode(port, half, value)
			}
		}
	}
}
