// GPIO line control
// Drives single output bits of a port without disturbing the rest of the port
package core

// Set drives one bit of a port's data-output register high.
// Other bits of the register keep their current value.
func Set(bank RegisterBank, port Port, bit uint8) {
	bank.WriteOutput(port, bank.ReadOutput(port)|1<<bit)
}

// Clear drives one bit of a port's data-output register low.
// Clearing an already-low bit leaves it low. Other bits keep their value.
func Clear(bank RegisterBank, port Port, bit uint8) {
	bank.WriteOutput(port, bank.ReadOutput(port)&^(1<<bit))
}

// Drive sets or clears one bit depending on level
func Drive(bank RegisterBank, port Port, bit uint8, level bool) {
	if level {
		Set(bank, port, bit)
	} else {
		Clear(bank, port, bit)
	}
}

// Assert drives the role's line high.
// The port must already be configured by ConfigureModes.
func (r PinRole) Assert(bank RegisterBank) {
	p := pinTable[r]
	Set(bank, p.Port, p.Bit)
}

// Deassert drives the role's line low
func (r PinRole) Deassert(bank RegisterBank) {
	p := pinTable[r]
	Clear(bank, p.Port, p.Bit)
}

// Drive sets the role's line to level
func (r PinRole) Drive(bank RegisterBank, level bool) {
	p := pinTable[r]
	Drive(bank, p.Port, p.Bit, level)
}

// IsAsserted reports whether the role's bit is set in the output register.
// This is the driven level, not the sensed pin state.
func (r PinRole) IsAsserted(bank RegisterBank) bool {
	p := pinTable[r]
	return bank.ReadOutput(p.Port)&(1<<p.Bit) != 0
}
