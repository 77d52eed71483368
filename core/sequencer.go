// Power-up sequence
// Brings the auxiliary 2.8 V rail and the peripheral buses to their idle
// levels in the order the hardware requires
package core

import "kampela/protocol"

// SettleTimeMs is the wait after enabling the power rail before any display
// line may be driven (e-paper datasheet requirement for the 2.8 V supply)
const SettleTimeMs = 10

// idleStep is one line level driven after the rail has settled
type idleStep struct {
	Role  PinRole
	Level bool
}

// idleSequence is the fixed order lines are brought to rest after settling
var idleSequence = [...]idleStep{
	{DisplayChipSelect, true},
	{DisplayDataCommand, false},
	{DisplayReset, false},
	{SDA, true},
	{SCL, true},
	{FlashChipSelect, true},
	{EpaperMISO, true},
	{EpaperMOSI, true},
	{EpaperSCK, false},
	{PsramChipSelect, true},
	{PsramMISO, true},
	{PsramMOSI, false},
	{PsramSCK, false},
	{NFC, false},
}

// Initialize configures all pin modes and runs the power-up sequence:
//
//  1. mode registers for every port
//  2. Power and I2CEnable asserted
//  3. delay(SettleTimeMs)
//  4. remaining lines driven to idle in idleSequence order
//
// It must be called once at boot, before anything else touches these ports,
// and the caller must own the bank exclusively for the duration. There is no
// failure path; a misbehaving rail only shows up later as bus errors.
//
// Every register write and the delay are recorded in the boot trace.
func Initialize(bank RegisterBank, delay DelayFunc) {
	tb := tracingBank{bank}

	ConfigureModes(tb)

	Power.Assert(tb)
	I2CEnable.Assert(tb)

	recordBoot(protocol.BootOpDelay, 0, 0, SettleTimeMs)
	DebugPrintln("[GPIO] rail settle " + utoa(SettleTimeMs) + "ms")
	delay(SettleTimeMs)

	for _, step := range idleSequence {
		step.Role.Drive(tb, step.Level)
	}
	DebugPrintln("[GPIO] lines idle")
}

// tracingBank records writes into the boot trace before forwarding them
type tracingBank struct {
	RegisterBank
}

func (b tracingBank) WriteMode(port Port, half ModeHalf, value uint32) {
	b.RegisterBank.WriteMode(port, half, value)
	recordBoot(protocol.BootOpMode, port, half, value)
}

func (b tracingBank) WriteOutput(port Port, value uint32) {
	b.RegisterBank.WriteOutput(port, value)
	recordBoot(protocol.BootOpOut, port, 0, value)
}
