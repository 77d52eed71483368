// Package memmap holds the EFM32PG23 GPIO memory map used by the device
// target. It carries no build tag so host tests can check the addresses.
package memmap

import "kampela/core"

// GPIO peripheral bases. Out of reset the SMU marks every peripheral
// secure, so the firmware drives the secure alias.
const (
	GPIOSecureBase    = 0x4003C000 // GPIO_S
	GPIONonSecureBase = 0x5003C000 // GPIO_NS

	PortStart = 0x30 // PORTA_CTRL offset from the peripheral base
	PortSize  = 0x30 // Stride between port register blocks
)

// Register offsets inside a port block
const (
	OffsetCTRL  = 0x00
	OffsetMODEL = 0x04
	OffsetMODEH = 0x0C
	OffsetDOUT  = 0x10
)

// PortAddr returns the address of a port's register block in the secure alias
func PortAddr(port core.Port) uintptr {
	return uintptr(GPIOSecureBase + PortStart + uintptr(port)*PortSize)
}
