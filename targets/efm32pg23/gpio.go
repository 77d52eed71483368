//go:build efm32pg23

package main

import (
	"runtime/volatile"
	"unsafe"

	"kampela/core"
	"kampela/targets/efm32pg23/memmap"
)

// gpioPort is the register block of one port, see memmap for offsets
type gpioPort struct {
	CTRL  volatile.Register32    // 0x00
	MODEL volatile.Register32    // 0x04 pins 0-7
	_     volatile.Register32    // 0x08
	MODEH volatile.Register32    // 0x0C pins 8-15
	DOUT  volatile.Register32    // 0x10
	_     [7]volatile.Register32 // 0x14-0x2C DIN, lock and reserved
}

// GPIOBank implements core.RegisterBank on the secure GPIO_S alias.
// The GPIO bus clock must already be enabled.
type GPIOBank struct {
	ports [core.NumPorts]*gpioPort
}

// NewGPIOBank maps the four port register blocks
func NewGPIOBank() *GPIOBank {
	b := &GPIOBank{}
	for i := range b.ports {
		b.ports[i] = (*gpioPort)(unsafe.Pointer(memmap.PortAddr(core.Port(i))))
	}
	return b
}

// WriteMode replaces MODEL or MODEH of a port
func (b *GPIOBank) WriteMode(port core.Port, half core.ModeHalf, value uint32) {
	p := b.ports[port]
	if half == core.ModeHigh {
		p.MODEH.Set(value)
	} else {
		p.MODEL.Set(value)
	}
}

// ReadOutput returns DOUT of a port
func (b *GPIOBank) ReadOutput(port core.Port) uint32 {
	return b.ports[port].DOUT.Get()
}

// WriteOutput replaces DOUT of a port
func (b *GPIOBank) WriteOutput(port core.Port, value uint32) {
	b.ports[port].DOUT.Set(value)
}
