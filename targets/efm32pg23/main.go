//go:build efm32pg23

package main

import (
	"time"

	"tinygo.org/x/drivers/delay"

	"kampela/core"
)

// settleDelay busy-waits, so it keeps working with interrupts masked
func settleDelay(ms uint32) {
	delay.Sleep(time.Duration(ms) * time.Millisecond)
}

func main() {
	// Console output goes to the TinyGo default UART
	core.SetDebugWriter(func(s string) {
		println(s)
	})

	bank := NewGPIOBank()

	// Nothing else runs yet, but keep the sequence atomic against any
	// handler a bootloader may have left enabled
	core.WithInterruptsDisabled(func() {
		core.Initialize(bank, settleDelay)
	})

	core.DumpBootTrace()

	// Hand-off point for the display, flash and PSRAM drivers
	for {
		time.Sleep(time.Second)
	}
}
