// Package serial opens the device debug console from the host.
package serial

import (
	"io"
	"time"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - In-memory readers in tests
type Port interface {
	io.ReadWriteCloser

	// Flush discards unread input
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the device debug UART
	Baud int

	// Read timeout (0 = blocking)
	ReadTimeout time.Duration
}

// DefaultConfig returns the configuration of the Kampela debug console:
// 115200 baud, blocking reads
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
