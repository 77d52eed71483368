//go:build !tinygo

package core

// State is a placeholder for interrupt state on regular Go
type State uintptr

// interruptsDisabled tracks nesting so host tests can observe the section
var interruptsDisabled int

// disableInterrupts is a no-op on regular Go apart from the nesting count
func disableInterrupts() State {
	interruptsDisabled++
	return 0
}

// restoreInterrupts is a no-op on regular Go apart from the nesting count
func restoreInterrupts(state State) {
	interruptsDisabled--
}
