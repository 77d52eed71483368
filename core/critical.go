package core

// WithInterruptsDisabled runs fn with interrupts masked and restores the
// previous state afterwards. The pin layer never locks on its own; callers
// that share ports with interrupt handlers wrap their accesses in this.
func WithInterruptsDisabled(fn func()) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn()
}
