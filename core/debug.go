package core

import "kampela/protocol"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// BootTraceSize is the number of boot events kept for post-mortem dumps.
// The power-up sequence produces fewer events than this.
const BootTraceSize = 32

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether DebugPrintln output is active
	debugEnabled bool = false

	// Boot trace ring buffer, always recorded
	bootTrace     [BootTraceSize]protocol.BootRecord
	bootTraceHead uint8 // Next write position
	bootTraceLen  uint8 // Number of valid entries
	bootTraceSeq  uint8 // Sequence number of the next event
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables DebugPrintln output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// recordBoot appends an event to the boot trace ring
func recordBoot(op protocol.BootOp, port Port, half ModeHalf, value uint32) {
	idx := bootTraceHead
	bootTrace[idx] = protocol.BootRecord{
		Seq:   bootTraceSeq,
		Op:    op,
		Port:  uint8(port),
		Half:  uint8(half),
		Value: value,
	}
	bootTraceSeq++
	bootTraceHead = (idx + 1) % BootTraceSize
	if bootTraceLen < BootTraceSize {
		bootTraceLen++
	}
}

// BootTrace returns the recorded boot events, oldest first
func BootTrace() []protocol.BootRecord {
	records := make([]protocol.BootRecord, 0, bootTraceLen)
	start := (bootTraceHead + BootTraceSize - bootTraceLen) % BootTraceSize
	for i := uint8(0); i < bootTraceLen; i++ {
		records = append(records, bootTrace[(start+i)%BootTraceSize])
	}
	return records
}

// DumpBootTrace writes the boot trace through the debug writer, one record
// per line, followed by the END trailer carrying the record count and CRC16.
// The dump is written even when debug output is disabled.
func DumpBootTrace() {
	if debugPrintln == nil {
		return
	}

	records := BootTrace()
	var line []byte
	for _, r := range records {
		line = protocol.AppendBootRecord(line[:0], r)
		debugPrintln(string(line))
	}
	line = protocol.AppendBootTrailer(line[:0], len(records), protocol.BootTraceCRC(records))
	debugPrintln(string(line))
}

// ClearBootTrace empties the boot trace
func ClearBootTrace() {
	for i := range bootTrace {
		bootTrace[i] = protocol.BootRecord{}
	}
	bootTraceHead = 0
	bootTraceLen = 0
	bootTraceSeq = 0
}
