// Package bootcheck validates a power-up trace captured from the device.
//
// The firmware dumps every register write of its power-up sequence as
// [BOOT] lines on the debug console. This package reads such a capture,
// replays it onto a simulated register bank and compares the result, and the
// order it was reached in, against what the firmware's own sequencer does.
package bootcheck

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"kampela/core"
	"kampela/protocol"
)

var (
	ErrNoTrailer = errors.New("boot trace ended without END trailer")
	ErrEmpty     = errors.New("boot trace has no records")
)

// Trace is a captured boot trace and its trailer
type Trace struct {
	Records []protocol.BootRecord
	Count   int    // Record count announced by the trailer
	CRC     uint16 // Checksum announced by the trailer
}

// Read scans console output until a complete boot trace has been seen.
// Non-trace lines are skipped. If the device reboots mid-capture (a new
// sequence starting at seq 0), the partial trace is discarded.
func Read(r io.Reader) (*Trace, error) {
	scanner := bufio.NewScanner(r)
	trace := &Trace{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line, err := protocol.ParseBootLine(scanner.Text())
		if err == protocol.ErrNotBootLine {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}

		if line.End {
			trace.Count = line.Count
			trace.CRC = line.CRC
			return trace, nil
		}
		if line.Record.Seq == 0 && len(trace.Records) > 0 {
			trace.Records = trace.Records[:0]
		}
		trace.Records = append(trace.Records, line.Record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading boot trace")
	}
	return nil, ErrNoTrailer
}

// Verify checks the records against the trailer's count and checksum
func (t *Trace) Verify() error {
	if t.Count != len(t.Records) {
		return errors.Errorf("trailer announces %d records, captured %d", t.Count, len(t.Records))
	}
	if crc := protocol.BootTraceCRC(t.Records); crc != t.CRC {
		return errors.Errorf("trailer CRC 0x%04X, computed 0x%04X", t.CRC, crc)
	}
	return nil
}

// Report is the outcome of checking a trace
type Report struct {
	// Problems lists every violation found, in trace order
	Problems []error

	// Replayed is the register state reached by replaying the trace
	Replayed *core.SimBank

	// Expected is the register state the firmware sequencer produces
	Expected *core.SimBank
}

// OK reports whether the trace passed every check
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) addf(format string, args ...interface{}) {
	r.Problems = append(r.Problems, errors.Errorf(format, args...))
}

// Check replays records and verifies the power-up protocol:
// mode writes come first, exactly one settle delay of at least
// core.SettleTimeMs follows the power and I2C enable lines going high with no
// other line driven high yet, and the final registers match the sequencer's.
// Outputs are compared on registry-owned bits only.
func Check(records []protocol.BootRecord) *Report {
	report := &Report{
		Replayed: core.NewSimBank(),
		Expected: core.NewSimBank(),
	}
	core.Initialize(report.Expected, func(ms uint32) {})

	if len(records) == 0 {
		report.Problems = append(report.Problems, ErrEmpty)
		return report
	}

	sim := report.Replayed
	seenOutput := false
	delays := 0
	outputsAfterDelay := 0

	for i, rec := range records {
		if want := records[0].Seq + uint8(i); rec.Seq != want {
			report.addf("record %d: sequence %d, expected %d (lines lost?)", i, rec.Seq, want)
		}

		switch rec.Op {
		case protocol.BootOpMode:
			if rec.Port >= core.NumPorts || rec.Half > uint8(core.ModeHigh) {
				report.addf("seq %d: mode write to invalid register %d/%d", rec.Seq, rec.Port, rec.Half)
				continue
			}
			if seenOutput {
				report.addf("seq %d: port %s mode written after outputs were driven",
					rec.Seq, core.Port(rec.Port))
			}
			sim.WriteMode(core.Port(rec.Port), core.ModeHalf(rec.Half), rec.Value)

		case protocol.BootOpOut:
			if rec.Port >= core.NumPorts {
				report.addf("seq %d: output write to invalid port %d", rec.Seq, rec.Port)
				continue
			}
			seenOutput = true
			if delays > 0 {
				outputsAfterDelay++
			}
			sim.WriteOutput(core.Port(rec.Port), rec.Value)

		case protocol.BootOpDelay:
			delays++
			if rec.Value < core.SettleTimeMs {
				report.addf("seq %d: settle delay %dms shorter than %dms",
					rec.Seq, rec.Value, core.SettleTimeMs)
			}
			checkRailsBeforeDelay(report, rec.Seq, sim)

		default:
			report.addf("seq %d: unknown operation %d", rec.Seq, rec.Op)
		}
	}

	if delays != 1 {
		report.addf("expected exactly one settle delay, found %d", delays)
	}
	if delays > 0 && outputsAfterDelay == 0 {
		report.addf("no lines driven after the settle delay")
	}

	for port := core.Port(0); port < core.NumPorts; port++ {
		for half := core.ModeLow; half <= core.ModeHigh; half++ {
			if got, want := sim.Mode[port][half], report.Expected.Mode[port][half]; got != want {
				report.addf("port %s mode %s is 0x%08X, expected 0x%08X", port, half, got, want)
			}
		}
		// Bits no registry pin owns may hold bootloader state
		owned := core.OwnedMask(port)
		if got, want := sim.Out[port]&owned, report.Expected.Out[port]&owned; got != want {
			report.addf("port %s output is 0x%08X, expected 0x%08X", port, got, want)
		}
	}

	return report
}

// checkRailsBeforeDelay verifies the register state when the delay starts:
// Power and I2CEnable high, no other mapped line high yet
func checkRailsBeforeDelay(report *Report, seq uint8, sim *core.SimBank) {
	var allowed [core.NumPorts]uint32
	for _, role := range []core.PinRole{core.Power, core.I2CEnable} {
		p := role.Pin()
		allowed[p.Port] |= 1 << p.Bit
		if sim.Out[p.Port]&(1<<p.Bit) == 0 {
			report.addf("seq %d: %s not asserted before the settle delay", seq, role)
		}
	}

	for r := core.PinRole(0); r < core.NumRoles; r++ {
		p := r.Pin()
		mask := uint32(1) << p.Bit
		if allowed[p.Port]&mask == 0 && sim.Out[p.Port]&mask != 0 {
			report.addf("seq %d: %s driven high before the settle delay", seq, r)
		}
	}
}
