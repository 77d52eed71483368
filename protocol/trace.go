// Boot trace records
// Text lines emitted over the debug UART describing every register write the
// power-up sequence performed. The firmware side only appends bytes (no fmt);
// the host side parses.
package protocol

import (
	"errors"
	"strconv"
	"strings"
)

// BootTracePrefix starts every boot trace line
const BootTracePrefix = "[BOOT] "

var (
	ErrNotBootLine       = errors.New("not a boot trace line")
	ErrMalformedBootLine = errors.New("malformed boot trace line")
)

// BootOp is the kind of event a record describes
type BootOp uint8

const (
	BootOpMode  BootOp = iota + 1 // Whole mode register half written
	BootOpOut                     // Data-output register written
	BootOpDelay                   // Settle delay entered
)

// String returns the keyword used on the wire
func (op BootOp) String() string {
	switch op {
	case BootOpMode:
		return "MODE"
	case BootOpOut:
		return "OUT"
	case BootOpDelay:
		return "DELAY"
	default:
		return "UNKNOWN"
	}
}

// BootRecord is one recorded boot event
type BootRecord struct {
	Seq   uint8  // Position in the sequence, wraps at 256
	Op    BootOp // Event kind
	Port  uint8  // Port index (A=0), unused for delays
	Half  uint8  // 0 = MODEL, 1 = MODEH, mode writes only
	Value uint32 // Register value written, or milliseconds for a delay
}

// BootLine is a parsed trace line: either a record or the END trailer
type BootLine struct {
	Record BootRecord
	End    bool
	Count  int    // Trailer only: number of records dumped
	CRC    uint16 // Trailer only: checksum over the dumped records
}

// binaryRecordSize is the size of a record's checksum encoding
const binaryRecordSize = 8

// appendBinary encodes the record for checksumming:
// seq, op, port, half, value (little endian)
func (r BootRecord) appendBinary(dst []byte) []byte {
	return append(dst, r.Seq, byte(r.Op), r.Port, r.Half,
		byte(r.Value), byte(r.Value>>8), byte(r.Value>>16), byte(r.Value>>24))
}

// BootTraceCRC computes the trailer checksum over records in order
func BootTraceCRC(records []BootRecord) uint16 {
	crc := CRC16InitialValue
	var buf [binaryRecordSize]byte
	for _, r := range records {
		crc = UpdateCRC16(crc, r.appendBinary(buf[:0]))
	}
	return crc
}

// AppendBootRecord appends the text form of r, without a line terminator.
//
//	[BOOT] 0 MODE A L 0x04A4A000
//	[BOOT] 5 OUT A 0x00000210
//	[BOOT] 7 DELAY 10
func AppendBootRecord(dst []byte, r BootRecord) []byte {
	dst = append(dst, BootTracePrefix...)
	dst = strconv.AppendUint(dst, uint64(r.Seq), 10)
	dst = append(dst, ' ')
	dst = append(dst, r.Op.String()...)
	switch r.Op {
	case BootOpMode:
		dst = append(dst, ' ', portLetter(r.Port), ' ')
		if r.Half == 0 {
			dst = append(dst, 'L')
		} else {
			dst = append(dst, 'H')
		}
		dst = append(dst, ' ')
		dst = appendHex32(dst, r.Value)
	case BootOpOut:
		dst = append(dst, ' ', portLetter(r.Port), ' ')
		dst = appendHex32(dst, r.Value)
	case BootOpDelay:
		dst = append(dst, ' ')
		dst = strconv.AppendUint(dst, uint64(r.Value), 10)
	}
	return dst
}

// AppendBootTrailer appends the END line closing a dump
//
//	[BOOT] END 22 0x1A2B
func AppendBootTrailer(dst []byte, count int, crc uint16) []byte {
	dst = append(dst, BootTracePrefix...)
	dst = append(dst, "END "...)
	dst = strconv.AppendUint(dst, uint64(count), 10)
	dst = append(dst, ' ')
	return appendHex(dst, uint32(crc), 4)
}

// ParseBootLine parses one trace line. Lines that do not carry the prefix
// return ErrNotBootLine so callers can skip unrelated console output.
func ParseBootLine(line string) (BootLine, error) {
	line = strings.TrimRight(line, "\r\n")
	idx := strings.Index(line, BootTracePrefix)
	if idx < 0 {
		return BootLine{}, ErrNotBootLine
	}
	fields := strings.Fields(line[idx+len(BootTracePrefix):])
	if len(fields) < 2 {
		return BootLine{}, ErrMalformedBootLine
	}

	if fields[0] == "END" {
		if len(fields) != 3 {
			return BootLine{}, ErrMalformedBootLine
		}
		count, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return BootLine{}, ErrMalformedBootLine
		}
		crc, err := strconv.ParseUint(fields[2], 0, 16)
		if err != nil {
			return BootLine{}, ErrMalformedBootLine
		}
		return BootLine{End: true, Count: int(count), CRC: uint16(crc)}, nil
	}

	seq, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return BootLine{}, ErrMalformedBootLine
	}
	rec := BootRecord{Seq: uint8(seq)}

	switch fields[1] {
	case "MODE":
		if len(fields) != 5 {
			return BootLine{}, ErrMalformedBootLine
		}
		port, ok := parsePort(fields[2])
		if !ok {
			return BootLine{}, ErrMalformedBootLine
		}
		switch fields[3] {
		case "L":
			rec.Half = 0
		case "H":
			rec.Half = 1
		default:
			return BootLine{}, ErrMalformedBootLine
		}
		value, err := strconv.ParseUint(fields[4], 0, 32)
		if err != nil {
			return BootLine{}, ErrMalformedBootLine
		}
		rec.Op, rec.Port, rec.Value = BootOpMode, port, uint32(value)
	case "OUT":
		if len(fields) != 4 {
			return BootLine{}, ErrMalformedBootLine
		}
		port, ok := parsePort(fields[2])
		if !ok {
			return BootLine{}, ErrMalformedBootLine
		}
		value, err := strconv.ParseUint(fields[3], 0, 32)
		if err != nil {
			return BootLine{}, ErrMalformedBootLine
		}
		rec.Op, rec.Port, rec.Value = BootOpOut, port, uint32(value)
	case "DELAY":
		if len(fields) != 3 {
			return BootLine{}, ErrMalformedBootLine
		}
		ms, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return BootLine{}, ErrMalformedBootLine
		}
		rec.Op, rec.Value = BootOpDelay, uint32(ms)
	default:
		return BootLine{}, ErrMalformedBootLine
	}
	return BootLine{Record: rec}, nil
}

func portLetter(port uint8) byte {
	if port > 'Z'-'A' {
		return '?'
	}
	return 'A' + port
}

func parsePort(s string) (uint8, bool) {
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return 0, false
	}
	return s[0] - 'A', true
}

const hexDigits = "0123456789ABCDEF"

func appendHex32(dst []byte, v uint32) []byte {
	return appendHex(dst, v, 8)
}

// appendHex writes v as 0x-prefixed, zero-padded uppercase hex
func appendHex(dst []byte, v uint32, digits int) []byte {
	dst = append(dst, '0', 'x')
	for i := digits - 1; i >= 0; i-- {
		dst = append(dst, hexDigits[(v>>(uint(i)*4))&0xF])
	}
	return dst
}
