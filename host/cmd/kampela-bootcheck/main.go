package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"kampela/host/bootcheck"
	"kampela/host/serial"
	"kampela/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Debug UART device path")
	baud    = flag.Int("baud", 115200, "Debug UART baud rate")
	file    = flag.String("file", "", "Read a saved console log instead of the device")
	timeout = flag.Duration("timeout", 10*time.Second, "How long to wait for a boot trace")
	verbose = flag.Bool("verbose", false, "Print every trace record")
)

func main() {
	flag.Parse()

	trace, err := capture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verbose {
		var line []byte
		for _, r := range trace.Records {
			line = protocol.AppendBootRecord(line[:0], r)
			fmt.Println(string(line))
		}
	}

	if err := trace.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: corrupted trace: %v\n", err)
		os.Exit(2)
	}

	report := bootcheck.Check(trace.Records)
	if !report.OK() {
		fmt.Printf("FAIL: %d problem(s) in %d records\n", len(report.Problems), len(trace.Records))
		for _, p := range report.Problems {
			fmt.Printf("  - %v\n", p)
		}
		os.Exit(1)
	}

	fmt.Printf("OK: %d records, power-up sequence matches firmware\n", len(trace.Records))
}

// capture reads a trace from the log file or waits for the device to boot
func capture() (*bootcheck.Trace, error) {
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return bootcheck.Read(f)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}

	// Drop anything buffered before the reset we are waiting for
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "flush")
	}

	fmt.Printf("Waiting for boot trace on %s (reset the device)...\n", *device)
	return readWithTimeout(port, *timeout)
}

type result struct {
	trace *bootcheck.Trace
	err   error
}

// readWithTimeout reads one trace from r and closes it, on every path
func readWithTimeout(r io.ReadCloser, d time.Duration) (*bootcheck.Trace, error) {
	done := make(chan result, 1)
	go func() {
		trace, err := bootcheck.Read(r)
		done <- result{trace, err}
	}()

	select {
	case res := <-done:
		r.Close()
		return res.trace, res.err
	case <-time.After(d):
		// Closing unblocks the pending read
		r.Close()
		return nil, errors.Errorf("no boot trace within %v", d)
	}
}
