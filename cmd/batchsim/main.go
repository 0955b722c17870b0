// Command batchsim simulates EASY-style conservative backfill scheduling
// of a batch-job instance over a fixed pool of identical machines, reading
// the instance from stdin (or BATCHSIM_INPUT) and writing the resulting
// start_times table to stdout (or BATCHSIM_OUTPUT).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ahmadhassan44/batchsim/internal/driver"
	"github.com/ahmadhassan44/batchsim/internal/instance"
	"github.com/ahmadhassan44/batchsim/internal/output"
	"github.com/ahmadhassan44/batchsim/pkg/config"
)

func main() {
	cfg := config.LoadConfig()

	in, err := openInput(cfg.InputPath)
	if err != nil {
		log.Fatalf("[batchsim] %v", err)
	}
	defer in.Close()

	out, err := openOutput(cfg.OutputPath)
	if err != nil {
		log.Fatalf("[batchsim] %v", err)
	}
	defer out.Close()

	inst, err := instance.Parse(in)
	if err != nil {
		log.Fatalf("[batchsim] %v", err)
	}

	startTimes := runDriver(inst, cfg.Verbose)

	if err := output.Write(out, startTimes); err != nil {
		log.Fatalf("[batchsim] write output: %v", err)
	}
}

// runDriver invokes the driver inside a recover so that the scheduler
// core's panics on invariant violations surface as a single diagnostic
// and a non-zero exit rather than a raw trace.
func runDriver(inst instance.Instance, verbose bool) (startTimes map[int]int) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("[batchsim] scheduler invariant violated: %v", r)
		}
	}()
	return driver.Run(inst, verbose)
}

func openInput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", path, err)
	}
	return f, nil
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", path, err)
	}
	return f, nil
}
