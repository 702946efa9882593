// Package main provides the transpose benchmark command.
//
// Usage:
//
//	transpose [flags] [exponent [runs [block]]]
//
// Each run prints "<elapsed ms>, <effective GB/s>" on stdout.
//
// Examples:
//
//	transpose 12 10
//	transpose -strategy blocked 12 10 32
//	transpose -v -summary -verify -strategy linear 10 5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/transpose/internal/bench"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := bench.ParseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, bench.ErrUsage):
		// The flag package has already printed the problem and the usage.
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.New(stderr, "transpose: ", log.LstdFlags)
	if _, err := bench.Run(cfg, stdout, logger); err != nil {
		logger.Printf("run failed: %v", err)
		return 1
	}
	return 0
}
