// SPDX-License-Identifier: EPL-2.0

// Command rtmix mixes two WAV files into a third.
//
//	rtmix <in1.wav> <in2.wav> <out.wav>
//
// The first input is scaled by 0.8 and the second by 0.6. An output path of
// "-" writes the WAV to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/rtmix"
	"github.com/ik5/rtmix/log"
)

const (
	gainA = 0.8
	gainB = 0.6
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintln(stderr, "usage: rtmix <in1.wav> <in2.wav> <out.wav>")
		return 1
	}
	inA, inB, outPath := args[0], args[1], args[2]

	logger := log.GetLogger()
	e := rtmix.New(rtmix.WithLogger(logger))

	if err := e.Load(inA, inB); err != nil {
		fmt.Fprintln(stderr, "load:", err)
		return 1
	}
	if err := e.Process(gainA, gainB); err != nil {
		fmt.Fprintln(stderr, "process:", err)
		return 1
	}

	if outPath == "-" {
		if _, err := e.WriteTo(stdout); err != nil {
			fmt.Fprintln(stderr, "write:", err)
			return 1
		}
		return 0
	}

	if err := e.Save(outPath); err != nil {
		fmt.Fprintln(stderr, "save:", err)
		return 1
	}
	fmt.Fprintln(stdout, "Wrote:", outPath)

	return 0
}
