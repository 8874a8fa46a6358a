// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// #mainthread
//
// SDL requires window creation and event servicing to happen on the main
// thread, so everything runs in the main goroutine.
func main() {
	flgs := flag.NewFlagSet(version.ApplicationName, flag.ExitOnError)
	flgs.Usage = func() {
		fmt.Fprintf(flgs.Output(), "usage: %s [flags] romfile\n\n", os.Args[0])
		flgs.PrintDefaults()
	}

	opts := playmode.Options{}
	var showLog bool
	var showVersion bool
	var stats bool

	flgs.IntVar(&opts.Scale, "scale", 0, "size of a display pixel in window pixels")
	flgs.IntVar(&opts.CyclesPerFrame, "cycles", hardware.DefCyclesPerFrame, "instruction cycles per frame")
	flgs.Float64Var(&opts.Speed, "speed", 1.0, "frame rate multiplier")
	flgs.BoolVar(&opts.UseTerminal, "term", false, "render to the terminal instead of an SDL window")
	flgs.StringVar(&opts.WavFile, "wav", "", "record the tone to the named WAV file")
	flgs.BoolVar(&showLog, "log", false, "echo the log to stderr")
	flgs.BoolVar(&stats, "stats", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	flgs.BoolVar(&showVersion, "version", false, "print version and exit")

	// flag.ExitOnError means we don't need to check the error
	_ = flgs.Parse(os.Args[1:])

	if showVersion {
		vrs, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrs)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
		os.Exit(0)
	}

	if showLog {
		logger.SetEcho(os.Stderr, true)
	}

	if stats {
		statsview.Launch(os.Stderr)
	}

	if len(flgs.Args()) != 1 {
		flgs.Usage()
		os.Exit(10)
	}

	err := playmode.Play(flgs.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}
