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

// Package playmode ties the hardware, the GUI and the frame limiter into the
// 60fps play loop. It is the normal way of running the emulation.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// error patterns for the playmode package.
const (
	PlayError = "playmode: %v"
)

const framesPerSecond = 60

// Options for the Play() function. The zero value of every field is a
// sensible default.
type Options struct {
	// size of a display pixel in window pixels. zero means the default
	Scale int

	// instruction cycles per frame. zero means hardware.DefCyclesPerFrame
	CyclesPerFrame int

	// speed multiplier for the frame rate. zero means normal speed
	Speed float64

	// render to the terminal instead of an SDL window
	UseTerminal bool

	// record the tone to this WAV file. empty means no recording
	WavFile string
}

// Play sets the emulation running - without any debugging features.
func Play(romFile string, opts Options) error {
	ld := romloader.NewLoader(romFile)
	err := ld.Load()
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	sys := hardware.NewCHIP8()
	if opts.CyclesPerFrame > 0 {
		sys.CyclesPerFrame = opts.CyclesPerFrame
	}

	err = sys.AttachROM(ld.Data)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	scr, mixers, err := newGUI(opts)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	if opts.WavFile != "" {
		aw, err := wavwriter.New(opts.WavFile)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		mixers = append(mixers, aw)
	}

	defer func() {
		for _, m := range mixers {
			if err := m.EndMixing(); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}
	}()

	events := make(chan userinput.Event, 32)
	scr.SetEventChannel(events)

	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}
	lmtr, err := limiter.NewFPSLimiter(framesPerSecond, speed)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// make sure deferred functions run even when ctrl-c is pressed. redirect
	// the interrupt signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	logger.Logf("playmode", "running %s", ld.ShortName())

	prevState := sys.State()
	frame := 0
	running := true

	for running {
		lmtr.StartFrame()

		scr.Service()

		// drain the event queue before running the frame so that key changes
		// are visible to every cycle in it
		drained := false
		for !drained {
			select {
			case <-intChan:
				running = false
				drained = true
			case ev := <-events:
				quit, err := handleEvent(sys, ev)
				if err != nil {
					return curated.Errorf(PlayError, err)
				}
				running = running && !quit
			default:
				drained = true
			}
		}
		if !running {
			break
		}

		// the fault has already been logged by the hardware package. the
		// status change below is how the user finds out
		_ = sys.StepFrame()

		if st := sys.State(); st != prevState {
			prevState = st
			switch st {
			case emulation.Running, emulation.AwaitingKey:
				scr.SetStatus("")
			default:
				scr.SetStatus(st.String())
			}
		}

		err = scr.Render(sys.Video.Snapshot())
		if err != nil {
			return curated.Errorf(PlayError, err)
		}

		beep := sys.Timers.IsBeeping()
		for _, m := range mixers {
			if err := m.SetBeep(beep); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}

		frame++
		if frame%framesPerSecond == 0 {
			logger.Logf("playmode", "fps: %.1f", lmtr.Actual())
		}

		lmtr.Wait()
	}

	return nil
}

// handleEvent processes a single user input event. The first return value is
// true if the user has asked to quit.
func handleEvent(sys *hardware.CHIP8, ev userinput.Event) (bool, error) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return true, nil

	case userinput.EventKeyboard:
		return handleKeyboard(sys, ev)
	}

	return false, nil
}

// handleKeyboard processes a keyboard event: control signals first and the
// keypad mapping for everything else.
func handleKeyboard(sys *hardware.CHIP8, ev userinput.EventKeyboard) (bool, error) {
	switch userinput.ControlSignal(ev) {
	case userinput.ControlQuit:
		return true, nil

	case userinput.ControlPause:
		sys.SetPause(!sys.Paused())
		return false, nil

	case userinput.ControlReset:
		logger.Log("playmode", "machine reset")
		return false, sys.Reset()
	}

	if k, ok := userinput.KeypadIndex(ev.Key); ok {
		sys.Keypad.Set(k, ev.Down)
	}

	return false, nil
}
