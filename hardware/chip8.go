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

// Package hardware is the container for the emulated machine. The CHIP8
// type gathers the components from the sub-packages and owns the state
// machine that decides, cycle by cycle, whether instructions are executed.
//
// Everything here runs in a single goroutine. The renderer and the input
// layer communicate with the machine strictly between frames: the renderer
// receives display snapshots and the input layer writes into the keypad
// latch. There is nothing to synchronise.
package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// DefCyclesPerFrame is the default number of instruction cycles in one
// 60Hz frame. Programs from different eras assumed different machine
// speeds, so the value is tunable per program.
const DefCyclesPerFrame = 15

// CHIP8 is the main container for the emulated components of the machine.
type CHIP8 struct {
	Mem    *memory.Memory
	CPU    *cpu.CPU
	Video  *video.Video
	Keypad *input.Keypad
	Timers *timer.Timers

	rnd *random.Random

	// the number of instruction cycles executed per frame
	CyclesPerFrame int

	// copy of the attached ROM, kept so that a reset can reload the machine
	// from scratch
	rom []uint8

	// the state machine. state is one of the emulation.State values; fault
	// is the reason for the Faulted state and FaultNone otherwise
	state emulation.State
	fault emulation.Fault
}

// NewCHIP8 creates a new machine and everything associated with the
// hardware.
func NewCHIP8() *CHIP8 {
	sys := &CHIP8{
		Mem:            memory.NewMemory(),
		Video:          video.NewVideo(),
		Keypad:         input.NewKeypad(),
		Timers:         timer.NewTimers(),
		rnd:            random.NewRandom(),
		CyclesPerFrame: DefCyclesPerFrame,
	}
	sys.CPU = cpu.NewCPU(sys.Mem, sys.Video, sys.Keypad, sys.Timers, sys.rnd)
	sys.state = emulation.Running
	return sys
}

// AttachROM loads the program bytes into the machine and resets everything.
// An error means the ROM was rejected and the machine is exactly as it was
// before the call.
func (sys *CHIP8) AttachROM(rom []uint8) error {
	if len(rom) > memory.MaxROMSize {
		// let the memory package shape the error but reject before keeping
		// a copy of the oversized ROM
		return sys.Mem.Load(rom)
	}

	sys.rom = make([]uint8, len(rom))
	copy(sys.rom, rom)

	return sys.Reset()
}

// Reset the machine to its power-on state and reload the attached ROM. This
// is the only way out of the Faulted state.
func (sys *CHIP8) Reset() error {
	if err := sys.Mem.Load(sys.rom); err != nil {
		return err
	}

	sys.CPU.Reset()
	sys.Video.Reset()
	sys.Keypad.Reset()
	sys.Timers.Reset()
	sys.rnd.Reset()

	sys.state = emulation.Running
	sys.fault = emulation.FaultNone

	return nil
}

// State returns the current condition of the state machine.
func (sys *CHIP8) State() emulation.State {
	return sys.state
}

// Fault returns the reason the machine is in the Faulted state. Outside of
// that state the value is FaultNone.
func (sys *CHIP8) Fault() emulation.Fault {
	return sys.fault
}

// Paused returns true if the machine is paused by the user.
func (sys *CHIP8) Paused() bool {
	return sys.state == emulation.Paused
}

// SetPause suspends or resumes the machine. Pausing is a pure state flip;
// cycles are atomic so there is no partial instruction to worry about.
//
// The pause request is ignored in the Faulted state, which can only be left
// through Reset(), and in the AwaitingKey state only the resume direction
// is meaningful (the machine returns to AwaitingKey by itself).
func (sys *CHIP8) SetPause(paused bool) {
	switch sys.state {
	case emulation.Running, emulation.AwaitingKey:
		if paused {
			sys.state = emulation.Paused
		}
	case emulation.Paused:
		if !paused {
			sys.state = emulation.Running
		}
	}
}

// Step runs a single instruction cycle, honouring the state machine. In
// the Faulted and Paused states the cycle does nothing. In the AwaitingKey
// state the keypad is scanned instead of decoding an instruction.
//
// A cycle that faults transitions the machine to the Faulted state and
// returns the fault error for logging. The machine stays usable; further
// Step() calls are no-ops until a reset.
func (sys *CHIP8) Step() error {
	switch sys.state {
	case emulation.Faulted, emulation.Paused:
		return nil

	case emulation.AwaitingKey:
		if sys.CPU.ResolveAwait() {
			sys.state = emulation.Running
		}
		return nil
	}

	err := sys.CPU.ExecuteInstruction()
	if err != nil {
		sys.state = emulation.Faulted
		sys.fault = faultReason(err)
		return err
	}

	if _, awaiting := sys.CPU.Awaiting(); awaiting {
		sys.state = emulation.AwaitingKey
	}

	return nil
}

// StepFrame runs one frame's worth of instruction cycles and then decays
// the timers. A fault aborts the remaining cycles for the frame; the timer
// decay still happens so that a faulted machine keeps its 60Hz relationship
// with the outside world.
//
// The fault error is returned once, on the transition into the Faulted
// state. Frames that begin in the Faulted or Paused state run no cycles and
// return nil.
func (sys *CHIP8) StepFrame() error {
	var ferr error

	if sys.state != emulation.Faulted && sys.state != emulation.Paused {
		for i := 0; i < sys.CyclesPerFrame; i++ {
			if err := sys.Step(); err != nil {
				logger.Logf("chip8", "%v", err)
				ferr = err
				break
			}
		}
	}

	sys.Timers.Decay()

	return ferr
}

// RunForFrames runs the machine for the specified number of frames as
// quickly as possible. No frame pacing takes place; this is for tests and
// for benchmarking, not for the play loop.
//
// The continueCheck function is called after every frame. Returning false
// ends the run early. A nil continueCheck is treated as "always continue".
func (sys *CHIP8) RunForFrames(numFrames int, continueCheck func() bool) error {
	if continueCheck == nil {
		continueCheck = func() bool { return true }
	}

	for i := 0; i < numFrames; i++ {
		if err := sys.StepFrame(); err != nil {
			return err
		}
		if !continueCheck() {
			return nil
		}
	}

	return nil
}

// faultReason maps a curated error from the cpu package to the fault
// taxonomy reported to the outside world.
func faultReason(err error) emulation.Fault {
	switch {
	case curated.Is(err, cpu.OutOfBounds):
		return emulation.FaultOutOfBounds
	case curated.Is(err, cpu.InvalidOpcode):
		return emulation.FaultInvalidOpcode
	case curated.Is(err, cpu.StackOverflow), curated.Is(err, cpu.StackUnderflow):
		return emulation.FaultStack
	}
	return emulation.FaultNone
}
