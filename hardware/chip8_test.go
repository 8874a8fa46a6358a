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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestPostLoadState(t *testing.T) {
	sys := hardware.NewCHIP8()
	err := sys.AttachROM([]uint8{0x60, 0x05})
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.PC, 0x200)
	test.Equate(t, sys.CPU.SP, 0)
	test.Equate(t, sys.CPU.I, 0)
	for i, v := range sys.CPU.V {
		if v != 0 {
			t.Fatalf("V%X not zero after load", i)
		}
	}
	test.Equate(t, sys.Timers.Delay, 0)
	test.Equate(t, sys.Timers.Sound, 0)
	test.Equate(t, sys.State(), emulation.Running)
	test.Equate(t, sys.Fault(), emulation.FaultNone)

	// display entirely dark
	snap := sys.Video.Snapshot()
	for y := range snap {
		for x := range snap[y] {
			if snap[y][x] {
				t.Fatal("display not clear after load")
			}
		}
	}

	// font table at the bottom of memory, ROM at the origin
	test.Equate(t, sys.Mem.Read(0x000), 0xf0)
	test.Equate(t, sys.Mem.Read(memory.OriginROM), 0x60)
}

func TestOversizeROM(t *testing.T) {
	sys := hardware.NewCHIP8()

	err := sys.AttachROM([]uint8{0x60, 0x05})
	test.ExpectedSuccess(t, err)

	// an oversized ROM is rejected and the previous program remains intact
	err = sys.AttachROM(make([]uint8, memory.MaxROMSize+1))
	test.ExpectedFailure(t, err)
	test.Equate(t, sys.Mem.Read(memory.OriginROM), 0x60)

	// a reset still reloads the old program
	test.ExpectedSuccess(t, sys.Reset())
	test.Equate(t, sys.Mem.Read(memory.OriginROM), 0x60)
}

func TestEndToEndFrame(t *testing.T) {
	sys := hardware.NewCHIP8()

	// LD V0, 0x05; LD V1, 0x03; ADD V0, V1. a fourth instruction would be
	// all zero bytes, so jump-to-self to keep the frame's remaining cycles
	// busy
	err := sys.AttachROM([]uint8{0x60, 0x05, 0x61, 0x03, 0x80, 0x14, 0x12, 0x06})
	test.ExpectedSuccess(t, err)

	err = sys.StepFrame()
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.V[0], 0x08)
	test.Equate(t, sys.CPU.V[1], 0x03)
	test.Equate(t, sys.CPU.PC, 0x206)
	test.Equate(t, sys.State(), emulation.Running)

	// the program never drew anything
	snap := sys.Video.Snapshot()
	for y := range snap {
		for x := range snap[y] {
			if snap[y][x] {
				t.Fatal("display was touched by a program that never draws")
			}
		}
	}
}

func TestKeyWaitAcrossFrames(t *testing.T) {
	sys := hardware.NewCHIP8()

	// LD V2, K followed by a jump-to-self for the frame's remaining cycles
	err := sys.AttachROM([]uint8{0xf2, 0x0a, 0x12, 0x02})
	test.ExpectedSuccess(t, err)

	// with no key pressed the machine settles into AwaitingKey and stays
	// there across frames, PC unmoved
	for i := 0; i < 3; i++ {
		test.ExpectedSuccess(t, sys.StepFrame())
		test.Equate(t, sys.State(), emulation.AwaitingKey)
		test.Equate(t, sys.CPU.PC, 0x200)
	}

	// the first frame that observes a pressed key satisfies the wait
	sys.Keypad.Set(0x9, true)
	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.CPU.V[2], 0x9)
	test.Equate(t, sys.CPU.PC, 0x202)
}

func TestFaultTransitions(t *testing.T) {
	sys := hardware.NewCHIP8()

	// 8xy8 is unassigned
	err := sys.AttachROM([]uint8{0x80, 0x18})
	test.ExpectedSuccess(t, err)

	err = sys.StepFrame()
	test.ExpectedFailure(t, err)
	test.Equate(t, sys.State(), emulation.Faulted)
	test.Equate(t, sys.Fault(), emulation.FaultInvalidOpcode)

	// the fault error is reported once. later frames run no cycles and
	// return nil
	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.State(), emulation.Faulted)

	// pausing a faulted machine has no effect
	sys.SetPause(true)
	test.Equate(t, sys.State(), emulation.Faulted)

	// reset is the only way out
	test.ExpectedSuccess(t, sys.Reset())
	test.Equate(t, sys.State(), emulation.Running)
	test.Equate(t, sys.Fault(), emulation.FaultNone)
}

func TestOutOfBoundsFault(t *testing.T) {
	sys := hardware.NewCHIP8()

	// jump to the very last byte of memory. only one opcode byte is
	// readable there
	err := sys.AttachROM([]uint8{0x1f, 0xff})
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, sys.Step()) // the jump itself is fine
	err = sys.Step()
	test.ExpectedFailure(t, err)
	test.Equate(t, sys.State(), emulation.Faulted)
	test.Equate(t, sys.Fault(), emulation.FaultOutOfBounds)
}

func TestPause(t *testing.T) {
	sys := hardware.NewCHIP8()

	err := sys.AttachROM([]uint8{0x60, 0x05, 0x12, 0x02})
	test.ExpectedSuccess(t, err)

	sys.SetPause(true)
	test.Equate(t, sys.State(), emulation.Paused)

	// a paused frame runs no cycles but the timers keep their 60Hz decay
	sys.Timers.Delay = 2
	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.CPU.PC, 0x200)
	test.Equate(t, sys.Timers.Delay, 1)

	sys.SetPause(false)
	test.Equate(t, sys.State(), emulation.Running)
	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.CPU.V[0], 0x05)
}

func TestTimerDecayPerFrame(t *testing.T) {
	sys := hardware.NewCHIP8()

	err := sys.AttachROM([]uint8{0x12, 0x00}) // jump-to-self
	test.ExpectedSuccess(t, err)

	sys.Timers.Delay = 5
	err = sys.RunForFrames(5, nil)
	test.ExpectedSuccess(t, err)
	test.Equate(t, sys.Timers.Delay, 0)

	// no underflow on further frames
	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.Timers.Delay, 0)
}
