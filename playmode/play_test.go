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

package playmode

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypadEvents(t *testing.T) {
	sys := hardware.NewCHIP8()
	test.ExpectedSuccess(t, sys.AttachROM([]uint8{0x12, 0x00}))

	quit, err := handleEvent(sys, userinput.EventKeyboard{Key: "W", Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.ExpectedSuccess(t, sys.Keypad.IsPressed(0x5))

	quit, err = handleEvent(sys, userinput.EventKeyboard{Key: "W", Down: false})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.ExpectedFailure(t, sys.Keypad.IsPressed(0x5))

	// unmapped keys are ignored
	_, err = handleEvent(sys, userinput.EventKeyboard{Key: "M", Down: true})
	test.ExpectedSuccess(t, err)
}

func TestControlEvents(t *testing.T) {
	sys := hardware.NewCHIP8()
	test.ExpectedSuccess(t, sys.AttachROM([]uint8{0x12, 0x00}))

	// ctrl-p toggles pause
	quit, err := handleEvent(sys, userinput.EventKeyboard{Key: "P", Mod: userinput.KeyModCtrl, Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.ExpectedSuccess(t, sys.Paused())

	quit, err = handleEvent(sys, userinput.EventKeyboard{Key: "P", Mod: userinput.KeyModCtrl, Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.ExpectedFailure(t, sys.Paused())

	// ctrl-q quits
	quit, err = handleEvent(sys, userinput.EventKeyboard{Key: "Q", Mod: userinput.KeyModCtrl, Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, quit)

	// plain q is a keypad key (0x4) and does not quit
	quit, err = handleEvent(sys, userinput.EventKeyboard{Key: "Q", Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.ExpectedSuccess(t, sys.Keypad.IsPressed(0x4))
}

func TestResetEvent(t *testing.T) {
	sys := hardware.NewCHIP8()
	test.ExpectedSuccess(t, sys.AttachROM([]uint8{0x60, 0x07, 0x12, 0x02}))

	test.ExpectedSuccess(t, sys.StepFrame())
	test.Equate(t, sys.CPU.V[0], 0x07)

	quit, err := handleEvent(sys, userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true})
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, quit)
	test.Equate(t, sys.CPU.V[0], 0)
	test.Equate(t, sys.CPU.PC, 0x200)
}

func TestQuitEvent(t *testing.T) {
	sys := hardware.NewCHIP8()
	quit, err := handleEvent(sys, userinput.EventQuit{})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, quit)
}
