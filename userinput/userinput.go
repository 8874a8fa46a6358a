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

// Package userinput translates input events from the GUI implementations
// into something the emulation understands: hexadecimal keypad changes and
// control signals.
//
// The GUI layer sends Event values into a channel serviced by the play
// loop. The functions in this package decide what an event means. Key names
// follow the SDL convention of an upper-case string ("A", "1"); the
// terminal GUI normalises its input to the same convention.
package userinput

// Event represents an input event from the user via the GUI.
type Event interface{}

// EventQuit is sent when the user closes the window (or otherwise asks the
// program to end).
type EventQuit struct{}

// EventKeyboard is sent for every key press and key release.
type EventKeyboard struct {
	// name of the key in the SDL convention
	Key string

	// modifier held at the time of the event
	Mod KeyMod

	// true for key down, false for key up
	Down bool
}

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of supported key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Control is an emulation control signal triggered from the keyboard.
type Control int

// List of control signals. ControlNone means the event is not a control
// event and should be offered to the keypad mapping instead.
const (
	ControlNone Control = iota
	ControlQuit
	ControlPause
	ControlReset
)

// the hexadecimal keypad is mapped onto the left-hand side of a modern
// keyboard, preserving the physical arrangement of the original:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypad = map[string]int{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeypadIndex returns the keypad value for the named key. The second return
// value is false if the key has no keypad mapping.
func KeypadIndex(key string) (int, bool) {
	k, ok := keypad[key]
	return k, ok
}

// ControlSignal returns the control signal for a keyboard event. Control
// signals trigger on key down with the ctrl modifier held; everything else
// is ControlNone.
func ControlSignal(ev EventKeyboard) Control {
	if !ev.Down || ev.Mod != KeyModCtrl {
		return ControlNone
	}

	switch ev.Key {
	case "Q":
		return ControlQuit
	case "P":
		return ControlPause
	case "R":
		return ControlReset
	}

	return ControlNone
}
