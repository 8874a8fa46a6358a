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

// Package input implements the 16-key hexadecimal keypad of the emulated
// machine.
//
// The keypad is a latch: the userinput layer writes key state into it
// between frames and the executor reads it during the frame. The executor
// never writes to it.
//
// The physical layout of the original keypad:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package input

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the latched state of the 16 hexadecimal keys. A key is indexed
// by its value, not its physical position.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
}

// Set the pressed state of a single key. Key values outside the keypad are
// ignored.
func (kp *Keypad) Set(key int, down bool) {
	if key < 0 || key >= NumKeys {
		return
	}
	kp.keys[key] = down
}

// IsPressed returns the pressed state of a single key. Key values outside
// the keypad read as not pressed.
func (kp *Keypad) IsPressed(key int) bool {
	if key < 0 || key >= NumKeys {
		return false
	}
	return kp.keys[key]
}

// FirstPressed returns the lowest-valued key that is currently pressed. The
// second return value is false if no key is pressed.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for i, down := range kp.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}
