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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypadMapping(t *testing.T) {
	// every keypad value 0x0 to 0xf appears exactly once in the mapping
	seen := make(map[int]string)
	for _, key := range []string{
		"1", "2", "3", "4",
		"Q", "W", "E", "R",
		"A", "S", "D", "F",
		"Z", "X", "C", "V",
	} {
		v, ok := userinput.KeypadIndex(key)
		test.ExpectedSuccess(t, ok)
		if prev, dup := seen[v]; dup {
			t.Errorf("keypad value %#x mapped by both %s and %s", v, prev, key)
		}
		seen[v] = key
	}
	test.Equate(t, len(seen), 16)

	// physical arrangement of the original keypad
	v, _ := userinput.KeypadIndex("X")
	test.Equate(t, v, 0x0)
	v, _ = userinput.KeypadIndex("1")
	test.Equate(t, v, 0x1)
	v, _ = userinput.KeypadIndex("V")
	test.Equate(t, v, 0xf)

	// unmapped keys
	_, ok := userinput.KeypadIndex("P")
	test.ExpectedFailure(t, ok)
	_, ok = userinput.KeypadIndex("Space")
	test.ExpectedFailure(t, ok)
}

func TestControlSignals(t *testing.T) {
	sig := userinput.ControlSignal(userinput.EventKeyboard{Key: "Q", Mod: userinput.KeyModCtrl, Down: true})
	test.Equate(t, sig == userinput.ControlQuit, true)

	sig = userinput.ControlSignal(userinput.EventKeyboard{Key: "P", Mod: userinput.KeyModCtrl, Down: true})
	test.Equate(t, sig == userinput.ControlPause, true)

	sig = userinput.ControlSignal(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true})
	test.Equate(t, sig == userinput.ControlReset, true)

	// control signals require the ctrl modifier
	sig = userinput.ControlSignal(userinput.EventKeyboard{Key: "Q", Mod: userinput.KeyModNone, Down: true})
	test.Equate(t, sig == userinput.ControlNone, true)

	// and only trigger on key down
	sig = userinput.ControlSignal(userinput.EventKeyboard{Key: "Q", Mod: userinput.KeyModCtrl, Down: false})
	test.Equate(t, sig == userinput.ControlNone, true)
}
