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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := input.NewKeypad()

	_, any := kp.FirstPressed()
	test.Equate(t, any, false)

	kp.Set(0xa, true)
	kp.Set(0x3, true)
	test.Equate(t, kp.IsPressed(0xa), true)
	test.Equate(t, kp.IsPressed(0x3), true)
	test.Equate(t, kp.IsPressed(0x4), false)

	// lowest-valued pressed key wins
	k, any := kp.FirstPressed()
	test.Equate(t, any, true)
	test.Equate(t, k, 0x3)

	kp.Set(0x3, false)
	k, _ = kp.FirstPressed()
	test.Equate(t, k, 0xa)

	kp.Reset()
	_, any = kp.FirstPressed()
	test.Equate(t, any, false)
}

func TestKeypadRange(t *testing.T) {
	kp := input.NewKeypad()

	// out of range values are ignored rather than panicking
	kp.Set(-1, true)
	kp.Set(16, true)
	test.Equate(t, kp.IsPressed(-1), false)
	test.Equate(t, kp.IsPressed(16), false)

	_, any := kp.FirstPressed()
	test.Equate(t, any, false)
}
