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

// Package timer implements the two 8-bit countdown timers of the emulated
// machine. Both count down at 60Hz and stop at zero. The delay timer is read
// and written by the running program; the sound timer can only be written,
// the machine emitting a tone for as long as it is non-zero.
package timer

import "fmt"

// Timers are the delay and sound countdown registers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Decay decrements both timers by at most one, flooring at zero. Must be
// called exactly once per frame (ie. at 60Hz) for correct timekeeping.
func (tmr *Timers) Decay() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// IsBeeping returns true if the sound timer is asking for a tone.
func (tmr *Timers) IsBeeping() bool {
	return tmr.Sound > 0
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("dt=%#02x st=%#02x", tmr.Delay, tmr.Sound)
}
