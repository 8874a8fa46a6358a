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

//go:build !windows
// +build !windows

package termplay

// the terminal bell is the best we can do for audio. ring it once when the
// sound timer starts, not on every frame it remains non-zero.

// SetBeep implements the gui.AudioMixer interface.
func (scr *TermPlay) SetBeep(on bool) error {
	if on && !scr.beeping {
		scr.print("\a")
	}
	scr.beeping = on
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (scr *TermPlay) EndMixing() error {
	return nil
}
