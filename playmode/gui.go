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

package playmode

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
)

const defScale = 10

// newGUI creates the display implementation the options ask for, along with
// any audio mixers the display provides.
func newGUI(opts Options) (gui.GUI, []gui.AudioMixer, error) {
	if opts.UseTerminal {
		scr, err := termplay.NewTermPlay()
		if err != nil {
			return nil, nil, err
		}
		return scr, []gui.AudioMixer{scr}, nil
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = defScale
	}

	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return nil, nil, err
	}
	return scr, []gui.AudioMixer{scr}, nil
}
