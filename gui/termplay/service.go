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

import (
	"strings"

	"github.com/jetsetilly/gopher8/userinput"
)

// control bytes produced by the terminal when ctrl is held
const (
	asciiEOT   = 0x04 // ctrl-d
	asciiCtrlP = 0x10
	asciiCtrlQ = 0x11
	asciiCtrlR = 0x12
)

// Service implements the gui.GUI interface.
func (scr *TermPlay) Service() {
	if scr.eventChannel == nil {
		return
	}

	// drain whatever input has arrived since the last frame. reads are
	// non-blocking in play mode
	buf := make([]byte, 8)
	for {
		n, err := scr.input.Read(buf)
		if err != nil || n == 0 {
			break
		}

		for _, b := range buf[:n] {
			switch b {
			case asciiEOT:
				scr.post(userinput.EventQuit{})

			case asciiCtrlQ:
				scr.post(userinput.EventKeyboard{Key: "Q", Mod: userinput.KeyModCtrl, Down: true})

			case asciiCtrlP:
				scr.post(userinput.EventKeyboard{Key: "P", Mod: userinput.KeyModCtrl, Down: true})

			case asciiCtrlR:
				scr.post(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true})

			default:
				key := strings.ToUpper(string(rune(b)))
				if _, ok := userinput.KeypadIndex(key); !ok {
					continue
				}

				// refresh the hold counter. only send the press event if the
				// key wasn't already down
				if _, down := scr.held[key]; !down {
					scr.post(userinput.EventKeyboard{Key: key, Down: true})
				}
				scr.held[key] = holdFrames
			}
		}
	}

	// age held keys, synthesising the release the terminal can't give us
	for key, ct := range scr.held {
		ct--
		if ct <= 0 {
			delete(scr.held, key)
			scr.post(userinput.EventKeyboard{Key: key, Down: false})
		} else {
			scr.held[key] = ct
		}
	}
}

func (scr *TermPlay) post(ev userinput.Event) {
	select {
	case scr.eventChannel <- ev:
	default:
	}
}
