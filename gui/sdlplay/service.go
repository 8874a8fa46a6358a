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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.eventChannel == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough - queued events would take a frame or
	// longer to resolve and key releases would go missing
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			select {
			case scr.eventChannel <- userinput.EventQuit{}:
			default:
			}

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			if ev.Repeat == 0 && (ev.Type == sdl.KEYDOWN || ev.Type == sdl.KEYUP) {
				select {
				case scr.eventChannel <- userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: ev.Type == sdl.KEYDOWN}:
				default:
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and we can
			// say that the event queue is empty
			empty = true
		}
	}
}
