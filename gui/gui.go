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

// Package gui defines the interface between the emulation loop and the
// display implementations. Concrete implementations live in the sub-packages
// sdlplay and termplay.
package gui

import (
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/userinput"
)

// GUI defines the operations the play loop requires of a display
// implementation.
//
// Service() must be called regularly (once per frame is enough) and always
// from the same goroutine the GUI was created in. Some platforms insist on
// window events being handled on the main thread.
type GUI interface {
	// SetEventChannel attaches the channel to which user input events are
	// posted. Events are dropped if the channel is full, so make it a
	// buffered channel of reasonable size.
	SetEventChannel(chan userinput.Event)

	// Service the platform event queue, posting anything of interest to the
	// event channel.
	Service()

	// Render the screen snapshot.
	Render(video.Screen) error

	// SetStatus updates the status indicator presented to the user. The
	// empty string means normal running.
	SetStatus(string)

	// Destroy releases any resources held by the GUI. The GUI cannot be
	// used after a call to Destroy.
	Destroy()
}

// AudioMixer is anything that can sound (or record) the tone driven by the
// sound timer. The SDL display doubles as an AudioMixer; the wavwriter
// package provides another implementation.
type AudioMixer interface {
	// SetBeep is called once per frame with the current state of the sound
	// timer.
	SetBeep(on bool) error

	// EndMixing is called once when the emulation ends.
	EndMixing() error
}
