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

// Package termplay renders the display to a posix terminal with ANSI escape
// sequences. It exists for machines without SDL and for playing over ssh.
//
// A terminal cannot report key releases so termplay synthesises one a few
// frames after each key press. Hold a key down and terminal auto-repeat will
// keep refreshing the press.
package termplay

import (
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// error patterns for the termplay package.
const (
	Terminal = "termplay: %v"
)

// number of Service() calls a synthesised key press is held for. long enough
// to bridge the gap between terminal auto-repeats
const holdFrames = 8

// ansi sequences. the colours are the same palette the SDL display uses
const (
	ansiHome       = "\033[H"
	ansiClear      = "\033[2J"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
	ansiNormal     = "\033[0m"
	ansiClearLine  = "\033[K"
	ansiPalette    = "\033[38;2;170;238;255m\033[48;2;0;102;255m"
)

// TermPlay is the terminal implementation of the gui.GUI interface.
type TermPlay struct {
	input  *os.File
	output *os.File

	// connects terminal input with the parent emulation loop
	eventChannel chan userinput.Event

	// terminal attributes for canonical mode (restored on Destroy) and for
	// play mode (cbreak with non-blocking reads)
	canAttr  unix.Termios
	playAttr unix.Termios

	// keys currently held, by key name, with the number of frames remaining
	// before the synthesised release
	held map[string]int

	status  string
	beeping bool
}

// NewTermPlay is the preferred method of initialisation for TermPlay.
func NewTermPlay() (*TermPlay, error) {
	scr := &TermPlay{
		input:  os.Stdin,
		output: os.Stdout,
		held:   make(map[string]int),
	}

	err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	// cbreak gives us input without line buffering or echo. VMIN of zero on
	// top of that makes reads non-blocking, which is what Service() needs
	scr.playAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.playAttr)
	scr.playAttr.Cc[unix.VMIN] = 0
	scr.playAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.playAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	scr.print(ansiClear + ansiHideCursor + ansiHome)

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *TermPlay) SetEventChannel(ch chan userinput.Event) {
	scr.eventChannel = ch
}

// Render implements the gui.GUI interface.
func (scr *TermPlay) Render(screen video.Screen) error {
	s := strings.Builder{}
	s.WriteString(ansiHome)
	s.WriteString(ansiPalette)

	// two characters per pixel gives something close to square pixels
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if screen[y][x] {
				s.WriteString("██")
			} else {
				s.WriteString("  ")
			}
		}
		s.WriteString("\r\n")
	}

	s.WriteString(ansiNormal)
	s.WriteString(scr.status)
	s.WriteString(ansiClearLine)

	scr.print(s.String())

	return nil
}

// SetStatus implements the gui.GUI interface.
func (scr *TermPlay) SetStatus(status string) {
	scr.status = status
}

// Destroy implements the gui.GUI interface.
func (scr *TermPlay) Destroy() {
	scr.print(ansiNormal + ansiShowCursor + "\r\n")
	_ = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)
}

func (scr *TermPlay) print(s string) {
	_, _ = scr.output.WriteString(s)
	_ = scr.output.Sync()
}
