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

// Package video implements the 64x32 monochrome display of the emulated
// machine.
//
// The display is only ever mutated through two operations: a full clear and
// the XOR compositing of a sprite. Sprites are 8 pixels wide and between 1
// and 15 rows tall, one byte per row, the most significant bit being the
// leftmost pixel. Coordinates wrap at both edges.
//
// The renderer receives the display as a Screen value, a plain copy of the
// pixel grid. There is no dirty tracking; at 64x32 a full-frame handoff is
// cheaper than the bookkeeping.
package video

import "strings"

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Screen is a copy of the display pixel grid, indexed [row][column]. A
// pixel is true when lit.
type Screen [Height][Width]bool

// Video is the display surface.
type Video struct {
	screen Screen
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Reset is equivalent to Clear. It exists so the type resets in the same
// way as the other parts of the machine.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear unsets every pixel.
func (vid *Video) Clear() {
	vid.screen = Screen{}
}

// Pixel returns the state of the pixel at the coordinates. Coordinates wrap.
func (vid *Video) Pixel(x, y int) bool {
	return vid.screen[mod(y, Height)][mod(x, Width)]
}

// DrawSprite XORs the sprite into the display at the coordinates. Both
// coordinates wrap independently, at the starting position and at every
// pixel of the sprite.
//
// The returned collision flag is true if any pixel was switched off by the
// draw. It is decided once for the whole sprite: off before the loop and
// only ever raised during it. The caller is expected to store it in VF.
func (vid *Video) DrawSprite(x, y uint8, sprite []uint8) bool {
	collision := false

	for row, line := range sprite {
		for bit := 0; bit < 8; bit++ {
			if line&(0x80>>bit) == 0 {
				continue
			}

			px := mod(int(x)+bit, Width)
			py := mod(int(y)+row, Height)

			if vid.screen[py][px] {
				collision = true
			}
			vid.screen[py][px] = !vid.screen[py][px]
		}
	}

	return collision
}

// Snapshot returns a copy of the display for the renderer. The copy is not
// aliased to the live display, so the renderer can be handed the value
// without concern for what the executor does next frame.
func (vid *Video) Snapshot() Screen {
	return vid.screen
}

// String implements the Stringer interface. Lit pixels are drawn with a
// hash, unlit with a dot. Useful in tests and for the terminal renderer.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.screen[y][x] {
				s.WriteString("#")
			} else {
				s.WriteString(".")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

// mod implements euclidean modulo. the % operator is no good for negative
// values.
func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
