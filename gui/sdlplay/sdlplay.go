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

// Package sdlplay is the SDL2 implementation of the gui.GUI interface. It
// also implements gui.AudioMixer, sounding the tone through the default
// audio device.
package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// error patterns for the sdlplay package.
const (
	SDL = "sdlplay: %v"
)

const pixelDepth = 4
const windowTitle = "Gopher8"

// display colours. the background is a deep blue rather than black, in the
// style of the classic machines the interpreter ran on.
const (
	foreR, foreG, foreB = 0xaa, 0xee, 0xff
	backR, backG, backB = 0x00, 0x66, 0xff
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL event queue with the parent emulation loop
	eventChannel chan userinput.Event

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// it to the renderer. it is equal to video.Width * video.Height *
	// pixelDepth; scaling to the window size is left to the renderer
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. scale is
// the size of a display pixel in window pixels.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	scr := &SdlPlay{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// nearest-neighbour scaling. anything smoother blurs the pixels
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scale), int32(video.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the same size as the pixel array. the renderer stretches it
	// to fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	setupService()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(ch chan userinput.Event) {
	scr.eventChannel = ch
}

// Render implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Render(screen video.Screen) error {
	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if screen[y][x] {
				scr.pixels[i] = foreR
				scr.pixels[i+1] = foreG
				scr.pixels[i+2] = foreB
			} else {
				scr.pixels[i] = backR
				scr.pixels[i+1] = backG
				scr.pixels[i+2] = backB
			}
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	return nil
}

// SetStatus implements the gui.GUI interface.
func (scr *SdlPlay) SetStatus(status string) {
	if status == "" {
		scr.window.SetTitle(windowTitle)
		return
	}
	scr.window.SetTitle(fmt.Sprintf("%s [%s]", windowTitle, status))
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
