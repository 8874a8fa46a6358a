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
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleFreq = 44100
	toneFreq   = 440

	// one frame's worth of samples at 60fps
	frameSamples = sampleFreq / 60

	// never leave more than three frames of audio in the device queue. any
	// more and the tone noticeably outstays the sound timer
	maxQueuedBytes = frameSamples * 3
)

// sound drives a square-wave tone through an SDL audio device. samples are
// pushed with QueueAudio once per frame while the tone is on; when the tone
// is off the queue simply drains to silence.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one frame of square wave, ready to queue
	tone []uint8
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(frameSamples),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	// precompute a frame of square wave at the tone frequency
	snd.tone = make([]uint8, frameSamples)
	halfPeriod := sampleFreq / toneFreq / 2
	for i := range snd.tone {
		if (i/halfPeriod)%2 == 0 {
			snd.tone[i] = snd.spec.Silence + 24
		} else {
			snd.tone[i] = snd.spec.Silence - 24
		}
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// SetBeep implements the gui.AudioMixer interface.
func (scr *SdlPlay) SetBeep(on bool) error {
	if !on {
		return nil
	}
	if sdl.GetQueuedAudioSize(scr.snd.id) > maxQueuedBytes {
		return nil
	}
	return sdl.QueueAudio(scr.snd.id, scr.snd.tone)
}

// EndMixing implements the gui.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	sdl.ClearQueuedAudio(scr.snd.id)
	sdl.CloseAudioDevice(scr.snd.id)
	return nil
}
