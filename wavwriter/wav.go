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

// Package wavwriter records the tone driven by the sound timer and writes it
// to disk as a WAV file when the emulation ends. Note that the recording is
// buffered in memory in its entirety, so it is probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// error patterns for the wavwriter package.
const (
	WavFile = "wavwriter: %v"
)

const (
	sampleFreq = 44100
	toneFreq   = 440

	// one frame's worth of samples at 60fps
	frameSamples = sampleFreq / 60
)

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string

	// one entry per frame; true when the sound timer was running
	frames []bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		frames:   make([]bool, 0, 3600),
	}
	return aw, nil
}

// SetBeep implements the gui.AudioMixer interface.
func (aw *WavWriter) SetBeep(on bool) error {
	aw.frames = append(aw.frames, on)
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavFile, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavFile, err)
		}
	}()

	// expand the per-frame beep record into 8bit unsigned PCM. frames with
	// the tone on get a square wave, everything else is flat silence
	data := make([]int, 0, len(aw.frames)*frameSamples)
	halfPeriod := sampleFreq / toneFreq / 2
	for _, on := range aw.frames {
		for i := 0; i < frameSamples; i++ {
			v := 128
			if on {
				if (i/halfPeriod)%2 == 0 {
					v = 152
				} else {
					v = 104
				}
			}
			data = append(data, v)
		}
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           data,
		SourceBitDepth: 8,
	}

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)
	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(WavFile, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(WavFile, err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
