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

// Package limiter paces the emulation to a fixed frame rate regardless of
// host speed.
//
// Usage is two calls per frame:
//
//	lmtr, _ := limiter.NewFPSLimiter(60, 1.0)
//	for {
//		lmtr.StartFrame()
//		doFrame()
//		lmtr.Wait()
//	}
//
// Each frame's sleep target is computed from the wall-clock timestamp taken
// by StartFrame(), never from an accumulated value. Rounding errors in the
// sleep therefore do not compound over time; a frame that runs long simply
// gets a shorter (or zero) sleep.
package limiter

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// Error patterns raised by the limiter package.
const (
	BadLimit = "limiter: unusable frame rate (fps %d, speed multiplier %.2f)"
)

// FpsLimiter stalls the caller once per frame to maintain a fixed frame
// rate.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	frameStart time.Time

	// measurement of the frame rate actually achieved
	actual      float32
	measureCt   int
	measureFrom time.Time
}

// NewFPSLimiter is the preferred method of initialisation for the
// FpsLimiter type. The speed multiplier scales the frame rate: a value of
// 2.0 runs the machine at twice real time.
func NewFPSLimiter(framesPerSecond int, speed float64) (*FpsLimiter, error) {
	if framesPerSecond <= 0 || speed <= 0 {
		return nil, curated.Errorf(BadLimit, framesPerSecond, speed)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Duration(float64(time.Second) / (float64(framesPerSecond) * speed)),
	}
	lim.frameStart = time.Now()
	lim.measureFrom = lim.frameStart

	return lim, nil
}

// StartFrame stamps the frame's reference time. Call at the very top of the
// frame, before input polling and instruction cycles.
func (lim *FpsLimiter) StartFrame() {
	lim.frameStart = time.Now()
}

// Wait stalls until the frame's time allotment has elapsed. If the frame
// has already overrun there is no stall at all.
func (lim *FpsLimiter) Wait() {
	d := time.Until(lim.frameStart.Add(lim.secondsPerFrame))
	if d > 0 {
		time.Sleep(d)
	}

	lim.measure()
}

// Actual returns the most recent measurement of the achieved frame rate.
// The measurement updates roughly once per second of wall-clock time and
// reads zero before the first measurement completes.
func (lim *FpsLimiter) Actual() float32 {
	return lim.actual
}

func (lim *FpsLimiter) measure() {
	lim.measureCt++
	elapsed := time.Since(lim.measureFrom)
	if elapsed >= time.Second {
		lim.actual = float32(float64(lim.measureCt) / elapsed.Seconds())
		lim.measureCt = 0
		lim.measureFrom = time.Now()
	}
}
