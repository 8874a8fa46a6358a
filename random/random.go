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

// Package random is a replacement for the standard math/rand package. The
// only source of randomness in the emulated machine is the RND instruction
// and the quality requirement for it is low. What matters is that an
// instance can be made deterministic for testing and for regression
// purposes.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator for the emulated machine.
type Random struct {
	rand *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset reseeds the generator. Called as part of machine reset so that a
// reset machine does not replay the previous random sequence, except when
// ZeroSeed is set.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rand = rand.New(rand.NewSource(0))
		return
	}
	rnd.rand = rand.New(rand.NewSource(baseSeed + int64(time.Now().Nanosecond())))
}

// Byte returns a pseudo-random byte in the range [0, 255].
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand.Intn(256))
}
