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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestNewMemory(t *testing.T) {
	mem := memory.NewMemory()

	// font table is installed at the bottom of memory. check the first and
	// last glyphs in full and that everything after the table is zero
	test.Equate(t, mem.Read(0x000), 0xf0)
	test.Equate(t, mem.Read(0x001), 0x90)
	test.Equate(t, mem.Read(0x04b), 0xf0)
	test.Equate(t, mem.Read(0x04c), 0x80)
	test.Equate(t, mem.Read(0x04d), 0xf0)
	test.Equate(t, mem.Read(0x04e), 0x80)
	test.Equate(t, mem.Read(0x04f), 0x80)

	for a := uint16(0x050); a < memory.Size; a++ {
		if mem.Read(a) != 0 {
			t.Fatalf("memory not zeroed at %#04x", a)
		}
	}
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	rom := []uint8{0x60, 0x05, 0x61, 0x0a}
	err := mem.Load(rom)
	test.ExpectedSuccess(t, err)

	for i, b := range rom {
		test.Equate(t, mem.Read(memory.OriginROM+uint16(i)), b)
	}

	// largest possible ROM is accepted
	err = mem.Load(make([]uint8, memory.MaxROMSize))
	test.ExpectedSuccess(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	mem := memory.NewMemory()

	// poison a byte so we can check the failed load leaves memory alone
	mem.Write(0x300, 0xff)

	err := mem.Load(make([]uint8, memory.MaxROMSize+1))
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.ROMTooLarge) {
		t.Errorf("expected ROMTooLarge error (got %v)", err)
	}

	// memory was not touched by the failed load
	test.Equate(t, mem.Read(0x300), 0xff)
}

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory()

	// the address bus is 12 bits wide. higher bits are ignored
	mem.Write(0x1234, 0xab)
	test.Equate(t, mem.Read(0x0234), 0xab)
}

func TestGlyphAddress(t *testing.T) {
	test.Equate(t, memory.GlyphAddress(0x0), 0x000)
	test.Equate(t, memory.GlyphAddress(0x1), 0x005)
	test.Equate(t, memory.GlyphAddress(0xf), 0x04b)

	// only the low four bits of the digit are significant
	test.Equate(t, memory.GlyphAddress(0x1f), 0x04b)
}
