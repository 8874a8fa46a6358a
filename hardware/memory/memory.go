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

// Package memory implements the 4KB address space of the emulated machine.
//
// The memory map is flat:
//
//	0x000 to 0x04f    font table (16 glyphs, 5 bytes per glyph)
//	0x050 to 0x1ff    unused (interpreter space on the original hardware)
//	0x200 to 0xfff    ROM and working space for the running program
//
// There is no memory protection of any kind, matching the original hardware.
// A program is free to overwrite the font table if it addresses it with a
// write instruction.
package memory

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Error patterns raised by the memory package.
const (
	ROMTooLarge = "memory: ROM is too large (%d bytes  - maximum %d)"
)

// Size is the extent of the address space in bytes.
const Size = 4096

// OriginROM is the address at which program bytes begin. Addresses below
// this point belong to the interpreter on the original hardware.
const OriginROM = 0x200

// MaxROMSize is the largest ROM that can be copied into the address space.
const MaxROMSize = Size - OriginROM

// GlyphSize is the number of bytes in one glyph of the font table.
const GlyphSize = 5

// font is the fixed glyph table for the hexadecimal digits 0 to F. installed
// at address 0x000 on every (re)initialisation.
var font = [...]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the flat address space of the emulated machine.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Load(nil)
	return mem
}

// Load zeroes the entire address space, installs the font table and copies
// the supplied ROM bytes to the ROM origin. A nil or empty ROM leaves the
// program space empty, which is not an error.
//
// If the ROM is too large for the address space the error is returned
// *before* any part of memory has been touched.
func (mem *Memory) Load(rom []uint8) error {
	if len(rom) > MaxROMSize {
		return curated.Errorf(ROMTooLarge, len(rom), MaxROMSize)
	}

	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[:], font[:])
	copy(mem.ram[OriginROM:], rom)

	return nil
}

// Read returns the byte at the address. Addresses outside of the 4KB space
// wrap around, the address bus being only 12 bits wide.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.ram[address&0x0fff]
}

// Write the byte to the address. Addresses wrap as in the Read function.
// Note that there is nothing to stop a program overwriting the font table.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.ram[address&0x0fff] = data
}

// GlyphAddress returns the address of the font glyph for the digit. Only the
// low four bits of the digit are significant.
func GlyphAddress(digit uint8) uint16 {
	return uint16(digit%16) * GlyphSize
}

// String implements the Stringer interface. The returned string is a hex
// dump of the entire address space, 32 bytes to a row.
func (mem *Memory) String() string {
	s := strings.Builder{}
	for i, b := range mem.ram {
		if i%32 == 0 && i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(hexByte(b))
		s.WriteString(" ")
	}
	s.WriteString("\n")
	return s.String()
}

const hexDigits = "0123456789abcdef"

func hexByte(b uint8) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}
