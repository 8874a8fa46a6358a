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

// Package curated is the error type used throughout Gopher8. A curated error
// is created with the Errorf() function, which looks and feels like the
// Errorf() function from the fmt package. The difference is that the pattern
// string is kept alongside the formatting values, meaning an error can later
// be identified by the pattern that created it.
//
// Error patterns are declared as string constants by the package that raises
// them. For example, the cpu package declares the patterns for the execution
// faults it can return:
//
//	const InvalidOpcode = "cpu: invalid opcode (%#04x)"
//
// The caller can then test an error against the pattern:
//
//	if curated.Is(err, cpu.InvalidOpcode) {
//		...
//	}
//
// The Has() function works similarly but searches the entire chain of
// wrapped curated errors, not just the outermost.
package curated
