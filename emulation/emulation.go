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

// Package emulation defines the types that describe the condition of the
// emulated machine at the coarsest level: whether it is running, waiting for
// a keypress, paused by the user, or stopped dead by an execution fault.
//
// The types are kept in this package, rather than in the hardware package,
// so that the GUI and playmode packages can refer to them without importing
// the hardware itself.
package emulation

// State describes the condition of the emulated machine.
type State int

// List of possible emulation states.
//
// Running is the initial state. AwaitingKey is entered by the "wait for
// keypress" instruction and left automatically on the first frame a key is
// observed pressed. Faulted is terminal until the machine is reset. Paused
// is toggled by the user and is the only state that can return to Running
// without a reset.
const (
	Running State = iota
	AwaitingKey
	Paused
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	case Paused:
		return "paused"
	case Faulted:
		return "guru meditation"
	}
	panic("unknown emulation state")
}

// Fault describes the reason the machine entered the Faulted state.
type Fault int

// List of possible fault reasons. FaultNone is the value outside of the
// Faulted state.
//
// FaultStack covers both overflow and underflow of the call stack. The
// original hardware never checked the stack pointer; overrunning it is
// treated here as an unrecoverable programming error in the running ROM.
const (
	FaultNone Fault = iota
	FaultOutOfBounds
	FaultInvalidOpcode
	FaultStack
)

func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultOutOfBounds:
		return "PC out of bounds"
	case FaultInvalidOpcode:
		return "invalid opcode"
	case FaultStack:
		return "call stack fault"
	}
	panic("unknown fault reason")
}
