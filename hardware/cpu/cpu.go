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

// Package cpu implements the instruction decoder and executor of the
// emulated machine.
//
// Instructions are 16 bits wide, big-endian, and are decoded from the high
// nibble into one of sixteen families. Operand fields follow the usual
// naming for this architecture: x and y are register numbers taken from the
// second and third nibbles; kk is the low byte; nnn is the low 12 bits; n is
// the low nibble.
//
// The V registers are 8 bits wide. VF is a normal register slot that
// doubles as the flag output for the arithmetic, shift and draw
// instructions. Those instructions unconditionally overwrite VF as a side
// effect; they never read-and-combine it. Each site that writes the flag is
// commented.
//
// The "wait for keypress" instruction does not block. It flags the CPU as
// awaiting a key and execution is suspended by the machine until
// ResolveAwait() observes a pressed key. See the hardware package for the
// state machine that drives this.
package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
)

// Error patterns for the execution faults the CPU can raise. All of them
// are unrecoverable as far as the running program is concerned.
const (
	OutOfBounds    = "cpu: PC out of bounds (%#04x)"
	InvalidOpcode  = "cpu: invalid opcode (%#04x)"
	StackOverflow  = "cpu: call stack overflow (PC %#04x)"
	StackUnderflow = "cpu: call stack underflow (PC %#04x)"
)

// NumRegisters is the number of general purpose V registers.
const NumRegisters = 16

// StackDepth is the capacity of the call stack.
const StackDepth = 16

// VF is the register number of the flag register.
const VF = 0xf

// ResetPC is the value of the program counter after reset.
const ResetPC = memory.OriginROM

// CPU implements the instruction executor. All fields describing machine
// state are exported; they are read freely by tests and by status
// reporting. Mutation outside of this package should be limited to the
// Reset() function and test setup.
type CPU struct {
	V     [NumRegisters]uint8
	I     uint16
	PC    uint16
	Stack [StackDepth]uint16
	SP    uint8

	mem  *memory.Memory
	vid  *video.Video
	keys *input.Keypad
	tmr  *timer.Timers
	rnd  *random.Random

	// key-wait state. while awaiting is true the decoder is suspended and
	// the PC still points at the Fx0A instruction
	awaiting      bool
	awaitRegister int
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// supplied components are the buses the executor reads and writes during
// instruction execution.
func NewCPU(mem *memory.Memory, vid *video.Video, keys *input.Keypad, tmr *timer.Timers, rnd *random.Random) *CPU {
	mc := &CPU{
		mem:  mem,
		vid:  vid,
		keys: keys,
		tmr:  tmr,
		rnd:  rnd,
	}
	mc.Reset()
	return mc
}

// Reset the CPU to its power-on state. Memory, display and timers are not
// touched; resetting the whole machine is the hardware package's job.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = ResetPC
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.awaiting = false
	mc.awaitRegister = 0
}

// Awaiting returns true if the CPU is waiting for a keypress and the
// register number that will receive the key value.
func (mc *CPU) Awaiting() (int, bool) {
	return mc.awaitRegister, mc.awaiting
}

// ResolveAwait scans the keypad for the key-wait instruction. If any key is
// pressed the lowest-valued one is written to the waiting register, the PC
// moves past the Fx0A instruction and the wait is over.
//
// Returns true if the wait was satisfied. Calling ResolveAwait when the CPU
// is not awaiting a key is a no-op.
func (mc *CPU) ResolveAwait() bool {
	if !mc.awaiting {
		return false
	}

	key, ok := mc.keys.FirstPressed()
	if !ok {
		return false
	}

	mc.V[mc.awaitRegister] = key
	mc.PC += 2
	mc.awaiting = false

	return true
}

// ExecuteInstruction decodes and executes the instruction at the current
// PC. A nil return means the instruction fully applied and the PC has moved
// on (or has been set by a jump). A non-nil return is one of the curated
// fault patterns declared in this package; machine state at that point is
// exactly as it was before the instruction, except for the partial state
// documented by each fault.
//
// ExecuteInstruction must not be called while the CPU is awaiting a key.
// The decode is suspended in that condition and the call is a no-op.
func (mc *CPU) ExecuteInstruction() error {
	if mc.awaiting {
		return nil
	}

	// both opcode bytes must be readable. a PC at the very last byte of
	// memory is as much out of bounds as one past the end
	if int(mc.PC)+1 >= memory.Size {
		return curated.Errorf(OutOfBounds, mc.PC)
	}

	hi := mc.mem.Read(mc.PC)
	kk := mc.mem.Read(mc.PC + 1)

	opcode := uint16(hi)<<8 | uint16(kk)
	x := int(hi & 0x0f)
	y := int(kk >> 4)
	n := kk & 0x0f
	nnn := opcode & 0x0fff

	switch hi >> 4 {
	case 0x0:
		switch opcode {
		case 0x00e0: // CLS
			mc.vid.Clear()

		case 0x00ee: // RET
			if mc.SP == 0 {
				return curated.Errorf(StackUnderflow, mc.PC)
			}
			mc.SP--
			mc.PC = mc.Stack[mc.SP]
			// the popped address is that of the CALL instruction itself.
			// the PC advance below steps over it to the instruction after
			// the call

		default:
			return curated.Errorf(InvalidOpcode, opcode)
		}

	case 0x1: // JP nnn
		mc.PC = nnn
		return nil

	case 0x2: // CALL nnn
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow, mc.PC)
		}
		mc.Stack[mc.SP] = mc.PC
		mc.SP++
		mc.PC = nnn
		return nil

	case 0x3: // SE Vx, kk
		if mc.V[x] == kk {
			mc.PC += 2
		}

	case 0x4: // SNE Vx, kk
		if mc.V[x] != kk {
			mc.PC += 2
		}

	case 0x5: // SE Vx, Vy
		if n != 0 {
			return curated.Errorf(InvalidOpcode, opcode)
		}
		if mc.V[x] == mc.V[y] {
			mc.PC += 2
		}

	case 0x6: // LD Vx, kk
		mc.V[x] = kk

	case 0x7: // ADD Vx, kk (no flag side effect)
		mc.V[x] += kk

	case 0x8:
		if err := mc.executeArithmetic(opcode, x, y); err != nil {
			return err
		}

	case 0x9: // SNE Vx, Vy
		if n != 0 {
			return curated.Errorf(InvalidOpcode, opcode)
		}
		if mc.V[x] != mc.V[y] {
			mc.PC += 2
		}

	case 0xa: // LD I, nnn
		mc.I = nnn

	case 0xb: // JP V0, nnn
		// the sum can leave the address space. the bounds check at the top
		// of the next cycle reports it
		mc.PC = nnn + uint16(mc.V[0])
		return nil

	case 0xc: // RND Vx, kk
		mc.V[x] = mc.rnd.Byte() & kk

	case 0xd: // DRW Vx, Vy, n
		sprite := make([]uint8, n)
		for row := range sprite {
			sprite[row] = mc.mem.Read(mc.I + uint16(row))
		}
		// VF is the collision flag. unconditionally overwritten
		mc.V[VF] = 0
		if mc.vid.DrawSprite(mc.V[x], mc.V[y], sprite) {
			mc.V[VF] = 1
		}

	case 0xe:
		switch kk {
		case 0x9e: // SKP Vx
			if mc.keys.IsPressed(int(mc.V[x])) {
				mc.PC += 2
			}

		case 0xa1: // SKNP Vx
			if !mc.keys.IsPressed(int(mc.V[x])) {
				mc.PC += 2
			}

		default:
			return curated.Errorf(InvalidOpcode, opcode)
		}

	case 0xf:
		if err := mc.executeMisc(opcode, kk, x); err != nil {
			return err
		}
		if mc.awaiting {
			// Fx0A leaves the PC on the instruction until a key arrives
			return nil
		}
	}

	mc.PC += 2

	return nil
}

// executeArithmetic handles the 8xy_ family. The PC advance is left to the
// caller.
func (mc *CPU) executeArithmetic(opcode uint16, x, y int) error {
	switch opcode & 0x000f {
	case 0x0: // LD Vx, Vy
		mc.V[x] = mc.V[y]

	case 0x1: // OR Vx, Vy
		mc.V[x] |= mc.V[y]

	case 0x2: // AND Vx, Vy
		mc.V[x] &= mc.V[y]

	case 0x3: // XOR Vx, Vy
		mc.V[x] ^= mc.V[y]

	case 0x4: // ADD Vx, Vy
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(sum)
		// VF is the carry flag. unconditionally overwritten, even when x
		// is VF itself
		mc.V[VF] = 0
		if sum > 0xff {
			mc.V[VF] = 1
		}

	case 0x5: // SUB Vx, Vy
		borrow := mc.V[y] > mc.V[x]
		mc.V[x] -= mc.V[y]
		// VF is the NOT-borrow flag. unconditionally overwritten
		mc.V[VF] = 1
		if borrow {
			mc.V[VF] = 0
		}

	case 0x6: // SHR Vx
		// this machine shifts Vx in place, ignoring Vy. early-spec
		// convention; some other interpreters shift Vy into Vx
		mc.V[VF] = mc.V[x] & 0x01 // VF is the shifted-out bit
		mc.V[x] >>= 1

	case 0x7: // SUBN Vx, Vy
		borrow := mc.V[x] > mc.V[y]
		mc.V[x] = mc.V[y] - mc.V[x]
		// VF is the NOT-borrow flag. unconditionally overwritten
		mc.V[VF] = 1
		if borrow {
			mc.V[VF] = 0
		}

	case 0xe: // SHL Vx
		mc.V[VF] = mc.V[x] >> 7 // VF is the shifted-out bit
		mc.V[x] <<= 1

	default:
		return curated.Errorf(InvalidOpcode, opcode)
	}

	return nil
}

// executeMisc handles the Fx__ family. The PC advance is left to the
// caller.
func (mc *CPU) executeMisc(opcode uint16, kk uint8, x int) error {
	switch kk {
	case 0x07: // LD Vx, DT
		mc.V[x] = mc.tmr.Delay

	case 0x0a: // LD Vx, K
		mc.awaiting = true
		mc.awaitRegister = x

	case 0x15: // LD DT, Vx
		mc.tmr.Delay = mc.V[x]

	case 0x18: // LD ST, Vx
		mc.tmr.Sound = mc.V[x]

	case 0x1e: // ADD I, Vx (no overflow flag)
		mc.I += uint16(mc.V[x])

	case 0x29: // LD F, Vx
		mc.I = memory.GlyphAddress(mc.V[x])

	case 0x33: // LD B, Vx
		mc.mem.Write(mc.I, mc.V[x]/100)
		mc.mem.Write(mc.I+1, mc.V[x]/10%10)
		mc.mem.Write(mc.I+2, mc.V[x]%10)

	case 0x55: // LD [I], Vx
		for j := 0; j <= x; j++ {
			mc.mem.Write(mc.I+uint16(j), mc.V[j])
		}
		mc.I += uint16(x) + 1

	case 0x65: // LD Vx, [I]
		for j := 0; j <= x; j++ {
			mc.V[j] = mc.mem.Read(mc.I + uint16(j))
		}
		mc.I += uint16(x) + 1

	default:
		return curated.Errorf(InvalidOpcode, opcode)
	}

	return nil
}

// String implements the Stringer interface. A one-line summary of the
// register file in the style of a machine monitor.
func (mc *CPU) String() string {
	s := fmt.Sprintf("PC=%#04x I=%#04x SP=%d", mc.PC, mc.I, mc.SP)
	for i, v := range mc.V {
		s = fmt.Sprintf("%s V%X=%#02x", s, i, v)
	}
	return s
}
