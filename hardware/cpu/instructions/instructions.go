// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Register         // operand register encoded in the opcode
	RegisterPair     // operand pair encoded in the opcode
	RegisterIndirect // memory operand addressed by a pair, usually HL
	Immediate        // 8 bit operand follows the opcode
	ImmediateWord    // 16 bit operand follows the opcode
	Direct           // 16 bit address follows the opcode
)

// Operator describes what an instruction does, independently of where its
// operands come from. ADD B and ADI for instance share an Operator and
// differ only in AddressingMode.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Mov
	Lxi
	Lda
	Sta
	Lhld
	Shld
	Ldax
	Stax
	Xchg

	Add
	Adc
	Sub
	Sbb
	Inr
	Dcr
	Inx
	Dcx
	Dad
	Daa
	Cma

	And
	Xor
	Or
	Compare

	RotateLeft
	RotateRight
	RotateLeftCarry
	RotateRightCarry

	Stc
	Cmc

	Jmp
	Call
	Ret
	Rst
	Pchl

	Push
	Pop
	Xthl
	Sphl

	In
	Out
	Ei
	Di
	Hlt
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	Modify

	// flow instructions have a variable effect on the program counter.
	Flow

	Subroutine
	Interrupt
	IO
)

// Condition is the branch condition encoded in bits 3 to 5 of conditional
// jump, call and return opcodes.
type Condition int

// List of conditions, in opcode encoding order.
const (
	NotZero Condition = iota
	Zero
	NotCarry
	Carry
	ParityOdd
	ParityEven
	Plus
	Minus
)

// Definition defines each opcode in the instruction set; one per opcode, so
// instructions with an encoded register operand appear several times with
// different Mnemonic fields.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Bytes    int

	// the number of machine states the instruction consumes. for conditional
	// instructions Cycles is the cost when the condition fails and
	// CyclesBranch the cost when it succeeds. CyclesBranch is zero for
	// unconditional instructions
	Cycles       int
	CyclesBranch int

	AddressingMode AddressingMode
	Operator       Operator
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.CyclesBranch != 0 {
		return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.CyclesBranch)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the instruction tests a condition before
// acting.
func (defn Definition) IsConditional() bool {
	return defn.CyclesBranch != 0
}

// RegisterCondition returns the condition encoded in the opcode. Meaningful
// only for conditional instructions.
func (defn Definition) RegisterCondition() Condition {
	return Condition((defn.OpCode >> 3) & 0x07)
}
