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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Result records the execution details of the most recent instruction. The
// CPU builds the Result as the instruction proceeds, so a Result is only
// complete and checkable once Final is true.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the operand bytes that followed the opcode, low byte first when there
	// are two. zero for one byte instructions
	InstructionData uint16

	// the number of bytes fetched so far, including the opcode
	ByteCount int

	// the number of machine states consumed by the instruction
	States int

	// whether a conditional instruction's condition passed
	BranchSuccess bool

	// whether the instruction has completed
	Final bool
}

// Reset prepares the Result for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.States = 0
	r.BranchSuccess = false
	r.Final = false
}

// String returns the disassembly of the executed instruction.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	switch r.Defn.Bytes {
	case 2:
		return fmt.Sprintf("%04x %s %#02x", r.Address, r.Defn.Mnemonic, uint8(r.InstructionData))
	case 3:
		return fmt.Sprintf("%04x %s %#04x", r.Address, r.Defn.Mnemonic, r.InstructionData)
	}

	return fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
}
