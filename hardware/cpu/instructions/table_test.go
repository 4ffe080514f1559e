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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/test"
)

func TestTableIsTotal(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	for i, defn := range defs {
		if defn == nil {
			t.Fatalf("opcode %#02x has no definition", i)
		}
		test.ExpectEquality(t, defn.OpCode, uint8(i), defn.Mnemonic)
		test.ExpectSuccess(t, defn.Bytes >= 1 && defn.Bytes <= 3, defn.Mnemonic)
		test.ExpectSuccess(t, defn.Cycles >= 4 && defn.Cycles <= 18, defn.Mnemonic)
	}
}

func TestTableEntries(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0x00].Mnemonic, "NOP")
	test.ExpectEquality(t, defs[0x41].Mnemonic, "MOV B,C")
	test.ExpectEquality(t, defs[0x41].Cycles, 5)
	test.ExpectEquality(t, defs[0x46].Mnemonic, "MOV B,M")
	test.ExpectEquality(t, defs[0x46].Cycles, 7)
	test.ExpectEquality(t, defs[0x76].Mnemonic, "HLT")
	test.ExpectEquality(t, defs[0x86].Mnemonic, "ADD M")
	test.ExpectEquality(t, defs[0x86].Cycles, 7)
	test.ExpectEquality(t, defs[0xc3].Mnemonic, "JMP")
	test.ExpectEquality(t, defs[0xc3].Bytes, 3)
	test.ExpectEquality(t, defs[0xcd].Cycles, 17)
	test.ExpectEquality(t, defs[0xe3].Cycles, 18)
	test.ExpectEquality(t, defs[0xf1].Mnemonic, "POP PSW")
	test.ExpectEquality(t, defs[0xff].Mnemonic, "RST 7")
}

func TestConditionalCycles(t *testing.T) {
	defs := instructions.GetDefinitions()

	// conditional returns and calls cost more when the condition passes.
	// conditional jumps cost the same either way
	test.ExpectEquality(t, defs[0xc0].Cycles, 5)
	test.ExpectEquality(t, defs[0xc0].CyclesBranch, 11)
	test.ExpectEquality(t, defs[0xc4].Cycles, 11)
	test.ExpectEquality(t, defs[0xc4].CyclesBranch, 17)
	test.ExpectEquality(t, defs[0xc2].Cycles, 10)
	test.ExpectEquality(t, defs[0xc2].CyclesBranch, 10)

	test.ExpectSuccess(t, defs[0xc2].IsConditional())
	test.ExpectFailure(t, defs[0xc3].IsConditional())

	// condition decode
	test.ExpectEquality(t, defs[0xc2].RegisterCondition(), instructions.NotZero)
	test.ExpectEquality(t, defs[0xca].RegisterCondition(), instructions.Zero)
	test.ExpectEquality(t, defs[0xd2].RegisterCondition(), instructions.NotCarry)
	test.ExpectEquality(t, defs[0xfa].RegisterCondition(), instructions.Minus)
}

func TestUndocumentedOpcodes(t *testing.T) {
	defs := instructions.GetDefinitions()

	for _, opcode := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		test.ExpectEquality(t, defs[opcode].Mnemonic, "NOP")
	}
	test.ExpectEquality(t, defs[0xcb].Mnemonic, "JMP")
	test.ExpectEquality(t, defs[0xd9].Mnemonic, "RET")
	for _, opcode := range []uint8{0xdd, 0xed, 0xfd} {
		test.ExpectEquality(t, defs[opcode].Mnemonic, "CALL")
	}
}
