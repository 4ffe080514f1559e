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

// names of the 8 bit register operands, in opcode encoding order. index 6 is
// the memory operand addressed by HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// names of the register pair operands, in opcode encoding order.
var pairNames = [4]string{"B", "D", "H", "SP"}

// as pairNames but for PUSH and POP, where encoding 3 means the PSW.
var pushPairNames = [4]string{"B", "D", "H", "PSW"}

// names of the branch conditions, in opcode encoding order.
var conditionNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// GetDefinitions returns the definition for every one of the 256 opcodes.
// Decoding is total. The undocumented opcodes behave exactly like the
// documented instruction they shadow (0x08 is a NOP, 0xcb a JMP, 0xd9 a RET
// and 0xdd, 0xed, 0xfd are CALLs) and their definitions differ only by
// OpCode. This is how the real chip decodes them.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	add := func(opcode uint8, mnemonic string, bytes int, cycles int, cyclesBranch int,
		mode AddressingMode, operator Operator, effect EffectCategory) {
		defs[opcode] = &Definition{
			OpCode:         opcode,
			Mnemonic:       mnemonic,
			Bytes:          bytes,
			Cycles:         cycles,
			CyclesBranch:   cyclesBranch,
			AddressingMode: mode,
			Operator:       operator,
			Effect:         effect,
		}
	}

	// NOP and the seven undocumented opcodes that shadow it
	for _, opcode := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		add(opcode, "NOP", 1, 4, 0, Implied, Nop, Read)
	}

	// register pair instructions
	for p := uint8(0); p < 4; p++ {
		base := p << 4
		add(base|0x01, fmt.Sprintf("LXI %s", pairNames[p]), 3, 10, 0, ImmediateWord, Lxi, Read)
		add(base|0x03, fmt.Sprintf("INX %s", pairNames[p]), 1, 5, 0, RegisterPair, Inx, Modify)
		add(base|0x09, fmt.Sprintf("DAD %s", pairNames[p]), 1, 10, 0, RegisterPair, Dad, Modify)
		add(base|0x0b, fmt.Sprintf("DCX %s", pairNames[p]), 1, 5, 0, RegisterPair, Dcx, Modify)
	}

	// indirect accumulator load/store through BC or DE
	add(0x02, "STAX B", 1, 7, 0, RegisterIndirect, Stax, Write)
	add(0x12, "STAX D", 1, 7, 0, RegisterIndirect, Stax, Write)
	add(0x0a, "LDAX B", 1, 7, 0, RegisterIndirect, Ldax, Read)
	add(0x1a, "LDAX D", 1, 7, 0, RegisterIndirect, Ldax, Read)

	// INR, DCR and MVI for each register operand. the memory operand costs
	// more because of the extra bus access
	for r := uint8(0); r < 8; r++ {
		base := r << 3
		mode := Register
		inrCycles := 5
		mviCycles := 7
		mviEffect := Read
		if r == 6 {
			mode = RegisterIndirect
			inrCycles = 10
			mviCycles = 10
			mviEffect = Write
		}
		add(base|0x04, fmt.Sprintf("INR %s", registerNames[r]), 1, inrCycles, 0, mode, Inr, Modify)
		add(base|0x05, fmt.Sprintf("DCR %s", registerNames[r]), 1, inrCycles, 0, mode, Dcr, Modify)
		add(base|0x06, fmt.Sprintf("MVI %s", registerNames[r]), 2, mviCycles, 0, Immediate, Mov, mviEffect)
	}

	// rotates and the other accumulator/flag instructions in the 0x00 to
	// 0x3f block
	add(0x07, "RLC", 1, 4, 0, Implied, RotateLeft, Modify)
	add(0x0f, "RRC", 1, 4, 0, Implied, RotateRight, Modify)
	add(0x17, "RAL", 1, 4, 0, Implied, RotateLeftCarry, Modify)
	add(0x1f, "RAR", 1, 4, 0, Implied, RotateRightCarry, Modify)
	add(0x27, "DAA", 1, 4, 0, Implied, Daa, Modify)
	add(0x2f, "CMA", 1, 4, 0, Implied, Cma, Modify)
	add(0x37, "STC", 1, 4, 0, Implied, Stc, Modify)
	add(0x3f, "CMC", 1, 4, 0, Implied, Cmc, Modify)

	// direct addressing loads and stores
	add(0x22, "SHLD", 3, 16, 0, Direct, Shld, Write)
	add(0x2a, "LHLD", 3, 16, 0, Direct, Lhld, Read)
	add(0x32, "STA", 3, 13, 0, Direct, Sta, Write)
	add(0x3a, "LDA", 3, 13, 0, Direct, Lda, Read)

	// the MOV block. 0x76 would be MOV M,M, a move from memory to the same
	// memory. the chip repurposes that encoding as HLT
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			mode := Register
			cycles := 5
			effect := Read
			if src == 6 || dst == 6 {
				mode = RegisterIndirect
				cycles = 7
				if dst == 6 {
					effect = Write
				}
			}
			add(opcode, fmt.Sprintf("MOV %s,%s", registerNames[dst], registerNames[src]), 1, cycles, 0, mode, Mov, effect)
		}
	}
	add(0x76, "HLT", 1, 7, 0, Implied, Hlt, Interrupt)

	// the ALU block. all of these take their second operand from the
	// register encoded in the opcode and leave the result in the accumulator
	aluOperators := [8]Operator{Add, Adc, Sub, Sbb, And, Xor, Or, Compare}
	aluMnemonics := [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 | op<<3 | src
			mode := Register
			cycles := 4
			if src == 6 {
				mode = RegisterIndirect
				cycles = 7
			}
			add(opcode, fmt.Sprintf("%s %s", aluMnemonics[op], registerNames[src]), 1, cycles, 0, mode, aluOperators[op], Modify)
		}
	}

	// the immediate forms of the ALU block
	aluImmediates := [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}
	for op := uint8(0); op < 8; op++ {
		add(0xc6|op<<3, aluImmediates[op], 2, 7, 0, Immediate, aluOperators[op], Modify)
	}

	// conditional return, jump and call for each condition. a conditional
	// return that succeeds costs more than one that fails. a conditional
	// jump costs the same either way because the address bytes are fetched
	// regardless
	for c := uint8(0); c < 8; c++ {
		base := c << 3
		add(base|0xc0, fmt.Sprintf("R%s", conditionNames[c]), 1, 5, 11, Implied, Ret, Subroutine)
		add(base|0xc2, fmt.Sprintf("J%s", conditionNames[c]), 3, 10, 10, Direct, Jmp, Flow)
		add(base|0xc4, fmt.Sprintf("C%s", conditionNames[c]), 3, 11, 17, Direct, Call, Subroutine)
	}

	// stack instructions
	for p := uint8(0); p < 4; p++ {
		base := p << 4
		add(base|0xc1, fmt.Sprintf("POP %s", pushPairNames[p]), 1, 10, 0, RegisterPair, Pop, Read)
		add(base|0xc5, fmt.Sprintf("PUSH %s", pushPairNames[p]), 1, 11, 0, RegisterPair, Push, Write)
	}

	// restarts
	for n := uint8(0); n < 8; n++ {
		add(n<<3|0xc7, fmt.Sprintf("RST %d", n), 1, 11, 0, Implied, Rst, Subroutine)
	}

	// unconditional flow, including the undocumented aliases
	add(0xc3, "JMP", 3, 10, 0, Direct, Jmp, Flow)
	add(0xcb, "JMP", 3, 10, 0, Direct, Jmp, Flow)
	add(0xc9, "RET", 1, 10, 0, Implied, Ret, Subroutine)
	add(0xd9, "RET", 1, 10, 0, Implied, Ret, Subroutine)
	for _, opcode := range []uint8{0xcd, 0xdd, 0xed, 0xfd} {
		add(opcode, "CALL", 3, 17, 0, Direct, Call, Subroutine)
	}
	add(0xe9, "PCHL", 1, 5, 0, Implied, Pchl, Flow)

	// IO
	add(0xd3, "OUT", 2, 10, 0, Immediate, Out, IO)
	add(0xdb, "IN", 2, 10, 0, Immediate, In, IO)

	// the remaining register and stack exchanges
	add(0xe3, "XTHL", 1, 18, 0, Implied, Xthl, Modify)
	add(0xeb, "XCHG", 1, 4, 0, Implied, Xchg, Modify)
	add(0xf9, "SPHL", 1, 5, 0, Implied, Sphl, Modify)

	// interrupt system
	add(0xf3, "DI", 1, 4, 0, Implied, Di, Interrupt)
	add(0xfb, "EI", 1, 4, 0, Implied, Ei, Interrupt)

	return defs
}
