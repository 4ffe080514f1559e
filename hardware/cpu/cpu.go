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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/bus"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// CPU implements the 8080 found in many machines of the mid to late 1970s.
type CPU struct {
	PC *registers.Register16
	SP *registers.Register16

	A *registers.Register
	B *registers.Register
	C *registers.Register
	D *registers.Register
	E *registers.Register
	H *registers.Register
	L *registers.Register

	// views over the working registers. loading a pair changes the
	// underlying registers
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	Status registers.StatusRegister

	// a HLT instruction has been executed and no interrupt has arrived since
	Halted bool

	// the state of the INTE flip flop, controlled by the EI and DI
	// instructions
	InterruptsEnabled bool

	// last result. the address and instruction definition fields are
	// updated during execution and so are valid even if the result is not
	// yet Final
	LastResult execution.Result

	mem   bus.CPUBus
	ports bus.PortBus

	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The port bus may be nil for machines with no IO devices, in which case IN
// instructions read zero and OUT instructions do nothing.
func NewCPU(mem bus.CPUBus, ports bus.PortBus) *CPU {
	mc := &CPU{
		mem:          mem,
		ports:        ports,
		instructions: instructions.GetDefinitions(),
	}

	mc.PC = registers.NewRegister16(0, "PC")
	mc.SP = registers.NewRegister16(0, "SP")
	mc.A = registers.NewRegister(0, "A")
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.BC = registers.NewPair(mc.B, mc.C, "BC")
	mc.DE = registers.NewPair(mc.D, mc.E, "DE")
	mc.HL = registers.NewPair(mc.H, mc.L, "HL")
	mc.Status = registers.NewStatusRegister()

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s [%s]",
		mc.PC, mc.SP,
		mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.Status.String(), mc.flagsNote())
}

func (mc *CPU) flagsNote() string {
	if mc.Halted {
		return "halted"
	}
	if mc.InterruptsEnabled {
		return "inte"
	}
	return "----"
}

// Reset state of the CPU to the power on state. The program counter is set
// to zero, which is where the real chip starts. Machines that place their
// program elsewhere should load the program counter after the reset.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Status.Reset()
	mc.Halted = false
	mc.InterruptsEnabled = false
	mc.LastResult.Reset()
}

// fetch a byte from the program counter address, advancing the program
// counter and the byte count of the current result.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Value())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16 reads a little-endian word, wrapping around the top of the address
// space.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// write16 writes a little-endian word, wrapping around the top of the
// address space.
func (mc *CPU) write16(address uint16, data uint16) {
	mc.mem.Write(address, uint8(data))
	mc.mem.Write(address+1, uint8(data>>8))
}

// push a word onto the stack, high byte first.
func (mc *CPU) push(data uint16) {
	mc.SP.Subtract(1)
	mc.mem.Write(mc.SP.Value(), uint8(data>>8))
	mc.SP.Subtract(1)
	mc.mem.Write(mc.SP.Value(), uint8(data))
}

// pop a word from the stack.
func (mc *CPU) pop() uint16 {
	lo := mc.mem.Read(mc.SP.Value())
	mc.SP.Add(1)
	hi := mc.mem.Read(mc.SP.Value())
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo)
}

// register returns the 8 bit register for an operand encoding, or nil for
// encoding 6, the memory operand.
func (mc *CPU) register(code uint8) *registers.Register {
	switch code & 0x07 {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 7:
		return mc.A
	}
	return nil
}

// loadOperand returns the value of an 8 bit register operand, reading
// through HL for the memory operand.
func (mc *CPU) loadOperand(code uint8) uint8 {
	if code&0x07 == 6 {
		return mc.mem.Read(mc.HL.Value())
	}
	return mc.register(code).Value()
}

// storeOperand sets the value of an 8 bit register operand, writing through
// HL for the memory operand.
func (mc *CPU) storeOperand(code uint8, data uint8) {
	if code&0x07 == 6 {
		mc.mem.Write(mc.HL.Value(), data)
		return
	}
	mc.register(code).Load(data)
}

// pairValue returns the value of a register pair operand. encoding 3 is the
// stack pointer.
func (mc *CPU) pairValue(code uint8) uint16 {
	switch code & 0x03 {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		return mc.HL.Value()
	}
	return mc.SP.Value()
}

// loadPair sets the value of a register pair operand. encoding 3 is the
// stack pointer.
func (mc *CPU) loadPair(code uint8, data uint16) {
	switch code & 0x03 {
	case 0:
		mc.BC.Load(data)
	case 1:
		mc.DE.Load(data)
	case 2:
		mc.HL.Load(data)
	case 3:
		mc.SP.Load(data)
	}
}

// testCondition returns the state of the flag named by a branch condition.
func (mc *CPU) testCondition(cond instructions.Condition) bool {
	switch cond {
	case instructions.NotZero:
		return !mc.Status.Zero
	case instructions.Zero:
		return mc.Status.Zero
	case instructions.NotCarry:
		return !mc.Status.Carry
	case instructions.Carry:
		return mc.Status.Carry
	case instructions.ParityOdd:
		return !mc.Status.Parity
	case instructions.ParityEven:
		return mc.Status.Parity
	case instructions.Plus:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}

// ExecuteInstruction decodes and wholly executes the instruction at the
// current program counter address. Decoding cannot fail, every one of the
// 256 opcodes names an instruction, so the only error condition is executing
// into a halted CPU.
//
// On return, LastResult describes what happened. For a HLT instruction the
// function succeeds and the Halted flag is set. Subsequent calls return an
// error satisfying curated.Is(err, curated.Halted) until an interrupt is
// serviced or the CPU is reset.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return curated.Errorf(curated.Halted)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Value()

	opcode := mc.fetch()
	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn

	// fetch operand bytes, low byte first
	var data uint16
	switch defn.Bytes {
	case 2:
		data = uint16(mc.fetch())
	case 3:
		lo := mc.fetch()
		hi := mc.fetch()
		data = uint16(hi)<<8 | uint16(lo)
	}
	mc.LastResult.InstructionData = data

	src := opcode & 0x07
	dst := (opcode >> 3) & 0x07
	pair := (opcode >> 4) & 0x03

	// value of the second ALU operand. reading it here keeps the arithmetic
	// cases below free of addressing concerns
	var operand uint8
	if defn.Effect == instructions.Modify {
		if defn.AddressingMode == instructions.Immediate {
			operand = uint8(data)
		} else if defn.AddressingMode == instructions.Register || defn.AddressingMode == instructions.RegisterIndirect {
			operand = mc.loadOperand(src)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing, takes time

	case instructions.Mov:
		if defn.AddressingMode == instructions.Immediate {
			mc.storeOperand(dst, uint8(data))
		} else {
			mc.storeOperand(dst, mc.loadOperand(src))
		}

	case instructions.Lxi:
		mc.loadPair(pair, data)

	case instructions.Lda:
		mc.A.Load(mc.mem.Read(data))

	case instructions.Sta:
		mc.mem.Write(data, mc.A.Value())

	case instructions.Lhld:
		mc.HL.Load(mc.read16(data))

	case instructions.Shld:
		mc.write16(data, mc.HL.Value())

	case instructions.Ldax:
		mc.A.Load(mc.mem.Read(mc.pairValue(pair)))

	case instructions.Stax:
		mc.mem.Write(mc.pairValue(pair), mc.A.Value())

	case instructions.Xchg:
		de := mc.DE.Value()
		mc.DE.Load(mc.HL.Value())
		mc.HL.Load(de)

	case instructions.Add:
		carry, auxCarry := mc.A.Add(operand, false)
		mc.Status.Carry = carry
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(mc.A.Value())

	case instructions.Adc:
		carry, auxCarry := mc.A.Add(operand, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(mc.A.Value())

	case instructions.Sub:
		borrow, auxCarry := mc.A.Subtract(operand, false)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(mc.A.Value())

	case instructions.Sbb:
		borrow, auxCarry := mc.A.Subtract(operand, mc.Status.Carry)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(mc.A.Value())

	case instructions.Compare:
		// a subtraction that discards the result and keeps the flags
		scratch := registers.NewRegister(mc.A.Value(), "A")
		borrow, auxCarry := scratch.Subtract(operand, false)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(scratch.Value())

	case instructions.And:
		mc.Status.AuxCarry = mc.A.AND(operand)
		mc.Status.Carry = false
		mc.Status.SetResult(mc.A.Value())

	case instructions.Xor:
		mc.A.XOR(operand)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.Status.SetResult(mc.A.Value())

	case instructions.Or:
		mc.A.OR(operand)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.Status.SetResult(mc.A.Value())

	case instructions.Inr:
		// carry is unaffected
		if dst == 6 {
			v := mc.mem.Read(mc.HL.Value()) + 1
			mc.mem.Write(mc.HL.Value(), v)
			mc.Status.AuxCarry = v&0x0f == 0x00
			mc.Status.SetResult(v)
		} else {
			r := mc.register(dst)
			mc.Status.AuxCarry = r.Increment()
			mc.Status.SetResult(r.Value())
		}

	case instructions.Dcr:
		// carry is unaffected
		if dst == 6 {
			v := mc.mem.Read(mc.HL.Value()) - 1
			mc.mem.Write(mc.HL.Value(), v)
			mc.Status.AuxCarry = v&0x0f != 0x0f
			mc.Status.SetResult(v)
		} else {
			r := mc.register(dst)
			mc.Status.AuxCarry = r.Decrement()
			mc.Status.SetResult(r.Value())
		}

	case instructions.Inx:
		mc.loadPair(pair, mc.pairValue(pair)+1)

	case instructions.Dcx:
		mc.loadPair(pair, mc.pairValue(pair)-1)

	case instructions.Dad:
		// only the carry flag is affected
		sum := uint32(mc.HL.Value()) + uint32(mc.pairValue(pair))
		mc.HL.Load(uint16(sum))
		mc.Status.Carry = sum > 0xffff

	case instructions.Daa:
		carry, auxCarry := mc.A.DecimalAdjust(mc.Status.Carry, mc.Status.AuxCarry)
		mc.Status.Carry = carry
		mc.Status.AuxCarry = auxCarry
		mc.Status.SetResult(mc.A.Value())

	case instructions.Cma:
		// no flags are affected
		mc.A.Complement()

	case instructions.RotateLeft:
		mc.Status.Carry = mc.A.RotateLeft()

	case instructions.RotateRight:
		mc.Status.Carry = mc.A.RotateRight()

	case instructions.RotateLeftCarry:
		mc.Status.Carry = mc.A.RotateLeftThroughCarry(mc.Status.Carry)

	case instructions.RotateRightCarry:
		mc.Status.Carry = mc.A.RotateRightThroughCarry(mc.Status.Carry)

	case instructions.Stc:
		mc.Status.Carry = true

	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.Jmp:
		if defn.IsConditional() {
			mc.LastResult.BranchSuccess = mc.testCondition(defn.RegisterCondition())
			if mc.LastResult.BranchSuccess {
				mc.PC.Load(data)
			}
		} else {
			mc.PC.Load(data)
		}

	case instructions.Call:
		if defn.IsConditional() {
			mc.LastResult.BranchSuccess = mc.testCondition(defn.RegisterCondition())
			if mc.LastResult.BranchSuccess {
				mc.push(mc.PC.Value())
				mc.PC.Load(data)
			}
		} else {
			mc.push(mc.PC.Value())
			mc.PC.Load(data)
		}

	case instructions.Ret:
		if defn.IsConditional() {
			mc.LastResult.BranchSuccess = mc.testCondition(defn.RegisterCondition())
			if mc.LastResult.BranchSuccess {
				mc.PC.Load(mc.pop())
			}
		} else {
			mc.PC.Load(mc.pop())
		}

	case instructions.Rst:
		mc.push(mc.PC.Value())
		mc.PC.Load(uint16(dst) << 3)

	case instructions.Pchl:
		mc.PC.Load(mc.HL.Value())

	case instructions.Push:
		if pair == 3 {
			mc.push(uint16(mc.A.Value())<<8 | uint16(mc.Status.Value()))
		} else {
			mc.push(mc.pairValue(pair))
		}

	case instructions.Pop:
		if pair == 3 {
			v := mc.pop()
			mc.A.Load(uint8(v >> 8))
			mc.Status.FromValue(uint8(v))
		} else {
			mc.loadPair(pair, mc.pop())
		}

	case instructions.Xthl:
		v := mc.read16(mc.SP.Value())
		mc.write16(mc.SP.Value(), mc.HL.Value())
		mc.HL.Load(v)

	case instructions.Sphl:
		mc.SP.Load(mc.HL.Value())

	case instructions.In:
		if mc.ports != nil {
			mc.A.Load(mc.ports.PortRead(uint8(data)))
		} else {
			mc.A.Load(0)
		}

	case instructions.Out:
		if mc.ports != nil {
			mc.ports.PortWrite(uint8(data), mc.A.Value())
		}

	case instructions.Ei:
		mc.InterruptsEnabled = true

	case instructions.Di:
		mc.InterruptsEnabled = false

	case instructions.Hlt:
		mc.Halted = true
	}

	mc.LastResult.States = defn.Cycles
	if defn.IsConditional() && mc.LastResult.BranchSuccess {
		mc.LastResult.States = defn.CyclesBranch
	}
	mc.LastResult.Final = true

	return nil
}

// ServiceInterrupt acknowledges an interrupt request by executing an RST
// through the numbered vector, 0 to 7. A halted CPU resumes. The interrupt
// system is disabled until the handler executes EI.
//
// If interrupts are not enabled the request is refused with an error
// satisfying curated.Is(err, curated.InterruptNotEnabled), which is how the
// real chip's INTE pin gates the INT line.
func (mc *CPU) ServiceInterrupt(vector uint8) error {
	if !mc.InterruptsEnabled {
		return curated.Errorf(curated.InterruptNotEnabled)
	}

	mc.Halted = false
	mc.InterruptsEnabled = false

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Value()
	mc.LastResult.Defn = mc.instructions[0xc7|(vector&0x07)<<3]
	mc.LastResult.ByteCount = 1
	mc.LastResult.States = mc.LastResult.Defn.Cycles
	mc.LastResult.Final = true

	mc.push(mc.PC.Value())
	mc.PC.Load(uint16(vector&0x07) << 3)

	return nil
}
