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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/test"
)

func TestStepping(t *testing.T) {
	// NOP / MVI A,5 / HLT
	mch, err := hardware.NewIntel8080([][]byte{{0x00, 0x3e, 0x05, 0x76}}, 0x0000)
	test.DemandSuccess(t, err)

	res, err := mch.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.States, 4)
	test.ExpectEquality(t, mch.CPU.PC.Value(), uint16(0x0001))

	res, err = mch.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.States, 7)
	test.ExpectEquality(t, mch.CPU.A.Value(), uint8(0x05))

	_, err = mch.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mch.CPU.Halted, true)

	// stepping a halted machine is an error
	_, err = mch.Step()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.Halted))
}

func TestLoadOrigin(t *testing.T) {
	// programs conventionally load at 0x0100 on CP/M machines
	mch, err := hardware.NewIntel8080([][]byte{{0x3e, 0xaa}}, 0x0100)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mch.CPU.PC.Value(), uint16(0x0100))
	test.ExpectEquality(t, mch.Mem.Read(0x0100), uint8(0x3e))

	_, err = mch.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mch.CPU.A.Value(), uint8(0xaa))
}

func TestReset(t *testing.T) {
	// MVI A,1 / STA 0x2000 / HLT
	mch, err := hardware.NewIntel8080([][]byte{{0x3e, 0x01, 0x32, 0x00, 0x20, 0x76}}, 0x0000)
	test.DemandSuccess(t, err)

	for i := 0; i < 3; i++ {
		_, err = mch.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, mch.Mem.Read(0x2000), uint8(0x01))
	test.ExpectEquality(t, mch.CPU.Halted, true)

	// reset clears memory outside the program images and restarts the
	// program
	test.DemandSuccess(t, mch.Reset())
	test.ExpectEquality(t, mch.Mem.Read(0x2000), uint8(0x00))
	test.ExpectEquality(t, mch.Mem.Read(0x0000), uint8(0x3e))
	test.ExpectEquality(t, mch.CPU.Halted, false)
	test.ExpectEquality(t, mch.CPU.PC.Value(), uint16(0x0000))
}

func TestOverflowingImage(t *testing.T) {
	_, err := hardware.NewIntel8080([][]byte{make([]byte, 0x200)}, 0xff00)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.AddressSpaceOverflow))
}

func TestInterruptResume(t *testing.T) {
	// the main program enables interrupts and halts. the RST 1 handler at
	// 0x0008 loads a marker value and halts again
	prog := make([]byte, 0x20)
	copy(prog[0x00:], []byte{0x31, 0x00, 0x24, 0xfb, 0x76}) // LXI SP / EI / HLT
	copy(prog[0x08:], []byte{0x3e, 0x99, 0x76})             // MVI A,0x99 / HLT

	mch, err := hardware.NewIntel8080([][]byte{prog}, 0x0000)
	test.DemandSuccess(t, err)

	for i := 0; i < 3; i++ {
		_, err = mch.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, mch.CPU.Halted, true)

	test.DemandSuccess(t, mch.Interrupt(1))
	test.ExpectEquality(t, mch.CPU.PC.Value(), uint16(0x0008))

	for i := 0; i < 2; i++ {
		_, err = mch.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, mch.CPU.A.Value(), uint8(0x99))
	test.ExpectEquality(t, mch.CPU.Halted, true)
}
