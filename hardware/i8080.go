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

package hardware

import (
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
)

// Intel8080 is the main container for the emulated components of an 8080
// machine: the processor, 64k of memory and the IO ports.
type Intel8080 struct {
	CPU   *cpu.CPU
	Mem   *memory.AddressSpace
	Ports *ports.Ports

	// the address the program was loaded at, restored to the program
	// counter by Reset()
	origin uint16

	// the images given at construction, so Reset() can reload them
	images [][]byte
}

// NewIntel8080 creates a machine with the program images already in memory
// and the program counter pointing at the first of them.
func NewIntel8080(images [][]byte, origin uint16) (*Intel8080, error) {
	mch := &Intel8080{
		Mem:    memory.NewAddressSpace(),
		Ports:  ports.NewPorts(),
		origin: origin,
		images: images,
	}

	mch.CPU = cpu.NewCPU(mch.Mem, mch.Ports)

	if err := mch.Reset(); err != nil {
		return nil, err
	}

	return mch, nil
}

// Reset the machine to its initial state. Memory outside the program images
// is cleared and the program counter returns to the load origin.
func (mch *Intel8080) Reset() error {
	*mch.Mem = *memory.NewAddressSpace()
	if err := mch.Mem.Load(mch.images, mch.origin); err != nil {
		return err
	}

	mch.CPU.Reset()
	mch.CPU.PC.Load(mch.origin)

	return nil
}

// Step executes the next instruction, returning a copy of the execution
// result. A machine that has executed a HLT returns an error satisfying
// curated.Is(err, curated.Halted) until an interrupt arrives or the machine
// is reset.
func (mch *Intel8080) Step() (execution.Result, error) {
	if err := mch.CPU.ExecuteInstruction(); err != nil {
		return mch.CPU.LastResult, err
	}
	return mch.CPU.LastResult, nil
}

// Interrupt requests an interrupt through the numbered vector, 0 to 7.
func (mch *Intel8080) Interrupt(vector uint8) error {
	return mch.CPU.ServiceInterrupt(vector)
}
