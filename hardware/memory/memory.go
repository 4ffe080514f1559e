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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
)

// AddressSpace is the flat 64k memory map of the 8080. There is no mapping
// hardware, no mirroring and no access protection. Every address reads and
// writes.
type AddressSpace struct {
	data [0x10000]uint8
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type.
func NewAddressSpace() *AddressSpace {
	return &AddressSpace{}
}

// Read implements the bus.CPUBus interface.
func (mem *AddressSpace) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the bus.CPUBus interface.
func (mem *AddressSpace) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// ReadWord reads a little-endian word. A read at 0xffff takes its high byte
// from 0x0000, matching the address wraparound of the real chip.
func (mem *AddressSpace) ReadWord(address uint16) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian word, wrapping around the top of the
// address space when necessary.
func (mem *AddressSpace) WriteWord(address uint16, data uint16) {
	mem.data[address] = uint8(data)
	mem.data[address+1] = uint8(data >> 8)
}

// Load copies the supplied images into memory, the first image at origin and
// each subsequent image immediately after its predecessor. The rest of memory
// is left as it was.
func (mem *AddressSpace) Load(images [][]byte, origin uint16) error {
	addr := int(origin)
	for i, d := range images {
		if addr+len(d) > len(mem.data) {
			return curated.Errorf(curated.AddressSpaceOverflow, fmt.Sprintf("image %d", i+1), len(d), addr)
		}
		copy(mem.data[addr:], d)
		addr += len(d)
	}
	return nil
}
