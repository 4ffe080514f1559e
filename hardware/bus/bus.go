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

// Package bus defines the memory and port bus concepts. The CPU addresses
// memory and IO devices through these interfaces and need not care what is on
// the other side.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every address is serviced. The 8080 has no concept of a bus fault so
// there is no error path.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// CPUBus16 defines the 16 bit operations for the memory system. Words are
// stored little-endian. Implementations must wrap around the top of the
// address space.
type CPUBus16 interface {
	ReadWord(address uint16) uint16
	WriteWord(address uint16, data uint16)
}

// PortBus defines the operations for the IO port space, accessed from the CPU
// with the IN and OUT instructions. There are 256 ports in each direction.
type PortBus interface {
	PortRead(port uint8) uint8
	PortWrite(port uint8, data uint8)
}
