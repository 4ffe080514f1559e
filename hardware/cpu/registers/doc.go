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

// Package registers implements the registers of the 8080: the seven 8 bit
// working registers, the 16 bit program counter and stack pointer, and the
// status register.
//
// The arithmetic methods of the Register type implement the ALU. They return
// the carry states the status register needs but do not modify the status
// register. Folding those results into the flags is the CPU's job, because
// which flags an operation affects depends on the instruction and not on the
// arithmetic.
//
// The Pair type is a view over two Registers, used for the BC, DE and HL
// pairings. It has no storage of its own.
package registers
