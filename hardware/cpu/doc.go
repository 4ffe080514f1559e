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

// Package cpu implements the 8080 processor. Instructions execute whole, one
// call to ExecuteInstruction() per instruction, with the LastResult field
// recording the machine state cost of what just happened. The emulation is
// cycle-accurate at instruction granularity: the States field of the result
// is the exact number of machine states the real chip would have consumed,
// including the difference between taken and untaken conditional calls and
// returns.
//
// The CPU knows nothing about what is attached to it. Memory and IO are
// reached through the interfaces in the bus package.
package cpu
