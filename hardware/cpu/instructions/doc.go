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

// Package instructions defines the table of instruction definitions for the
// 8080. There is one Definition per opcode, including the undocumented
// opcodes, so a fetched opcode can always be used directly as an index into
// the table returned by GetDefinitions().
//
// The package records what each opcode is. How each instruction is performed
// is defined by the cpu package.
package instructions
