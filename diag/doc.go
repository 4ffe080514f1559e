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

// Package diag runs the classic CP/M based diagnostic programs. These
// programs, TST8080.COM and its descendants, exercise the processor and
// report through the CP/M console, printing a message such as "CPU IS
// OPERATIONAL" on success. The package recreates just enough of CP/M for
// them: the 0x0100 load address, the BDOS console functions and the warm
// boot vector.
//
// The ROMs themselves are not distributed with the emulator. Point the
// romloader package at a copy and pass the images to NewDiag.
package diag
