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

// Package curated is a helper package for the plain Go language error type.
// Curated errors contain the pattern used to create them, meaning the error
// can be identified by that pattern later, without string comparison of the
// formatted message and without a proliferation of sentinel values.
//
// Patterns that are shared between packages are listed in this package.
// Whether an error is of a particular category can be checked with the Is()
// function, or anywhere in a chain of wrapped curated errors with Has().
//
// For example, the Halted error returned by the CPU is expected during
// normal operation and a host driving the machine in a loop will want to
// respond to it rather than fail:
//
//	_, err := i8080.Step()
//	if curated.Is(err, curated.Halted) {
//		// normal end of program
//	}
package curated
