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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test a value and mark the test as having failed if the
// value is not what is expected. The equivalent Demand functions halt the
// test on failure, which is useful when a subsequent part of the test would
// crash without the demanded condition.
//
// ExpectSuccess and ExpectFailure work with generic conditions. The
// documentation for the expect() function describes the currently supported
// types. Note that the nil type is considered a success. This is because of
// how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
package test
