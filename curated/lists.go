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

package curated

// List of error patterns that are tested for by more than one package. Errors
// local to a single package are declared in that package.
const (
	// machine is in the halted state and no interrupt has been serviced.
	// the normal end-of-program condition for most test ROMs.
	Halted = "cpu: halted"

	// an interrupt was requested while the interrupt system is disabled.
	InterruptNotEnabled = "cpu: interrupt not enabled"

	// the sum of image sizes plus the load origin exceeds the address space.
	AddressSpaceOverflow = "memory: %s (%d bytes) is too large to load at address %#04x"

	// a ROM image file could not be read.
	ImageUnreadable = "romloader: %v"

	// limit set by the caller of diag.Run() exceeded
	LimitReached = "diag: limit of %d instructions reached"

	// user initiated quit from the debugger.
	UserQuit = "user quit"
)
