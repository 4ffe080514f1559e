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

package registers

import (
	"fmt"
)

// Register16 is a 16 bit register, used for the program counter and the
// stack pointer. All arithmetic wraps around the 64k address space.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 creates a new 16 bit register with an initial value and a
// name.
func NewRegister16(val uint16, label string) *Register16 {
	return &Register16{
		value: val,
		label: label,
	}
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register16) Value() uint16 {
	return r.value
}

// Label returns the name the register was created with.
func (r Register16) Label() string {
	return r.label
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add value to register, wrapping around the address space.
func (r *Register16) Add(val uint16) {
	r.value += val
}

// Subtract value from register, wrapping around the address space.
func (r *Register16) Subtract(val uint16) {
	r.value -= val
}
