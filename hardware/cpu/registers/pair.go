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

// Pair presents two 8 bit registers as a single 16 bit value, the way the
// 8080 pairs B with C, D with E and H with L. A Pair is a view, not a copy.
// Loading a Pair changes the underlying registers and vice versa.
type Pair struct {
	label string
	hi    *Register
	lo    *Register
}

// NewPair creates a view over an existing pair of registers. The first
// register is the high byte of the pair.
func NewPair(hi *Register, lo *Register, label string) Pair {
	return Pair{
		label: label,
		hi:    hi,
		lo:    lo,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Value())
}

// Value returns the combined value of the two registers.
func (p Pair) Value() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Label returns the name the pair was created with.
func (p Pair) Label() string {
	return p.label
}

// Load value into the pair, high byte into the first register.
func (p Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the pair as a single 16 bit value. INX affects no flags so
// nothing is returned.
func (p Pair) Increment() {
	p.Load(p.Value() + 1)
}

// Decrement the pair as a single 16 bit value. DCX affects no flags so
// nothing is returned.
func (p Pair) Decrement() {
	p.Load(p.Value() - 1)
}
