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

// DecimalAdjust converts the register to packed BCD after a binary addition,
// implementing the DAA instruction. The carry and auxiliary carry arguments
// are the current flag states. Returns the new flag states.
//
// The correction is 0x06, 0x60 or 0x66 added to the register in one step.
// The returned auxiliary carry is the carry out of bit 3 of that addition.
// The carry flag can be set by DAA but never cleared.
func (r *Register) DecimalAdjust(carry bool, auxCarry bool) (rcarry bool, rauxCarry bool) {
	var correction uint8

	rcarry = carry

	lo := r.value & 0x0f
	hi := r.value >> 4

	if lo > 0x09 || auxCarry {
		correction += 0x06
	}
	if hi > 0x09 || carry || (hi == 0x09 && lo > 0x09) {
		correction += 0x60
		rcarry = true
	}

	v := r.value
	r.value += correction
	rauxCarry = (v^correction^r.value)&0x10 == 0x10

	return rcarry, rauxCarry
}
