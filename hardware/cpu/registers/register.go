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

// Register is an 8 bit register. The arithmetic methods return the carry
// states that the status register needs but never touch the status register
// themselves. That is the CPU's job.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with an initial value and a name.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register /as a uint16/. This is
// useful when you want to use the register value in an address context, for
// example as the port number of an IN or OUT instruction.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Label returns the name the register was created with.
func (r Register) Label() string {
	return r.label
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and auxiliary carry states. The
// auxiliary carry is the carry out of bit 3, recovered by comparing bit 4 of
// the operands with bit 4 of the result.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, auxCarry bool) {
	v := uint16(r.value) + uint16(val)
	if carry {
		v++
	}

	res := uint8(v)
	auxCarry = (r.value^val^res)&0x10 == 0x10
	r.value = res

	return v > 0xff, auxCarry
}

// Subtract value from register. Returns borrow and auxiliary carry states.
//
// The 8080 subtracts by adding the two's complement, so the auxiliary carry
// is the carry out of bit 3 of that addition. This is why SUB A,A leaves the
// auxiliary carry set: the low nibble addition is A+(^A)+1 which always
// carries.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, auxCarry bool) {
	v := uint16(r.value) - uint16(val)
	if borrow {
		v--
	}

	res := uint8(v)
	auxCarry = (r.value^val^res)&0x10 == 0x00
	r.value = res

	// underflow of the uint16 arithmetic means a borrow. checking bit 8
	// alone is not enough, subtracting 0xff with the borrow set wraps all
	// the way to 0xff00
	return v > 0xff, auxCarry
}

// AND value with register. Returns the auxiliary carry state: the 8080's ANA
// instruction sets the flag from the OR of bit 3 of the two operands.
func (r *Register) AND(val uint8) (auxCarry bool) {
	auxCarry = (r.value|val)&0x08 == 0x08
	r.value &= val
	return auxCarry
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// Complement inverts every bit of the register.
func (r *Register) Complement() {
	r.value = ^r.value
}

// Increment the register. Returns the auxiliary carry state. The carry flag
// is unaffected by INR so there is no carry return.
func (r *Register) Increment() (auxCarry bool) {
	r.value++
	return r.value&0x0f == 0x00
}

// Decrement the register. Returns the auxiliary carry state. The carry flag
// is unaffected by DCR so there is no carry return.
func (r *Register) Decrement() (auxCarry bool) {
	r.value--
	return r.value&0x0f != 0x0f
}

// RotateLeft rotates the register one bit to the left, bit 7 moving to bit 0.
// Returns the bit that was rotated out, which is the new state of the carry
// flag.
func (r *Register) RotateLeft() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RotateRight rotates the register one bit to the right, bit 0 moving to bit
// 7. Returns the bit that was rotated out.
func (r *Register) RotateRight() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RotateLeftThroughCarry rotates the register one bit to the left through the
// carry flag. Returns the new state of the carry flag.
func (r *Register) RotateLeftThroughCarry(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RotateRightThroughCarry rotates the register one bit to the right through
// the carry flag. Returns the new state of the carry flag.
func (r *Register) RotateRightThroughCarry(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
