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
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}
	if sr.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into the packed byte that PUSH
// PSW places on the stack. Bit 1 is always set and bits 3 and 5 are always
// clear, which is how the real chip behaves.
func (sr StatusRegister) Value() uint8 {
	v := uint8(0x02)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue sets the flags from a packed byte, as popped by POP PSW. The
// constant bits of the byte are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

// SetResult sets the sign, zero and parity flags from an 8 bit result. Every
// arithmetic and logical instruction sets these three the same way. The
// carry flags vary by instruction and are set by the CPU directly.
func (sr *StatusRegister) SetResult(val uint8) {
	sr.Sign = val&0x80 == 0x80
	sr.Zero = val == 0
	sr.Parity = Parity(val)
}

// Parity returns true if the value has an even number of set bits, which is
// the sense of the 8080's parity flag.
func Parity(val uint8) bool {
	val ^= val >> 4
	val ^= val >> 2
	val ^= val >> 1
	return val&0x01 == 0x00
}
