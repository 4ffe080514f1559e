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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewAddressSpace()

	test.ExpectEquality(t, mem.Read(0x1234), uint8(0x00))
	mem.Write(0x1234, 0xab)
	test.ExpectEquality(t, mem.Read(0x1234), uint8(0xab))
}

func TestWordAccess(t *testing.T) {
	mem := memory.NewAddressSpace()

	mem.WriteWord(0x2000, 0xbeef)
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0xef))
	test.ExpectEquality(t, mem.Read(0x2001), uint8(0xbe))
	test.ExpectEquality(t, mem.ReadWord(0x2000), uint16(0xbeef))
}

func TestWordWraparound(t *testing.T) {
	mem := memory.NewAddressSpace()

	// word access at the top of memory wraps to address zero
	mem.WriteWord(0xffff, 0x1234)
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x12))
	test.ExpectEquality(t, mem.ReadWord(0xffff), uint16(0x1234))
}

func TestLoad(t *testing.T) {
	mem := memory.NewAddressSpace()

	err := mem.Load([][]byte{{0x01, 0x02}, {0x03}}, 0x0100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Read(0x0100), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0x0101), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0x0102), uint8(0x03))
}

func TestLoadOverflow(t *testing.T) {
	mem := memory.NewAddressSpace()

	err := mem.Load([][]byte{make([]byte, 0x100)}, 0xff80)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.AddressSpaceOverflow))

	// an image that exactly fills the remaining space is fine
	err = mem.Load([][]byte{make([]byte, 0x80)}, 0xff80)
	test.ExpectSuccess(t, err)
}
