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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware"
)

func BenchmarkCPU(b *testing.B) {
	// a busy loop. INR A then an unconditional jump back to the start
	prog := []byte{0x3c, 0xc3, 0x00, 0x00}

	mch, err := hardware.NewIntel8080([][]byte{prog}, 0x0000)
	if err != nil {
		b.Fatalf("error preparing machine: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mch.Step(); err != nil {
			b.Fatalf("error during execution: %v", err)
		}
	}
}
