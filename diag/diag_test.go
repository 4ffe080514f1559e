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

package diag_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/diag"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/test"
)

// a hand-assembled program that prints "OK" through the BDOS string
// function and returns to CP/M through the warm boot vector.
var printProgram = []byte{
	0x31, 0x00, 0x24, // 0100 LXI SP,0x2400
	0x11, 0x0e, 0x01, // 0103 LXI D,0x010e
	0x0e, 0x09, // 0106 MVI C,9
	0xcd, 0x05, 0x00, // 0108 CALL 0x0005
	0xc3, 0x00, 0x00, // 010b JMP 0x0000
	'O', 'K', '$', // 010e
}

func TestPrintString(t *testing.T) {
	tw := &test.CompareWriter{}

	dg, err := diag.NewDiag([][]byte{printProgram}, tw)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, dg.Run(100))
	test.ExpectSuccess(t, dg.Done())
	test.ExpectSuccess(t, tw.Compare("OK"))

	// LXI, LXI, MVI, CALL, the two stub instructions of the BDOS call (OUT
	// and RET), JMP and the final OUT of the warm boot stub
	test.ExpectEquality(t, dg.Instructions, uint64(8))
}

func TestCharacterOutput(t *testing.T) {
	// MVI E,'A' / MVI C,2 / CALL 5 / JMP 0
	program := []byte{
		0x31, 0x00, 0x24,
		0x1e, 'A',
		0x0e, 0x02,
		0xcd, 0x05, 0x00,
		0xc3, 0x00, 0x00,
	}

	tw := &test.CompareWriter{}
	dg, err := diag.NewDiag([][]byte{program}, tw)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, dg.Run(100))
	test.ExpectSuccess(t, tw.Compare("A"))
}

func TestInstructionLimit(t *testing.T) {
	// an endless loop: JMP 0x0100
	program := []byte{0xc3, 0x00, 0x01}

	dg, err := diag.NewDiag([][]byte{program}, nil)
	test.DemandSuccess(t, err)

	err = dg.Run(50)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.LimitReached))
	test.ExpectEquality(t, dg.Instructions, uint64(50))
}

// TestDiagnosticROM runs a real diagnostic program when one is present. Drop
// TST8080.COM into the testdata directory to enable it.
func TestDiagnosticROM(t *testing.T) {
	romFile := filepath.Join("testdata", "TST8080.COM")
	if _, err := os.Stat(romFile); err != nil {
		t.Skip("no diagnostic ROM present")
	}

	ld := romloader.NewLoader(romFile)
	images, err := ld.Load()
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	dg, err := diag.NewDiag(images, tw)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, dg.Run(100000000))
	if !strings.Contains(tw.String(), "CPU IS OPERATIONAL") {
		t.Errorf("diagnostic failed:\n%s", tw.String())
	}
}
