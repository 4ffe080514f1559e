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

package diag

import (
	"io"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
)

// CP/M entry points used by the diagnostic ROMs.
const (
	warmBootVector = 0x0000
	bdosVector     = 0x0005
	loadOrigin     = 0x0100
)

// ports used by the stubs injected over the CP/M entry points.
const (
	completionPort = 0x00
	consolePort    = 0x01
)

// BDOS function numbers recognised by the console stub.
const (
	bdosConsoleOutput = 0x02
	bdosPrintString   = 0x09
)

// Diag runs a CP/M diagnostic program, the likes of TST8080, CPUTEST and the
// 8080 exerciser, in a minimal recreation of the environment those programs
// expect: a load address of 0x0100, a BDOS console at address 0x0005 and a
// warm boot vector at address 0x0000.
type Diag struct {
	Machine *hardware.Intel8080

	// number of instructions executed and machine states consumed over all
	// calls to Run()
	Instructions uint64
	States       uint64

	output io.Writer
	done   bool
}

// NewDiag creates a machine with the diagnostic program loaded at 0x0100.
// Console output from the program is written to the output argument as the
// program runs.
func NewDiag(images [][]byte, output io.Writer) (*Diag, error) {
	mch, err := hardware.NewIntel8080(images, loadOrigin)
	if err != nil {
		return nil, err
	}

	dg := &Diag{
		Machine: mch,
		output:  output,
	}

	// a jump to the warm boot vector means the program is finished. the
	// stub signals that through the completion port and halts in case the
	// host keeps stepping
	mch.Mem.Write(warmBootVector, 0xd3) // OUT
	mch.Mem.Write(warmBootVector+1, completionPort)
	mch.Mem.Write(warmBootVector+2, 0x76) // HLT

	// the BDOS stub hands the call to the console port and returns to the
	// program
	mch.Mem.Write(bdosVector, 0xd3) // OUT
	mch.Mem.Write(bdosVector+1, consolePort)
	mch.Mem.Write(bdosVector+2, 0xc9) // RET

	mch.Ports.AttachOutput(completionPort, func(_ uint8) {
		dg.done = true
	})
	mch.Ports.AttachOutput(consolePort, func(_ uint8) {
		dg.console()
	})

	return dg, nil
}

// console performs the BDOS call selected by the C register.
func (dg *Diag) console() {
	mc := dg.Machine.CPU

	switch mc.C.Value() {
	case bdosConsoleOutput:
		dg.write([]byte{mc.E.Value()})

	case bdosPrintString:
		// string addressed by DE, terminated by a dollar sign
		addr := mc.DE.Value()
		var s []byte
		for {
			c := dg.Machine.Mem.Read(addr)
			if c == '$' {
				break
			}
			s = append(s, c)
			addr++
		}
		dg.write(s)

	default:
		logger.Logf("diag", "unsupported BDOS function %#02x", mc.C.Value())
	}
}

func (dg *Diag) write(s []byte) {
	if dg.output == nil {
		return
	}
	_, _ = dg.output.Write(s)
}

// Done returns true once the program has jumped through the warm boot
// vector.
func (dg *Diag) Done() bool {
	return dg.done
}

// Run the program until it finishes or until the given number of
// instructions has been executed. A limit of zero means no limit, which is
// dangerous with a misbehaving program.
//
// A program that halts without reaching the warm boot vector is treated as
// finished. The diagnostic ROMs do not do that but a hand-rolled test
// program might.
func (dg *Diag) Run(limit uint64) error {
	for !dg.done {
		res, err := dg.Machine.Step()
		if err != nil {
			if curated.Is(err, curated.Halted) {
				return nil
			}
			return err
		}

		dg.Instructions++
		dg.States += uint64(res.States)

		if limit > 0 && dg.Instructions >= limit && !dg.done {
			return curated.Errorf(curated.LimitReached, limit)
		}
	}
	return nil
}
