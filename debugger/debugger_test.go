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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/test"
)

// scriptTerm feeds a prepared command script to the debugger and records
// everything printed back.
type scriptTerm struct {
	script []string
	output strings.Builder
}

func (tm *scriptTerm) Initialise() error {
	return nil
}

func (tm *scriptTerm) CleanUp() {
}

func (tm *scriptTerm) IsInteractive() bool {
	return false
}

func (tm *scriptTerm) TermRead(prompt string) (string, error) {
	if len(tm.script) == 0 {
		return "", io.EOF
	}
	s := tm.script[0]
	tm.script = tm.script[1:]
	return s, nil
}

func (tm *scriptTerm) TermPrintLine(style terminal.Style, s string) {
	tm.output.WriteString(s)
	tm.output.WriteString("\n")
}

func TestScriptedSession(t *testing.T) {
	// MVI A,0x55 / MVI B,0x13 / ADD B / HLT
	mch, err := hardware.NewIntel8080([][]byte{{0x3e, 0x55, 0x06, 0x13, 0x80, 0x76}}, 0x1000)
	test.DemandSuccess(t, err)

	term := &scriptTerm{
		script: []string{
			"STEP",
			"BREAK 0x1004",
			"RUN",
			"REGISTERS",
			"MEMORY 0x1000 8",
			"QUIT",
		},
	}

	dbg := debugger.NewDebugger(mch)
	test.DemandSuccess(t, dbg.Start(term))

	// STEP executed the first MVI
	test.ExpectEquality(t, mch.CPU.A.Value(), uint8(0x55))

	// RUN stopped at the breakpoint, before the ADD
	test.ExpectEquality(t, mch.CPU.PC.Value(), uint16(0x1004))
	test.ExpectEquality(t, mch.CPU.B.Value(), uint8(0x13))
	test.ExpectEquality(t, mch.CPU.Halted, false)

	test.ExpectSuccess(t, strings.Contains(term.output.String(), "break at 0x1004"))
	test.ExpectSuccess(t, strings.Contains(term.output.String(), "A=0x55"))
}

func TestUnknownCommand(t *testing.T) {
	mch, err := hardware.NewIntel8080([][]byte{{0x76}}, 0x0000)
	test.DemandSuccess(t, err)

	term := &scriptTerm{script: []string{"NONSENSE", "QUIT"}}

	dbg := debugger.NewDebugger(mch)
	test.DemandSuccess(t, dbg.Start(term))
	test.ExpectSuccess(t, strings.Contains(term.output.String(), "unrecognised command"))
}
