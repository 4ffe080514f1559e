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

// Package debugger implements a terminal debugger for the 8080. It is
// deliberately small: step, run, breakpoints, register and memory
// inspection. The terminal implementations live in the terminal
// sub-packages.
package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/hardware"
)

// Debugger is the cut down, terminal oriented debugger for the emulated
// machine.
type Debugger struct {
	mch  *hardware.Intel8080
	term terminal.Terminal

	breakpoints map[uint16]bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(mch *hardware.Intel8080) *Debugger {
	return &Debugger{
		mch:         mch,
		breakpoints: make(map[uint16]bool),
	}
}

// Start the debugging session, reading commands from the terminal until the
// user quits.
func (dbg *Debugger) Start(term terminal.Terminal) error {
	if err := term.Initialise(); err != nil {
		return err
	}
	defer term.CleanUp()

	dbg.term = term

	for {
		prompt := fmt.Sprintf("[ %#04x ] >> ", dbg.mch.CPU.PC.Value())

		input, err := term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				return nil
			}
			return err
		}

		quit, err := dbg.parseCommand(input)
		if err != nil {
			term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return nil
		}
	}
}

func (dbg *Debugger) parseCommand(input string) (bool, error) {
	fields := strings.Fields(strings.ToUpper(input))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "STEP", "S":
		n := uint64(1)
		if len(fields) > 1 {
			v, err := strconv.ParseUint(fields[1], 0, 64)
			if err != nil {
				return false, curated.Errorf("debugger: not a count: %s", fields[1])
			}
			n = v
		}
		return false, dbg.step(n)

	case "RUN", "R":
		if len(fields) > 1 {
			addr, err := parseAddress(fields[1])
			if err != nil {
				return false, err
			}
			return false, dbg.runTo(addr)
		}
		return false, dbg.run()

	case "BREAK", "B":
		if len(fields) < 2 {
			for addr := range dbg.breakpoints {
				dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break on %#04x", addr))
			}
			return false, nil
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			return false, err
		}
		if dbg.breakpoints[addr] {
			delete(dbg.breakpoints, addr)
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("removed break on %#04x", addr))
		} else {
			dbg.breakpoints[addr] = true
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break on %#04x", addr))
		}
		return false, nil

	case "REGISTERS", "REG":
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.mch.CPU.String())
		return false, nil

	case "MEMORY", "M":
		if len(fields) < 2 {
			return false, curated.Errorf("debugger: memory command requires an address")
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			return false, err
		}
		length := uint16(64)
		if len(fields) > 2 {
			v, err := strconv.ParseUint(fields[2], 0, 16)
			if err != nil {
				return false, curated.Errorf("debugger: not a length: %s", fields[2])
			}
			length = uint16(v)
		}
		dbg.memoryDump(addr, length)
		return false, nil

	case "POKE":
		if len(fields) < 3 {
			return false, curated.Errorf("debugger: poke command requires an address and a value")
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			return false, err
		}
		v, err := strconv.ParseUint(fields[2], 0, 8)
		if err != nil {
			return false, curated.Errorf("debugger: not a byte value: %s", fields[2])
		}
		dbg.mch.Mem.Write(addr, uint8(v))
		return false, nil

	case "GRAPH":
		fn := "cpu.dot"
		if len(fields) > 1 {
			fn = strings.ToLower(fields[1])
		}
		return false, dbg.graph(fn)

	case "RESET":
		return false, dbg.mch.Reset()

	case "INTERRUPT", "INT":
		vector := uint8(0)
		if len(fields) > 1 {
			v, err := strconv.ParseUint(fields[1], 0, 3)
			if err != nil {
				return false, curated.Errorf("debugger: not an interrupt vector: %s", fields[1])
			}
			vector = uint8(v)
		}
		return false, dbg.mch.Interrupt(vector)

	case "HELP", "H":
		dbg.help()
		return false, nil

	case "QUIT", "Q":
		return true, nil
	}

	return false, curated.Errorf("debugger: unrecognised command: %s", fields[0])
}

// step the emulation by n instructions, printing each instruction as it
// completes.
func (dbg *Debugger) step(n uint64) error {
	for i := uint64(0); i < n; i++ {
		res, err := dbg.mch.Step()
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleInstruction, res.String())
	}
	dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.mch.CPU.String())
	return nil
}

// run until a breakpoint is met, the machine halts or an error occurs.
func (dbg *Debugger) run() error {
	for {
		res, err := dbg.mch.Step()
		if err != nil {
			if curated.Is(err, curated.Halted) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "halted")
				return nil
			}
			return err
		}
		if dbg.mch.CPU.Halted {
			dbg.term.TermPrintLine(terminal.StyleInstruction, res.String())
			dbg.term.TermPrintLine(terminal.StyleFeedback, "halted")
			return nil
		}
		if dbg.breakpoints[dbg.mch.CPU.PC.Value()] {
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("break at %#04x", dbg.mch.CPU.PC.Value()))
			return nil
		}
	}
}

// runTo sets a temporary breakpoint and runs to it.
func (dbg *Debugger) runTo(addr uint16) error {
	if dbg.breakpoints[addr] {
		return dbg.run()
	}
	dbg.breakpoints[addr] = true
	defer delete(dbg.breakpoints, addr)
	return dbg.run()
}

func (dbg *Debugger) memoryDump(addr uint16, length uint16) {
	const width = 16

	for length > 0 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x  ", addr))
		for i := 0; i < width && length > 0; i++ {
			s.WriteString(fmt.Sprintf("%02x ", dbg.mch.Mem.Read(addr)))
			addr++
			length--
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}

// graph writes a graphviz visualisation of the CPU state, using the memviz
// package.
func (dbg *Debugger) graph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.mch.CPU)

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", filename))
	return nil
}

func (dbg *Debugger) help() {
	for _, s := range []string{
		"STEP [n]          step one or n instructions",
		"RUN [addr]        run until breakpoint, halt or addr",
		"BREAK [addr]      toggle breakpoint at addr, or list breakpoints",
		"REGISTERS         show CPU state",
		"MEMORY addr [n]   dump n bytes of memory (default 64)",
		"POKE addr val     write a byte to memory",
		"INTERRUPT [n]     request an interrupt through vector n",
		"GRAPH [file]      write graphviz visualisation of the CPU",
		"RESET             reset the machine",
		"QUIT              leave the debugger",
	} {
		dbg.term.TermPrintLine(terminal.StyleHelp, s)
	}
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address: %s", s)
	}
	return uint16(v), nil
}
