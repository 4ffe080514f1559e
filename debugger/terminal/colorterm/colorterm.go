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

// Package colorterm implements the Terminal interface for the gopher8080
// debugger. It supports color output, command history and line editing.
package colorterm

import (
	"os"

	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the debugger terminal with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	commandHistory []string
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}
