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

// Package easyterm is a wrapper for the termios interface, switching the
// terminal between canonical and raw modes as the debugger needs.
package easyterm

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the base type for terminals that need control over terminal
// modes.
type EasyTerm struct {
	input  *os.File
	output io.Writer

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the terminal, noting the current terminal attributes so they
// can be restored by CleanUp().
func (et *EasyTerm) Initialise(input *os.File, output io.Writer) error {
	et.input = input
	et.output = output

	if err := termios.Tcgetattr(input.Fd(), &et.canAttr); err != nil {
		return err
	}

	et.rawAttr = et.canAttr
	et.rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	et.rawAttr.Cc[unix.VMIN] = 1
	et.rawAttr.Cc[unix.VTIME] = 0

	return nil
}

// CleanUp returns the terminal to its original state.
func (et *EasyTerm) CleanUp() {
	_ = et.CanonicalMode()
}

// RawMode puts the terminal into raw mode: no echo and no line buffering.
func (et *EasyTerm) RawMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSETS, &et.rawAttr)
}

// CanonicalMode puts the terminal into the mode it was in at
// initialisation.
func (et *EasyTerm) CanonicalMode() error {
	return termios.Tcsetattr(et.input.Fd(), termios.TCSETS, &et.canAttr)
}

// TermPrint writes the string to the terminal output with no decoration.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.Write([]byte(s))
}

// Input returns the file the terminal reads from.
func (et *EasyTerm) Input() *os.File {
	return et.input
}
