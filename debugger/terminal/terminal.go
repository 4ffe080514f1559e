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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are found in the sub-packages.
package terminal

// Sentinel error returned by TermRead() when the user has interrupted input.
const UserInterrupt = "user interrupt"

// Style is used to hint at what the output content is. Implementations are
// free to ignore the hint.
type Style int

// List of terminal styles.
const (
	StyleOutput Style = iota
	StyleInstruction
	StyleFeedback
	StyleHelp
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the line
	// terminator.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()
}
