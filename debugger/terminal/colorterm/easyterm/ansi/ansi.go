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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// ansi colour numbers.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Bold is the CSI sequence for bold text in the current colour.
const Bold = "\033[1m"

// ClearLine is the CSI sequence to erase the current line.
const ClearLine = "\033[2K"

// Pens is the table of colours to be used for text.
var Pens map[string]string

// DimPens is the table of faint colours to be used for text.
var DimPens map[string]string

func init() {
	colours := map[string]int{
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	}

	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	for name, col := range colours {
		Pens[name] = fmt.Sprintf("\033[0;3%dm", col)
		DimPens[name] = fmt.Sprintf("\033[2;3%dm", col)
	}
}
