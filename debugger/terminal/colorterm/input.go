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

package colorterm

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface. The terminal is
// switched into raw mode for the duration of the read, giving us line
// editing and command history.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if err := ct.EasyTerm.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.EasyTerm.CanonicalMode()
	}()

	input := make([]byte, 0, 255)
	historyIdx := len(ct.commandHistory)

	redraw := func() {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.Bold)
		ct.EasyTerm.TermPrint(prompt)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
	}
	redraw()

	buf := make([]byte, 8)
	for {
		n, err := ct.EasyTerm.Input().Read(buf)
		if err != nil {
			return "", err
		}

		switch buf[0] {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn, '\n':
			ct.EasyTerm.TermPrint("\n")
			if len(input) > 0 {
				ct.commandHistory = append(ct.commandHistory, string(input))
			}
			return string(input), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}

		case easyterm.KeyEsc:
			if n >= 3 && buf[1] == easyterm.EscCursor {
				switch buf[2] {
				case easyterm.CursorUp:
					if historyIdx > 0 {
						historyIdx--
						input = append(input[:0], ct.commandHistory[historyIdx]...)
						redraw()
					}
				case easyterm.CursorDown:
					if historyIdx < len(ct.commandHistory)-1 {
						historyIdx++
						input = append(input[:0], ct.commandHistory[historyIdx]...)
						redraw()
					} else if historyIdx == len(ct.commandHistory)-1 {
						historyIdx++
						input = input[:0]
						redraw()
					}
				}
			}

		case easyterm.KeyTab:
			// no tab completion

		default:
			for i := 0; i < n; i++ {
				if buf[i] >= 32 && buf[i] < 127 {
					input = append(input, buf[i])
				}
			}
			redraw()
		}
	}
}
