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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8080/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8080/diag"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	r, err := md.Parse()
	switch r {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// load the ROM files named on the command line into a new machine.
func load(md *modalflag.Modes, origin uint16) (*hardware.Intel8080, error) {
	files := md.RemainingArgs()
	if len(files) == 0 {
		return nil, curated.Errorf("no ROM files specified")
	}

	ld := romloader.NewLoader(files...)
	images, err := ld.Load()
	if err != nil {
		return nil, err
	}

	return hardware.NewIntel8080(images, origin)
}

func emulate(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", 0, "address to load the program at")
	cpm := md.AddBool("cpm", false, "run the program in the CP/M diagnostic harness")
	limit := md.AddUint64("limit", 0, "stop after this many instructions (0 for no limit)")
	log := md.AddBool("log", false, "echo log entries to stderr as they happen")

	r, err := md.Parse()
	if r != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *cpm {
		files := md.RemainingArgs()
		if len(files) == 0 {
			return curated.Errorf("no ROM files specified")
		}

		ld := romloader.NewLoader(files...)
		images, err := ld.Load()
		if err != nil {
			return err
		}

		dg, err := diag.NewDiag(images, os.Stdout)
		if err != nil {
			return err
		}
		return dg.Run(*limit)
	}

	mch, err := load(md, uint16(*origin))
	if err != nil {
		return err
	}

	var count uint64
	for {
		if _, err := mch.Step(); err != nil {
			if curated.Is(err, curated.Halted) {
				return nil
			}
			return err
		}
		count++
		if *limit > 0 && count >= *limit {
			return nil
		}
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", 0, "address to load the program at")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log entries to stderr as they happen")

	r, err := md.Parse()
	if r != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	mch, err := load(md, uint16(*origin))
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	return debugger.NewDebugger(mch).Start(term)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddUint("origin", 0, "address to load the program at")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddBool("profile", false, "write CPU and memory profiles")
	stats := md.AddBool("statsview", false, "run the statistics server")

	r, err := md.Parse()
	if r != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build (compile with the statsview tag)")
		}
		statsview.Launch(os.Stdout)
	}

	mch, err := load(md, uint16(*origin))
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, mch, *duration, *profile)
}
