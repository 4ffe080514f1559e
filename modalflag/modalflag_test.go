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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.com"})

	r, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.GetArg(0), "file.com")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"debug", "file.com"})
	md.AddSubModes("RUN", "DEBUG")

	r, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	// the mode argument has been consumed. the next layer sees the file
	md.NewMode()
	r, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, md.GetArg(0), "file.com")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"file.com"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// no mode argument was consumed
	md.NewMode()
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "file.com")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-limit", "100", "file.com"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	limit := md.AddUint64("limit", 0, "instruction limit")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *limit, uint64(100))
	test.ExpectEquality(t, md.GetArg(0), "file.com")
}
