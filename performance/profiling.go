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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gopher8080/curated"
)

// RunProfiler runs the supplied function, optionally with the CPU profiler
// engaged. A heap profile is written once the function is done. Profile
// filenames are built from the tag argument.
func RunProfiler(enabled bool, tag string, run func() error) error {
	if !enabled {
		return run()
	}

	cf, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer cf.Close()

	if err := pprof.StartCPUProfile(cf); err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	if err := run(); err != nil {
		return err
	}

	mf, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer mf.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(mf); err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	return nil
}
