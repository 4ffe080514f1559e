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
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware"
)

// ClockHz is the clock rate of the original chip, 2MHz. The emulation speed
// is reported as a multiple of this.
const ClockHz = 2000000

// checking the timer channel is relatively expensive so it is only checked
// every performanceBrake instructions.
const performanceBrake = 10000

// Check the performance of the emulator using the supplied machine. The
// machine runs freely for the specified duration, or until it halts, and
// the emulation speed is written to output. A CPU and memory profile is
// written when the profile argument is true.
func Check(output io.Writer, mch *hardware.Intel8080, duration time.Duration, profile bool) error {
	var instructions uint64
	var states uint64
	var elapsed time.Duration

	runner := func() error {
		timerChan := make(chan bool)
		time.AfterFunc(duration, func() {
			timerChan <- true
		})

		brake := 0
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			res, err := mch.Step()
			if err != nil {
				if curated.Is(err, curated.Halted) {
					return nil
				}
				return err
			}

			instructions++
			states += uint64(res.States)

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return nil
				default:
				}
			}
		}
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	seconds := elapsed.Seconds()
	if seconds == 0 {
		return curated.Errorf("performance: measurement period too short")
	}

	statesPerSecond := float64(states) / seconds
	fmt.Fprintf(output, "%.0f instructions/sec, %.0f states/sec (%.1fx a real 8080)\n",
		float64(instructions)/seconds,
		statesPerSecond,
		statesPerSecond/ClockHz)

	return nil
}
