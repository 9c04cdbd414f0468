// This file is part of pnokernels.
//
// pnokernels is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pnokernels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pnokernels.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pnokernels/digest"
	"github.com/jetsetilly/pnokernels/environment"
	"github.com/jetsetilly/pnokernels/player"
)

// sentinal error returned by the frame loop.
var timedOut = errors.New("performance timed out")

// the frame rate of the scene on the original hardware
const targetFPS = 30.0

// LeadTime is the period at the start of Check() that is excluded from the
// measurement to allow the frame rate to settle down.
var LeadTime = 2 * time.Second

// Check the performance of the kernels in the environment.
//
// The scene will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, env *environment.Environment, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	pl, err := player.NewPlayer(env, 320, 200)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	dig := digest.NewFrames()
	startFrame := 0

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = pl.FrameNum()
			default:
			}

			if err := pl.Step(); err != nil {
				return err
			}

			scr := pl.Screen()
			dig.AddFrame(scr, scr.Bounds())
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := pl.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), targetFPS)

	path := "software"
	if env.Kernel.Offloaded() {
		path = "offloaded"
	}

	mode, _ := pl.Compositor().Mode()

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%s kernels, %s mode\n", path, mode)
	fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	fmt.Fprint(output, env.Kernel.Stats())

	return nil
}

// Frames draws a fixed number of frames and returns the digest of the
// device screen. Unlike Check() the result does not depend on the speed of
// the machine.
func Frames(env *environment.Environment, n int) (string, error) {
	pl, err := player.NewPlayer(env, 320, 200)
	if err != nil {
		return "", fmt.Errorf("performance: %w", err)
	}

	dig := digest.NewFrames()
	for range n {
		if err := pl.Step(); err != nil {
			return "", fmt.Errorf("performance: %w", err)
		}
		scr := pl.Screen()
		dig.AddFrame(scr, scr.Bounds())
	}

	return dig.Hash(), nil
}
