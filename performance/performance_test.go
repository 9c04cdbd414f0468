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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pnokernels/environment"
	"github.com/jetsetilly/pnokernels/performance"
	"github.com/jetsetilly/pnokernels/preferences"
	"github.com/jetsetilly/pnokernels/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(300, 10, 30)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, _ = performance.CalcFPS(300, 0, 30)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, trace")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("all")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func newEnvironment(t *testing.T, useARM bool) *environment.Environment {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.ARM.Enabled.Set(useARM))
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)
	return env
}

func TestFrames(t *testing.T) {
	t.Chdir(t.TempDir())

	h1, err := performance.Frames(newEnvironment(t, false), 20)
	test.DemandSuccess(t, err)
	h2, err := performance.Frames(newEnvironment(t, true), 20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h1, h2)

	h3, err := performance.Frames(newEnvironment(t, false), 21)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, h1, h3)
}

func TestCheck(t *testing.T) {
	t.Chdir(t.TempDir())

	lead := performance.LeadTime
	performance.LeadTime = 0
	defer func() { performance.LeadTime = lead }()

	var b strings.Builder
	err := performance.Check(&b, performance.ProfileMem, newEnvironment(t, true), "100ms")
	test.DemandSuccess(t, err)

	out := b.String()
	test.ExpectSuccess(t, strings.Contains(out, "fps"))
	test.ExpectSuccess(t, strings.Contains(out, "offloaded kernels, wide landscape mode"))
	test.ExpectSuccess(t, strings.Contains(out, "digest: "))
	test.ExpectSuccess(t, strings.Contains(out, "blit: "))

	err = performance.Check(&b, performance.ProfileNone, newEnvironment(t, false), "soon")
	test.ExpectFailure(t, err)
}
