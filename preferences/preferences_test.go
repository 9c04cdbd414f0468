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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/preferences"
	"github.com/jetsetilly/pnokernels/prefs"
	"github.com/jetsetilly/pnokernels/test"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.ARM.Enabled.Get().(bool))
	test.ExpectEquality(t, p.ARM.Model.String(), memorymodel.OS5)
	test.ExpectFailure(t, p.Screen.IsPortrait())

	w, h := p.Screen.ScreenSize()
	test.ExpectEquality(t, w, 480)
	test.ExpectEquality(t, h, 320)

	test.DemandSuccess(t, p.Screen.Orientation.Set("Portrait"))
	w, h = p.Screen.ScreenSize()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 480)
}

func TestValidation(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.ARM.Model.Set("Tungsten"))
	test.ExpectEquality(t, p.ARM.Model.String(), memorymodel.OS5)
	test.ExpectSuccess(t, p.ARM.Model.Set(memorymodel.Zodiac))

	test.ExpectFailure(t, p.Screen.Orientation.Set("sideways"))
	test.ExpectFailure(t, p.Screen.Width.Set(0))
	test.ExpectFailure(t, p.Screen.Height.Set("10000"))
	test.ExpectEquality(t, p.Screen.Height.Get().(int), 320)
}

func TestSaveLoad(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ARM.Enabled.Set(false))
	test.DemandSuccess(t, p.ARM.Model.Set(memorymodel.Zodiac))
	test.DemandSuccess(t, p.Screen.Aspect.Set(true))
	test.DemandSuccess(t, p.Screen.Width.Set(640))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, q.ARM.Enabled.Get().(bool))
	test.ExpectEquality(t, q.ARM.Model.String(), memorymodel.Zodiac)
	test.ExpectSuccess(t, q.Screen.Aspect.Get().(bool))
	test.ExpectEquality(t, q.Screen.Width.Get().(int), 640)

	q.SetDefaults()
	test.ExpectEquality(t, q.Screen.Width.Get().(int), 480)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Screen.Width.Get().(int), 640)
}

func TestCommandLine(t *testing.T) {
	t.Chdir(t.TempDir())

	prefs.PushCommandLineStack("arm.validate::true; screen.orientation::portrait")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ARM.Validate.Get().(bool))
	test.ExpectSuccess(t, p.Screen.IsPortrait())
}
