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

package preferences

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/prefs"
)

// ARMPreferences decide how the kernels are called.
type ARMPreferences struct {
	dsk *prefs.Disk

	// call kernels through the native call marshaller rather than directly
	Enabled prefs.Bool

	// the memory model to use for the shared address space. one of the
	// values in memorymodel.Models
	Model prefs.String

	// validate parameter blocks before every call. memory checking is also
	// enabled
	Validate prefs.Bool
}

func (p *ARMPreferences) String() string {
	return p.dsk.String()
}

func newARMPreferences(pth string) (*ARMPreferences, error) {
	p := &ARMPreferences{}
	p.SetDefaults()

	p.Model.SetHookPre(func(v prefs.Value) error {
		if !slices.Contains(memorymodel.Models, v.(string)) {
			return fmt.Errorf("unknown memory model: %v", v)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.model", &p.Model)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("arm.validate", &p.Validate)
	if err != nil {
		return nil, err
	}
	err = load(p.dsk)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *ARMPreferences) SetDefaults() {
	p.Enabled.Set(true)
	p.Model.Set(memorymodel.OS5)
	p.Validate.Set(false)
}

// Load current arm preference from disk.
func (p *ARMPreferences) Load() error {
	return load(p.dsk)
}

// Save current arm preferences to disk.
func (p *ARMPreferences) Save() error {
	return p.dsk.Save()
}
