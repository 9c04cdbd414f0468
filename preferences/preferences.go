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

// Package preferences collates the preference values used by the kernels
// and the compositor. Values are stored in the global preferences file in the
// resources directory and can be overridden from the command line with the
// prefs.PushCommandLineStack() function.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/prefs"
	"github.com/jetsetilly/pnokernels/resources"
)

// Preferences defines and collates all the preference values.
type Preferences struct {
	ARM    *ARMPreferences
	Screen *ScreenPreferences
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s%s", p.ARM, p.Screen)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p := &Preferences{}

	p.ARM, err = newARMPreferences(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p.Screen, err = newScreenPreferences(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.ARM.SetDefaults()
	p.Screen.SetDefaults()
}

// Load all preferences from disk.
func (p *Preferences) Load() error {
	if err := p.ARM.Load(); err != nil {
		return err
	}
	return p.Screen.Load()
}

// Save all preferences to disk.
func (p *Preferences) Save() error {
	if err := p.ARM.Save(); err != nil {
		return err
	}
	return p.Screen.Save()
}

// load ignores a missing preferences file. the defaults and any command line
// overrides are used instead
func load(dsk *prefs.Disk) error {
	if err := dsk.Load(); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}
