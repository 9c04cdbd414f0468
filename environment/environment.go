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

// Package environment bundles the shared memory, the kernel strategy and the
// preferences that decided them. An Environment is created once at startup.
package environment

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/compositor"
	"github.com/jetsetilly/pnokernels/pno"
	"github.com/jetsetilly/pnokernels/preferences"
	"github.com/jetsetilly/pnokernels/surface"
)

// Label is used to name the environment
type Label string

// Environment is used to provide context for the kernels. Particularly useful
// when comparing more than one environment
type Environment struct {
	Label Label

	// the preferences used to create the environment
	Prefs *preferences.Preferences

	// shared address space used by all kernels in the environment
	Mem *arm.Memory

	// surfaces are allocated in Mem
	Alloc surface.Allocator

	// software or offloaded kernel strategy
	Kernel pno.Kernel
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}
	env.Prefs = prefs

	env.Mem = arm.NewMemory(memorymodel.NewMap(prefs.ARM.Model.String()))
	env.Alloc = surface.NewAllocator(env.Mem)

	env.Kernel, err = pno.NewKernel(env.Mem,
		prefs.ARM.Enabled.Get().(bool),
		pno.WithValidation(prefs.ARM.Validate.Get().(bool)))
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	return env, nil
}

// NewCompositor creates a compositor for the logical screen. Transition() is
// called with the screen preferences before returning.
func (env *Environment) NewCompositor(src surface.Surface, palette compositor.Palette) (*compositor.Compositor, error) {
	comp, err := compositor.NewCompositor(env.Mem, env.Alloc, env.Kernel, palette, compositor.Source{
		Width:  src.Width,
		Height: src.Height,
		Pitch:  src.Pitch,
	})
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := comp.Transition(env.Device()); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	return comp, nil
}

// Device returns the screen preferences as a compositor.OrientationProvider.
func (env *Environment) Device() compositor.OrientationProvider {
	return device{prefs: env.Prefs.Screen}
}

type device struct {
	prefs *preferences.ScreenPreferences
}

func (d device) Orientation() compositor.Orientation {
	if d.prefs.IsPortrait() {
		return compositor.Portrait
	}
	return compositor.Landscape
}

func (d device) WideMode() bool {
	return d.prefs.Wide.Get().(bool)
}

func (d device) AspectCorrection() bool {
	return d.prefs.Aspect.Get().(bool)
}

func (d device) ScreenSize() (int, int) {
	return d.prefs.ScreenSize()
}

// Normalise ensures the environment is in an known default state. Useful for
// tests where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEnvironment returns true if the environment has no label
func (env *Environment) IsMainEnvironment() bool {
	return env.Label == ""
}

// AllowLogging implements the logger.Permission interface. Only the main
// environment creates log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEnvironment()
}
