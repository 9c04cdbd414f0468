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

package compositor_test

import (
	"image"
	"strings"
	"testing"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/assert"
	"github.com/jetsetilly/pnokernels/compositor"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/pno"
	"github.com/jetsetilly/pnokernels/surface"
	"github.com/jetsetilly/pnokernels/test"
)

type device struct {
	orientation compositor.Orientation
	wide        bool
	aspect      bool
	w, h        int
}

func (d *device) Orientation() compositor.Orientation { return d.orientation }
func (d *device) WideMode() bool                      { return d.wide }
func (d *device) AspectCorrection() bool              { return d.aspect }
func (d *device) ScreenSize() (int, int)              { return d.w, d.h }

type palette [256]uint16

func (p *palette) NativePalette() *[256]uint16 {
	return (*[256]uint16)(p)
}

func newPalette() *palette {
	var p palette
	for i := range p {
		p[i] = uint16(i) | 0x8000
	}
	return &p
}

type fixture struct {
	mem   *arm.Memory
	alloc surface.Allocator
	comp  *compositor.Compositor
	src   surface.Surface
}

func newFixture(t *testing.T, useARM bool, w, h int) *fixture {
	t.Helper()

	f := &fixture{mem: arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))}
	f.alloc = surface.NewAllocator(f.mem)

	kernel, err := pno.NewKernel(f.mem, useARM)
	test.DemandSuccess(t, err)

	f.src, err = f.alloc.Allocate(w, h, surface.Depth8)
	test.DemandSuccess(t, err)

	f.comp, err = compositor.NewCompositor(f.mem, f.alloc, kernel, newPalette(),
		compositor.Source{Width: w, Height: h, Pitch: f.src.Pitch})
	test.DemandSuccess(t, err)

	return f
}

func (f *fixture) pixels(s surface.Surface) surface.Pixels {
	return surface.Bind(f.mem, s)
}

func (f *fixture) hasRegion(label string) bool {
	for _, r := range f.mem.Regions() {
		if strings.HasPrefix(r.Label, label) {
			return true
		}
	}
	return false
}

func TestModes(t *testing.T) {
	f := newFixture(t, false, 320, 200)

	type expected struct {
		mode   compositor.Mode
		scaled bool
		w, h   int
	}

	for _, c := range []struct {
		dev device
		exp expected
	}{
		{device{compositor.Landscape, false, false, 320, 320}, expected{compositor.Normal, false, 320, 200}},
		{device{compositor.Portrait, false, true, 320, 480}, expected{compositor.Normal, false, 320, 200}},
		{device{compositor.Landscape, true, false, 480, 320}, expected{compositor.WideLandscape, false, 480, 300}},
		{device{compositor.Portrait, true, false, 320, 480}, expected{compositor.WidePortrait, false, 300, 480}},
		{device{compositor.Landscape, true, true, 480, 320}, expected{compositor.WideLandscape, true, 426, 320}},
		{device{compositor.Landscape, true, false, 400, 240}, expected{compositor.WideLandscape, true, 384, 240}},
		{device{compositor.Portrait, true, false, 240, 400}, expected{compositor.WidePortrait, true, 240, 384}},
	} {
		test.DemandSuccess(t, f.comp.Transition(&c.dev))

		mode, ready := f.comp.Mode()
		test.ExpectSuccess(t, ready)
		test.ExpectEquality(t, mode, c.exp.mode)
		test.ExpectEquality(t, f.comp.Scaled(), c.exp.scaled, c.dev)
		test.ExpectEquality(t, f.comp.Work().Width, c.exp.w, c.dev)
		test.ExpectEquality(t, f.comp.Work().Height, c.exp.h, c.dev)
		test.ExpectEquality(t, f.comp.Work().Depth, surface.Depth16)

		// scale tables exist only for the scaled modes
		test.ExpectEquality(t, f.hasRegion("scale table"), c.exp.scaled, c.dev)
	}

	err := f.comp.Transition(&device{compositor.Landscape, false, false, 300, 200})
	test.ExpectSuccess(t, curated.Is(err, compositor.ScreenTooSmall))
}

func TestNotReady(t *testing.T) {
	if assert.Enabled {
		t.Skip("rendering before transition panics when assertions are enabled")
	}

	f := newFixture(t, false, 320, 200)
	_, err := f.comp.RenderFrame(f.src)
	test.ExpectSuccess(t, curated.Is(err, compositor.ModeNotReady))

	// a failed transition leaves the compositor unready
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, false, false, 320, 200}))
	_, err = f.comp.RenderFrame(f.src)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, f.comp.Transition(&device{compositor.Landscape, false, false, 100, 100}))
	_, err = f.comp.RenderFrame(f.src)
	test.ExpectSuccess(t, curated.Is(err, compositor.ModeNotReady))
}

func TestSourceMismatch(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, false, false, 320, 200}))

	other, err := f.alloc.Allocate(160, 100, surface.Depth8)
	test.DemandSuccess(t, err)
	_, err = f.comp.RenderFrame(other)
	test.ExpectSuccess(t, curated.Is(err, compositor.SourceMismatch))
}

func TestLandscape(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, true, false, 480, 300}))

	src := f.pixels(f.src)
	src.Set8(0, 0, 1)
	src.Set8(1, 1, 2)
	src.Set8(2, 3, 3)
	src.Set8(319, 199, 4)

	fr, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Rect, image.Rect(0, 0, 480, 300))
	test.ExpectEquality(t, fr.Origin, image.Pt(0, 0))

	work := f.pixels(f.comp.Work())
	test.ExpectEquality(t, work.At16(0, 0), uint16(0x8001))
	test.ExpectEquality(t, work.At16(1, 0), uint16(0x8000))

	for _, p := range []image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		test.ExpectEquality(t, work.At16(p.X, p.Y), uint16(0x8002), p)
	}
	for _, p := range []image.Point{{3, 4}, {3, 5}} {
		test.ExpectEquality(t, work.At16(p.X, p.Y), uint16(0x8003), p)
	}
	test.ExpectEquality(t, work.At16(4, 4), uint16(0x8000))
	test.ExpectEquality(t, work.At16(479, 299), uint16(0x8004))
	test.ExpectEquality(t, work.At16(478, 298), uint16(0x8004))
}

func TestPortrait(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Portrait, true, false, 300, 480}))

	src := f.pixels(f.src)
	src.Set8(0, 0, 1)
	src.Set8(2, 1, 2)

	_, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)

	work := f.pixels(f.comp.Work())
	test.ExpectEquality(t, work.At16(299, 0), uint16(0x8001))
	test.ExpectEquality(t, work.At16(298, 0), uint16(0x8000))

	// source row 1 is the second and third column from the right. source
	// column 2 is row 3
	test.ExpectEquality(t, work.At16(298, 3), uint16(0x8002))
	test.ExpectEquality(t, work.At16(297, 3), uint16(0x8002))
	test.ExpectEquality(t, work.At16(296, 3), uint16(0x8000))
	test.ExpectEquality(t, work.At16(298, 4), uint16(0x8000))
}

func TestShakeLandscape(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, true, false, 480, 320}))

	f.pixels(f.src).Fill8(image.Rect(0, 0, 320, 200), 1)

	screen, err := f.alloc.Allocate(480, 320, surface.Depth16)
	test.DemandSuccess(t, err)
	scr := f.pixels(screen)

	fr, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Origin, image.Pt(0, 10))
	test.ExpectEquality(t, fr.Erase, image.Rectangle{})

	scr.Fill16(image.Rect(0, 0, 480, 320), 0xffff)
	f.comp.Present(screen, fr)

	// shake of four rows is six rows on the screen
	f.comp.SetShake(4)
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Rect, image.Rect(0, 0, 480, 294))
	test.ExpectEquality(t, fr.Origin, image.Pt(0, 16))
	test.ExpectEquality(t, fr.Erase, image.Rect(0, 10, 480, 16))

	scr.Fill16(image.Rect(0, 0, 480, 320), 0xffff)
	f.comp.Present(screen, fr)
	for y := range 320 {
		var expected uint16
		switch {
		case y < 10 || y >= 310:
			expected = 0xffff
		case y < 16:
			expected = 0
		default:
			expected = 0x8001
		}
		test.ExpectEquality(t, scr.At16(0, y), expected, y)
		test.ExpectEquality(t, scr.At16(479, y), expected, y)
	}

	// unchanged shake uncovers nothing
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rectangle{})

	f.comp.SetShake(6)
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rect(0, 16, 480, 19))

	// reducing the shake covers the band again
	f.comp.SetShake(2)
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rectangle{})
	test.ExpectEquality(t, fr.Rect, image.Rect(0, 0, 480, 297))
	test.ExpectEquality(t, fr.Origin, image.Pt(0, 13))
}

func TestShakePortrait(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Portrait, true, false, 320, 480}))

	f.comp.SetShake(4)
	fr, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Rect, image.Rect(6, 0, 300, 480))
	test.ExpectEquality(t, fr.Origin, image.Pt(10, 0))
	test.ExpectEquality(t, fr.Erase, image.Rect(304, 0, 310, 480))

	f.comp.SetShake(5)
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rect(303, 0, 304, 480))
}

func TestShakeNormal(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, false, false, 320, 200}))

	f.comp.SetShake(3)
	fr, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Rect, image.Rect(0, 0, 320, 197))
	test.ExpectEquality(t, fr.Origin, image.Pt(0, 3))
	test.ExpectEquality(t, fr.Erase, image.Rect(0, 0, 320, 3))

	// a transition redraws everything so the applied shake is reset
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, false, false, 320, 200}))
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rect(0, 0, 320, 3))
}

func TestOverlay(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, true, false, 480, 300}))

	wrong, err := f.alloc.Allocate(320, 200, surface.Depth16)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(f.comp.ShowOverlay(wrong), compositor.OverlayMismatch))

	overlay, err := f.alloc.Allocate(480, 300, surface.Depth16)
	test.DemandSuccess(t, err)
	ov := f.pixels(overlay)
	ov.Fill16(image.Rect(0, 0, 480, 300), 0x1234)
	ov.Set16(479, 299, 0x4321)
	test.DemandSuccess(t, f.comp.ShowOverlay(overlay))

	f.pixels(f.src).Fill8(image.Rect(0, 0, 320, 200), 9)
	f.comp.SetShake(4)

	fr, err := f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Rect, image.Rect(0, 0, 480, 300))
	test.ExpectEquality(t, fr.Erase, image.Rectangle{})

	work := f.pixels(f.comp.Work())
	test.ExpectEquality(t, work.At16(0, 0), uint16(0x1234))
	test.ExpectEquality(t, work.At16(479, 299), uint16(0x4321))

	// shake is applied once the overlay is hidden
	f.comp.HideOverlay()
	fr, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fr.Erase, image.Rect(0, 0, 480, 6))
	test.ExpectEquality(t, work.At16(0, 0), uint16(0x8009))
}

// a transition changes the size of the work surface so the overlay no longer
// fits and is hidden
func TestOverlayTransition(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, false, false, 480, 320}))

	overlay, err := f.alloc.Allocate(320, 200, surface.Depth16)
	test.DemandSuccess(t, err)
	f.pixels(overlay).Fill16(image.Rect(0, 0, 320, 200), 0x1234)
	test.DemandSuccess(t, f.comp.ShowOverlay(overlay))

	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, true, false, 480, 320}))
	test.ExpectEquality(t, f.comp.Work().Width, 480)

	f.pixels(f.src).Fill8(image.Rect(0, 0, 320, 200), 9)
	_, err = f.comp.RenderFrame(f.src)
	test.DemandSuccess(t, err)

	work := f.pixels(f.comp.Work())
	test.ExpectEquality(t, work.At16(0, 0), uint16(0x8009))
	test.ExpectEquality(t, work.At16(479, 299), uint16(0x8009))

	// the old overlay does not fit the new work surface
	test.ExpectSuccess(t, curated.Is(f.comp.ShowOverlay(overlay), compositor.OverlayMismatch))
}

func TestClose(t *testing.T) {
	f := newFixture(t, false, 320, 200)
	test.DemandSuccess(t, f.comp.Transition(&device{compositor.Landscape, true, true, 480, 320}))
	test.ExpectSuccess(t, f.hasRegion("scale table"))
	test.ExpectSuccess(t, f.hasRegion("native palette"))

	test.DemandSuccess(t, f.comp.Close())
	test.ExpectFailure(t, f.hasRegion("scale table"))
	test.ExpectFailure(t, f.hasRegion("native palette"))
	test.ExpectFailure(t, f.hasRegion("surface 426x320"))
}

// every mode gives the same work surface whether the kernels are offloaded
// or not
func TestEquivalence(t *testing.T) {
	devices := []device{
		{compositor.Landscape, false, false, 320, 200},
		{compositor.Landscape, true, false, 480, 300},
		{compositor.Portrait, true, false, 300, 480},
		{compositor.Landscape, true, true, 480, 320},
		{compositor.Portrait, true, false, 200, 320},
	}

	sw := newFixture(t, false, 320, 200)
	offload := newFixture(t, true, 320, 200)

	for _, f := range []*fixture{sw, offload} {
		src := f.pixels(f.src)
		for y := range 200 {
			for x := range 320 {
				src.Set8(x, y, uint8(x*y+x))
			}
		}
	}

	for _, d := range devices {
		test.DemandSuccess(t, sw.comp.Transition(&d))
		test.DemandSuccess(t, offload.comp.Transition(&d))

		f1, err := sw.comp.RenderFrame(sw.src)
		test.DemandSuccess(t, err)
		f2, err := offload.comp.RenderFrame(offload.src)
		test.DemandSuccess(t, err)

		test.ExpectEquality(t, f1, f2, d)
		test.ExpectBytes(t, offload.pixels(offload.comp.Work()).Pix, sw.pixels(sw.comp.Work()).Pix, d)
	}
}
