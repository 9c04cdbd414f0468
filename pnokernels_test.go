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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/pnokernels/test"
)

func TestParams(t *testing.T) {
	t.Chdir(t.TempDir())

	var b strings.Builder
	test.ExpectEquality(t, launch(&b, []string{"PARAMS", "-dot", "blit.dot", "Blit"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "blit ["))

	dot, err := os.ReadFile("blit.dot")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))

	b.Reset()
	test.ExpectEquality(t, launch(&b, []string{"PARAMS", "nothing"}), 20)
	test.ExpectSuccess(t, strings.Contains(b.String(), "unknown kernel"))

	b.Reset()
	test.ExpectEquality(t, launch(&b, []string{"PARAMS"}), 20)
	test.ExpectSuccess(t, strings.Contains(b.String(), "renderscaled"))
}

func TestCompare(t *testing.T) {
	t.Chdir(t.TempDir())

	var b strings.Builder
	test.ExpectEquality(t, launch(&b, []string{"COMPARE", "-frames", "20"}), 0)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, strings.Fields(lines[0])[1], strings.Fields(lines[1])[1])
}

func TestDump(t *testing.T) {
	t.Chdir(t.TempDir())

	var b strings.Builder
	test.ExpectEquality(t, launch(&b, []string{"DUMP", "-frames", "5", "-prefs", "screen.orientation::portrait"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "frame 5 saved to "))

	fn := strings.TrimSpace(strings.TrimPrefix(b.String(), "frame 5 saved to "))
	test.ExpectEquality(t, filepath.Ext(fn), ".bmp")
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestUnusedPrefs(t *testing.T) {
	t.Chdir(t.TempDir())

	var b strings.Builder
	test.ExpectEquality(t, launch(&b, []string{"DUMP", "-frames", "1", "-prefs", "screen.colour::red"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "* unused preferences: screen.colour::red"))
}

func TestBadMode(t *testing.T) {
	var b strings.Builder
	test.ExpectEquality(t, launch(&b, []string{"BENCH", "-profile", "wrong"}), 20)
}
