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

// Package memorymodel describes the address space layouts of the supported
// handheld families. The layout decides where the heap and the scratch stack
// for parameter blocks are placed.
package memorymodel

import (
	"github.com/jetsetilly/pnokernels/logger"
)

type Map struct {
	Model string

	// null page. addresses below this value are never valid
	NullMemtop uint32

	HeapOrigin uint32
	HeapMemtop uint32

	// scratch stack for parameter blocks grows down from StackMemtop
	StackOrigin uint32
	StackMemtop uint32

	// native function table
	NativeOrigin uint32
	NativeMemtop uint32

	// gap left between consecutive heap allocations
	GuardGap uint32
}

const (
	OS5    = "OS5"
	Zodiac = "Zodiac"
)

// Models lists the names accepted by NewMap().
var Models = []string{OS5, Zodiac}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(model string) Map {
	mmap := Map{
		Model: model,
	}

	switch mmap.Model {
	default:
		logger.Logf(logger.Allow, "memorymodel", "unknown memory model (%s) defaulting to %s", mmap.Model, OS5)
		mmap.Model = OS5
		fallthrough

	case OS5:
		mmap.NullMemtop = 0x00000fff
		mmap.NativeOrigin = 0x00001000
		mmap.NativeMemtop = 0x00001fff
		mmap.StackOrigin = 0x00010000
		mmap.StackMemtop = 0x0001ffff
		mmap.HeapOrigin = 0x00100000
		mmap.HeapMemtop = 0x01ffffff
		mmap.GuardGap = 0x10

	case Zodiac:
		mmap.NullMemtop = 0x0000ffff
		mmap.NativeOrigin = 0x00010000
		mmap.NativeMemtop = 0x00010fff
		mmap.StackOrigin = 0x00020000
		mmap.StackMemtop = 0x0003ffff
		mmap.HeapOrigin = 0x20000000
		mmap.HeapMemtop = 0x23ffffff
		mmap.GuardGap = 0x20
	}

	logger.Logf(logger.Allow, "memorymodel", "using %s", mmap.Model)
	logger.Logf(logger.Allow, "memorymodel", "heap: %#08x to %#08x", mmap.HeapOrigin, mmap.HeapMemtop)
	logger.Logf(logger.Allow, "memorymodel", "stack: %#08x to %#08x", mmap.StackOrigin, mmap.StackMemtop)

	return mmap
}

// IsNull returns true if address is in the null page.
func (mmap Map) IsNull(addr uint32) bool {
	return addr <= mmap.NullMemtop
}

// IsHeap returns true if address is in the heap.
func (mmap Map) IsHeap(addr uint32) bool {
	return addr >= mmap.HeapOrigin && addr <= mmap.HeapMemtop
}

// IsStack returns true if address is in the scratch stack.
func (mmap Map) IsStack(addr uint32) bool {
	return addr >= mmap.StackOrigin && addr <= mmap.StackMemtop
}

// IsNative returns true if address is in the native function table.
func (mmap Map) IsNative(addr uint32) bool {
	return addr >= mmap.NativeOrigin && addr <= mmap.NativeMemtop
}
