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

// Package faults records illegal memory accesses made by kernels when
// running with argument checking enabled.
package faults

import (
	"fmt"
	"io"
)

// Category classifies the approximate reason for a memory fault
type Category string

// List of valid Category values
const (
	NullDereference  Category = "null dereference"
	MisalignedAccess Category = "misaligned access"
	StackCollision   Category = "stack collision"
	IllegalAddress   Category = "illegal address"
	RegionOverrun    Category = "region overrun"
	NotExecutable    Category = "not executable"
)

// Entry is a single entry in the fault log
type Entry struct {
	Category Category

	// the kernel or memory operation that caused the fault
	Event string

	AccessAddr uint32
	AccessLen  uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s: %s: %08x+%d (x%d)", e.Category, e.Event, e.AccessAddr, e.AccessLen, e.Count)
	}
	return fmt.Sprintf("%s: %s: %08x+%d", e.Category, e.Event, e.AccessAddr, e.AccessLen)
}

type key struct {
	event string
	addr  uint32
	len   uint32
}

// Faults is a log of faults in the order they were first seen. Repeated
// faults increase the count of the existing entry.
type Faults struct {
	entries map[key]*Entry

	Log []*Entry

	// once the scratch stack has collided with another region subsequent
	// faults are unreliable
	HasStackCollision bool
}

func NewFaults() Faults {
	return Faults{
		entries: make(map[key]*Entry),
	}
}

// Clear all entries from faults log. Does not clear the HasStackCollision flag
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// WriteLog writes the list of faults in the order they were added
func (flt *Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log {
		fmt.Fprintln(w, e.String())
	}
}

// NewEntry adds a new entry to the list of faults and returns it
func (flt *Faults) NewEntry(event string, category Category, accessAddr uint32, accessLen uint32) *Entry {
	if flt.entries == nil {
		flt.entries = make(map[key]*Entry)
	}

	k := key{event: event, addr: accessAddr, len: accessLen}

	e, found := flt.entries[k]
	if !found {
		e = &Entry{
			Category:   category,
			Event:      event,
			AccessAddr: accessAddr,
			AccessLen:  accessLen,
		}
		flt.entries[k] = e
		flt.Log = append(flt.Log, e)
	}

	e.Count++

	if category == StackCollision {
		flt.HasStackCollision = true
	}

	return e
}
