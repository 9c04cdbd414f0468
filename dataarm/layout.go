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

package dataarm

import (
	"fmt"
	"strings"
)

// Field is a single named field in a Layout.
type Field struct {
	Name   string
	Offset uint32
	Width  uint32
	Ptr    bool
}

func (f Field) String() string {
	if f.Ptr {
		return fmt.Sprintf("%s@%d (ptr)", f.Name, f.Offset)
	}
	return fmt.Sprintf("%s@%d (%d)", f.Name, f.Offset, f.Width*8)
}

// Layout describes the fields of a parameter block. Fields are added in
// order with no padding. Each method returns the offset of the new field so
// that a layout can be declared alongside the offsets it defines:
//
//	var layout dataarm.Layout
//	var (
//		offDst   = layout.Ptr("dst")
//		offWidth = layout.U16("width")
//	)
type Layout struct {
	Fields []Field
	end    uint32
}

func (l *Layout) add(name string, width uint32, ptr bool) uint32 {
	off := l.end
	l.Fields = append(l.Fields, Field{Name: name, Offset: off, Width: width, Ptr: ptr})
	l.end += width
	return off
}

// U8 adds an 8-bit field.
func (l *Layout) U8(name string) uint32 {
	return l.add(name, 1, false)
}

// U16 adds a 16-bit field.
func (l *Layout) U16(name string) uint32 {
	return l.add(name, 2, false)
}

// U32 adds a 32-bit field.
func (l *Layout) U32(name string) uint32 {
	return l.add(name, 4, false)
}

// Ptr adds a 32-bit address field.
func (l *Layout) Ptr(name string) uint32 {
	return l.add(name, 4, true)
}

// Size of a block using this layout. Always a multiple of four.
func (l *Layout) Size() uint32 {
	return Align4(l.end)
}

// Field returns the named field.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (l *Layout) String() string {
	s := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		s = append(s, f.String())
	}
	return fmt.Sprintf("[%s] size=%d", strings.Join(s, ", "), l.Size())
}

// Align4 rounds n up to the next multiple of four.
func Align4(n uint32) uint32 {
	return (n + 3) &^ 3
}
